// core/resolve/resolve.go
package resolve

import (
	"fmt"

	"probegen-core/annotation"
	"probegen-core/statement"
)

// featureExon is the only feature kind the annotation data can resolve.
const featureExon = "EXON"

// ResolvedFeature is one concrete outcome of a symbolic probe half: a single
// exon of a single transcript, with the side and length to cut from it.
// Wildcard ordinals and sides have already been expanded away.
type ResolvedFeature struct {
	Transcript annotation.Transcript
	Exon       annotation.Exon
	Ordinal    int
	Side       statement.Side
	Length     statement.Length
}

// NotFoundError reports a well-formed probe half that the annotation data
// cannot satisfy.
type NotFoundError struct {
	Gene   string
	Detail string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cannot resolve gene %q: %s", e.Gene, e.Detail)
}

// Features returns every concrete (transcript, exon, side) combination
// matching the half, in index order: transcripts as the annotation lists
// them, exons by ascending ordinal, start before end for a wildcard side.
//
// Unknown genes, feature kinds other than exon, and ordinals beyond every
// candidate transcript are errors; the caller fails the whole statement.
func Features(half statement.ProbeHalf, idx *annotation.Index) ([]ResolvedFeature, error) {
	if !half.FeatureWild && half.Feature != featureExon {
		return nil, &NotFoundError{
			Gene:   half.Gene,
			Detail: fmt.Sprintf("unsupported feature kind %q (only exons are annotated)", half.Feature),
		}
	}

	transcripts := idx.Lookup(half.Gene)
	if len(transcripts) == 0 {
		return nil, &NotFoundError{Gene: half.Gene, Detail: "gene not found in annotation"}
	}

	sides := []statement.Side{half.Side}
	if half.Side == statement.SideWild {
		sides = []statement.Side{statement.SideStart, statement.SideEnd}
	}

	var out []ResolvedFeature
	for _, t := range transcripts {
		ordinals := []int{half.Ordinal}
		if half.OrdinalWild {
			ordinals = make([]int, len(t.Exons))
			for i := range t.Exons {
				ordinals[i] = i + 1
			}
		}
		for _, ord := range ordinals {
			exon, ok := t.Exon(ord)
			if !ok {
				continue // transcript too short for this ordinal; others may match
			}
			for _, side := range sides {
				out = append(out, ResolvedFeature{
					Transcript: t,
					Exon:       exon,
					Ordinal:    ord,
					Side:       side,
					Length:     half.Length,
				})
			}
		}
	}
	if len(out) == 0 {
		detail := fmt.Sprintf("no exon %d in any of %d transcript(s)", half.Ordinal, len(transcripts))
		if half.OrdinalWild {
			detail = fmt.Sprintf("no exons in any of %d transcript(s)", len(transcripts))
		}
		return nil, &NotFoundError{Gene: half.Gene, Detail: detail}
	}
	return out, nil
}

// Expand returns the full cross product of the two match-sets, left-major and
// right-minor, preserving each side's resolution order. Geometric duplicates
// are kept: ambiguity means enumerating every possibility, not every
// distinct answer.
func Expand(left, right []ResolvedFeature) [][2]ResolvedFeature {
	out := make([][2]ResolvedFeature, 0, len(left)*len(right))
	for _, l := range left {
		for _, r := range right {
			out = append(out, [2]ResolvedFeature{l, r})
		}
	}
	return out
}
