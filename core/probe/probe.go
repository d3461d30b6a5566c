// core/probe/probe.go
package probe

import (
	"strings"

	"probegen-core/genome"
	"probegen-core/resolve"
)

// Probe is one concrete fusion probe: a title traceable to the statement and
// the pair of genomic locations it came from, and the joined sequence with
// the breakpoint implicit at the junction of the two halves.
type Probe struct {
	Title string `json:"title"`
	Seq   string `json:"seq"`
}

// New builds the probe record for one fully resolved statement. The title is
// the statement text with the non-empty source labels of both halves
// appended; coordinate halves have no label and contribute nothing.
func New(stmt string, left, right resolve.Window, leftSeq, rightSeq string) Probe {
	parts := []string{stmt}
	if left.Source != "" {
		parts = append(parts, left.Source)
	}
	if right.Source != "" {
		parts = append(parts, right.Source)
	}
	return Probe{
		Title: strings.Join(parts, " "),
		Seq:   leftSeq + rightSeq,
	}
}

// FromWindows extracts both halves from the reference and joins them.
func FromWindows(stmt string, left, right resolve.Window, g genome.Genome) (Probe, error) {
	leftSeq, err := g.Slice(left.Chromosome, left.Start, left.End, left.Strand)
	if err != nil {
		return Probe{}, err
	}
	rightSeq, err := g.Slice(right.Chromosome, right.Start, right.End, right.Strand)
	if err != nil {
		return Probe{}, err
	}
	return New(stmt, left, right, leftSeq, rightSeq), nil
}
