// core/annotation/transcript.go
package annotation

// Exon is one annotated interval, 0-based half-open, in genomic coordinates.
type Exon struct {
	Start int
	End   int
}

// Len returns the exon span in bases.
func (e Exon) Len() int { return e.End - e.Start }

// Transcript is one row of annotation data: a named transcript of a gene with
// its ordered exons. Exons are stored in transcript direction, so Exons[0] is
// exon 1 regardless of strand; on the '-' strand that is the genomically
// rightmost interval.
type Transcript struct {
	Name       string
	Gene       string
	Source     string // originating annotation table
	Chromosome string
	Strand     byte // '+' or '-'
	Exons      []Exon
}

// Exon returns the 1-based ordinal exon and whether it exists.
func (t Transcript) Exon(ordinal int) (Exon, bool) {
	if ordinal < 1 || ordinal > len(t.Exons) {
		return Exon{}, false
	}
	return t.Exons[ordinal-1], true
}

// Label identifies the transcript in probe titles: the transcript name,
// qualified by its source table when one is known.
func (t Transcript) Label() string {
	if t.Source == "" {
		return t.Name
	}
	return t.Name + ":" + t.Source
}
