// core/genome/genome.go
package genome

import "fmt"

// Genome maps chromosome names to their full sequences. Built once from a
// reference FASTA and read-only afterwards, so it may be shared freely
// across concurrent resolution tasks.
type Genome map[string]string

// OutOfRangeError reports a window that cannot be sliced from the reference:
// an unknown chromosome, or a span that is empty or inverted after clamping.
type OutOfRangeError struct {
	Chromosome string
	Start, End int
	Reason     string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("cannot slice %s:[%d,%d): %s", e.Chromosome, e.Start, e.End, e.Reason)
}

// Length returns the length of the chromosome, if present.
func (g Genome) Length(chromosome string) (int, bool) {
	seq, ok := g[chromosome]
	return len(seq), ok
}

// Slice returns the bases of chromosome in [start, end), reverse-complemented
// when strand is '-'. The window must already be clamped to chromosome
// bounds; anything unknown, empty, or inverted is an OutOfRangeError.
func (g Genome) Slice(chromosome string, start, end int, strand byte) (string, error) {
	seq, ok := g[chromosome]
	if !ok {
		return "", &OutOfRangeError{Chromosome: chromosome, Start: start, End: end, Reason: "no such chromosome"}
	}
	if start < 0 || end > len(seq) {
		return "", &OutOfRangeError{
			Chromosome: chromosome, Start: start, End: end,
			Reason: fmt.Sprintf("outside chromosome of length %d", len(seq)),
		}
	}
	if start >= end {
		return "", &OutOfRangeError{Chromosome: chromosome, Start: start, End: end, Reason: "empty window"}
	}
	if strand == '-' {
		return string(RevComp([]byte(seq[start:end]))), nil
	}
	return seq[start:end], nil
}
