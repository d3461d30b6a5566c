// core/annotation/index.go
package annotation

import "strings"

// Index maps gene symbols to their transcripts. Built once, read-only after.
// Duplicate gene symbols (same symbol at different loci, or the same
// transcript repeated across tables) are preserved in input order; the
// ambiguity is resolved downstream by enumerating every candidate.
type Index struct {
	byGene map[string][]Transcript
}

// NewIndex builds an Index from transcripts, preserving input order per gene.
func NewIndex(transcripts []Transcript) *Index {
	idx := &Index{byGene: make(map[string][]Transcript, len(transcripts))}
	for _, t := range transcripts {
		key := strings.ToUpper(t.Gene)
		idx.byGene[key] = append(idx.byGene[key], t)
	}
	return idx
}

// Lookup returns every transcript annotated with the gene symbol,
// case-insensitively. An unknown gene yields an empty slice, not an error;
// the resolver decides whether that is fatal.
func (idx *Index) Lookup(gene string) []Transcript {
	return idx.byGene[strings.ToUpper(gene)]
}

// Genes returns the number of distinct gene symbols in the index.
func (idx *Index) Genes() int { return len(idx.byGene) }
