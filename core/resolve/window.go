// core/resolve/window.go
package resolve

import (
	"probegen-core/genome"
	"probegen-core/statement"
)

// Window is an absolute, strand-corrected genomic span ready for extraction.
// Start/End are 0-based half-open and already clamped to chromosome bounds.
type Window struct {
	Chromosome string
	Strand     byte
	Start, End int
	Source     string // transcript label; empty for coordinate halves
}

// FeatureWindow converts a concrete feature into its genomic window.
//
// Exon coordinates are stored in genomic orientation, so the requested side
// (given in transcript orientation) has to be mapped through the strand: the
// transcript-start edge is the genomic-left edge only on the '+' strand. A
// whole-feature length takes the full exon; a numeric length takes that many
// bases flush against the chosen edge, extending past the exon if asked to.
func FeatureWindow(f ResolvedFeature, g genome.Genome) Window {
	var start, end int
	switch {
	case f.Length.Whole:
		start, end = f.Exon.Start, f.Exon.End
	case (f.Side == statement.SideStart) == (f.Transcript.Strand == '+'):
		start, end = f.Exon.Start, f.Exon.Start+f.Length.Bases
	default:
		start, end = f.Exon.End-f.Length.Bases, f.Exon.End
	}
	start, end = clamp(g, f.Transcript.Chromosome, start, end)
	return Window{
		Chromosome: f.Transcript.Chromosome,
		Strand:     f.Transcript.Strand,
		Start:      start,
		End:        end,
		Source:     f.Transcript.Label(),
	}
}

// CoordinateWindow converts a literal coordinate half into its window.
// Downstream ('+') takes bases at and after the breakpoint, upstream ('-')
// the bases before it, so the two halves of a statement abut at the
// breakpoint. Coordinate statements are strand-less: never complemented.
func CoordinateWindow(h statement.CoordinateHalf, g genome.Genome) Window {
	var start, end int
	if h.Direction == statement.Downstream {
		start, end = h.Breakpoint, h.Breakpoint+h.Length
	} else {
		start, end = h.Breakpoint-h.Length, h.Breakpoint
	}
	start, end = clamp(g, h.Chromosome, start, end)
	return Window{
		Chromosome: h.Chromosome,
		Strand:     '+',
		Start:      start,
		End:        end,
	}
}

// clamp silently pins a window to [0, chromosome length]. Running off a
// chromosome end is expected for breakpoints near telomeres and is not an
// error; a window that ends up empty is caught at extraction time.
func clamp(g genome.Genome, chromosome string, start, end int) (int, int) {
	if start < 0 {
		start = 0
	}
	if n, ok := g.Length(chromosome); ok && end > n {
		end = n
	}
	return start, end
}
