// core/resolve/window_test.go
package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"probegen-core/annotation"
	"probegen-core/genome"
	"probegen-core/statement"
)

var testGenome = genome.Genome{
	"1": stringOfLen(1000),
	"2": stringOfLen(4000),
}

func stringOfLen(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = "ACGT"[i%4]
	}
	return string(b)
}

func feature(strand byte, exon annotation.Exon, side statement.Side, length statement.Length) ResolvedFeature {
	chrom := "1"
	if strand == '-' {
		chrom = "2"
	}
	return ResolvedFeature{
		Transcript: annotation.Transcript{Name: "NM_X", Chromosome: chrom, Strand: strand},
		Exon:       exon,
		Ordinal:    1,
		Side:       side,
		Length:     length,
	}
}

func TestFeatureWindowPlusStrand(t *testing.T) {
	exon := annotation.Exon{Start: 100, End: 500}

	w := FeatureWindow(feature('+', exon, statement.SideStart, statement.Length{Bases: 30}), testGenome)
	assert.Equal(t, Window{Chromosome: "1", Strand: '+', Start: 100, End: 130, Source: "NM_X"}, w)

	w = FeatureWindow(feature('+', exon, statement.SideEnd, statement.Length{Bases: 20}), testGenome)
	assert.Equal(t, 480, w.Start)
	assert.Equal(t, 500, w.End)
}

func TestFeatureWindowMinusStrandSwapsEdges(t *testing.T) {
	exon := annotation.Exon{Start: 2000, End: 2100}

	// Transcript start of a '-'-strand feature is the genomic-right edge.
	w := FeatureWindow(feature('-', exon, statement.SideStart, statement.Length{Bases: 25}), testGenome)
	assert.Equal(t, 2075, w.Start)
	assert.Equal(t, 2100, w.End)
	assert.Equal(t, byte('-'), w.Strand)

	w = FeatureWindow(feature('-', exon, statement.SideEnd, statement.Length{Bases: 25}), testGenome)
	assert.Equal(t, 2000, w.Start)
	assert.Equal(t, 2025, w.End)
}

func TestFeatureWindowWholeFeature(t *testing.T) {
	exon := annotation.Exon{Start: 100, End: 250}
	for _, side := range []statement.Side{statement.SideStart, statement.SideEnd} {
		w := FeatureWindow(feature('+', exon, side, statement.Length{Whole: true}), testGenome)
		assert.Equal(t, 150, w.End-w.Start, "whole-feature length ignores side")
	}
}

func TestFeatureWindowClamps(t *testing.T) {
	// Length larger than the exon extends past it, then clamps at bounds.
	w := FeatureWindow(feature('+', annotation.Exon{Start: 900, End: 950}, statement.SideStart, statement.Length{Bases: 500}), testGenome)
	assert.Equal(t, 900, w.Start)
	assert.Equal(t, 1000, w.End, "clamped to chromosome length")

	w = FeatureWindow(feature('+', annotation.Exon{Start: 10, End: 40}, statement.SideEnd, statement.Length{Bases: 100}), testGenome)
	assert.Equal(t, 0, w.Start, "clamped at position 0")
	assert.Equal(t, 40, w.End)
}

func TestCoordinateWindow(t *testing.T) {
	g := testGenome

	w := CoordinateWindow(statement.CoordinateHalf{Chromosome: "1", Breakpoint: 100, Direction: statement.Upstream, Length: 25}, g)
	assert.Equal(t, Window{Chromosome: "1", Strand: '+', Start: 75, End: 100}, w)

	w = CoordinateWindow(statement.CoordinateHalf{Chromosome: "2", Breakpoint: 200, Direction: statement.Downstream, Length: 25}, g)
	assert.Equal(t, Window{Chromosome: "2", Strand: '+', Start: 200, End: 225}, w)
}

func TestCoordinateWindowRoundTrip(t *testing.T) {
	// resolve_window then extract yields exactly length bases in bounds.
	h := statement.CoordinateHalf{Chromosome: "1", Breakpoint: 500, Direction: statement.Upstream, Length: 42}
	w := CoordinateWindow(h, testGenome)
	seq, err := testGenome.Slice(w.Chromosome, w.Start, w.End, w.Strand)
	require.NoError(t, err)
	assert.Len(t, seq, 42)
}

func TestCoordinateWindowClampAtZero(t *testing.T) {
	h := statement.CoordinateHalf{Chromosome: "1", Breakpoint: 10, Direction: statement.Upstream, Length: 25}
	w := CoordinateWindow(h, testGenome)
	assert.Equal(t, 0, w.Start)
	assert.Equal(t, 10, w.End)

	seq, err := testGenome.Slice(w.Chromosome, w.Start, w.End, w.Strand)
	require.NoError(t, err)
	assert.Len(t, seq, 10, "shorter only because clamped at position 0")
}

func TestCoordinateWindowEmptyAfterClamp(t *testing.T) {
	h := statement.CoordinateHalf{Chromosome: "1", Breakpoint: 0, Direction: statement.Upstream, Length: 25}
	w := CoordinateWindow(h, testGenome)
	_, err := testGenome.Slice(w.Chromosome, w.Start, w.End, w.Strand)
	var oerr *genome.OutOfRangeError
	require.ErrorAs(t, err, &oerr)
}

func TestStrandCorrectness(t *testing.T) {
	// A side=start request on a '-' strand exon must return the reverse
	// complement of the bases adjacent to the genomically-right edge.
	g := genome.Genome{"2": "AAAACGTAAA"}
	exon := annotation.Exon{Start: 3, End: 7} // "ACGT"
	f := feature('-', exon, statement.SideStart, statement.Length{Bases: 2})

	w := FeatureWindow(f, g)
	assert.Equal(t, 5, w.Start)
	assert.Equal(t, 7, w.End)

	seq, err := g.Slice(w.Chromosome, w.Start, w.End, w.Strand)
	require.NoError(t, err)
	assert.Equal(t, "AC", seq, "revcomp of GT")
}
