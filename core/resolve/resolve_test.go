// core/resolve/resolve_test.go
package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"probegen-core/annotation"
	"probegen-core/statement"
)

func testIndex() *annotation.Index {
	return annotation.NewIndex([]annotation.Transcript{
		{
			Name: "NM_0001", Gene: "ABC", Source: "refGene", Chromosome: "1", Strand: '+',
			Exons: []annotation.Exon{{Start: 100, End: 500}, {Start: 600, End: 700}},
		},
		{
			Name: "NM_0002", Gene: "DEF", Source: "refGene", Chromosome: "2", Strand: '-',
			Exons: []annotation.Exon{{Start: 3000, End: 3100}, {Start: 2000, End: 2100}, {Start: 1000, End: 1100}},
		},
		{
			// Duplicate gene symbol at another locus, from another table.
			Name: "uc003", Gene: "ABC", Source: "knownGene", Chromosome: "5", Strand: '+',
			Exons: []annotation.Exon{{Start: 10, End: 20}},
		},
	})
}

func half(gene string, ordinal int, side statement.Side, bases int) statement.ProbeHalf {
	return statement.ProbeHalf{
		Gene: gene, Feature: "EXON", Ordinal: ordinal,
		Side: side, Length: statement.Length{Bases: bases},
	}
}

func TestFeaturesLiteral(t *testing.T) {
	fs, err := Features(half("ABC", 2, statement.SideStart, 20), testIndex())
	require.NoError(t, err)

	// Only NM_0001 has a second exon; uc003 is skipped, not an error.
	require.Len(t, fs, 1)
	assert.Equal(t, "NM_0001", fs[0].Transcript.Name)
	assert.Equal(t, annotation.Exon{Start: 600, End: 700}, fs[0].Exon)
	assert.Equal(t, 2, fs[0].Ordinal)
}

func TestFeaturesOrdinalWildcard(t *testing.T) {
	h := half("ABC", 0, statement.SideEnd, 10)
	h.OrdinalWild = true
	fs, err := Features(h, testIndex())
	require.NoError(t, err)

	// 2 exons of NM_0001 then 1 exon of uc003, in index order.
	require.Len(t, fs, 3)
	assert.Equal(t, []int{1, 2, 1}, []int{fs[0].Ordinal, fs[1].Ordinal, fs[2].Ordinal})
	assert.Equal(t, "uc003", fs[2].Transcript.Name)
}

func TestFeaturesSideWildcardExpands(t *testing.T) {
	h := half("DEF", 1, statement.SideWild, 10)
	fs, err := Features(h, testIndex())
	require.NoError(t, err)

	require.Len(t, fs, 2)
	assert.Equal(t, statement.SideStart, fs[0].Side)
	assert.Equal(t, statement.SideEnd, fs[1].Side)
}

func TestFeaturesErrors(t *testing.T) {
	_, err := Features(half("NOPE", 1, statement.SideStart, 5), testIndex())
	var nerr *NotFoundError
	require.ErrorAs(t, err, &nerr)
	assert.Contains(t, nerr.Detail, "gene not found")

	h := half("ABC", 1, statement.SideStart, 5)
	h.Feature = "INTRON"
	_, err = Features(h, testIndex())
	require.ErrorAs(t, err, &nerr)
	assert.Contains(t, nerr.Detail, "unsupported feature kind")

	// Ordinal beyond every transcript of the gene.
	_, err = Features(half("ABC", 9, statement.SideStart, 5), testIndex())
	require.ErrorAs(t, err, &nerr)
	assert.Contains(t, nerr.Detail, "no exon 9")
}

func TestFeaturesWildcardOverExonlessTranscripts(t *testing.T) {
	idx := annotation.NewIndex([]annotation.Transcript{
		{Name: "NR_0009", Gene: "GHI", Source: "refGene", Chromosome: "3", Strand: '+'},
	})
	h := half("GHI", 0, statement.SideStart, 5)
	h.OrdinalWild = true
	_, err := Features(h, idx)
	var nerr *NotFoundError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, "no exons in any of 1 transcript(s)", nerr.Detail)
}

func TestFeaturesWildFeatureKindMeansExon(t *testing.T) {
	h := half("ABC", 1, statement.SideStart, 5)
	h.Feature = ""
	h.FeatureWild = true
	fs, err := Features(h, testIndex())
	require.NoError(t, err)
	assert.Len(t, fs, 2)
}

func TestExpandCrossProductOrder(t *testing.T) {
	left := []ResolvedFeature{{Ordinal: 1}, {Ordinal: 2}}
	right := []ResolvedFeature{{Ordinal: 10}, {Ordinal: 20}, {Ordinal: 30}}

	pairs := Expand(left, right)
	require.Len(t, pairs, 6)

	var got [][2]int
	for _, p := range pairs {
		got = append(got, [2]int{p[0].Ordinal, p[1].Ordinal})
	}
	assert.Equal(t, [][2]int{
		{1, 10}, {1, 20}, {1, 30},
		{2, 10}, {2, 20}, {2, 30},
	}, got, "left-major, right-minor")
}
