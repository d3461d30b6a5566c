// core/annotation/ucsc.go
package annotation

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"probegen-core/internal/textio"
)

// Column names assumed by the UCSC/RefSeq table layout. Coordinates in these
// tables are already 0-based half-open.
var requiredColumns = []string{"name", "chrom", "strand", "exonStarts", "exonEnds"}

// geneNameColumns are the columns that may carry the gene symbol; a table
// must provide exactly one of them.
var geneNameColumns = []string{"name2", "proteinID"}

// InvalidTableError reports an annotation table whose layout or contents
// violate the UCSC format assumptions.
type InvalidTableError struct {
	Source string
	Line   int
	Reason string
}

func (e *InvalidTableError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("annotation table %s:%d: %s", e.Source, e.Line, e.Reason)
	}
	return fmt.Sprintf("annotation table %s: %s", e.Source, e.Reason)
}

// ParseUCSC reads a tab-delimited UCSC-style gene table. The first line is a
// header (a leading '#' is tolerated) naming the columns. Every transcript is
// tagged with source so duplicate symbols across tables stay distinguishable.
func ParseUCSC(r io.Reader, source string) ([]Transcript, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, &InvalidTableError{Source: source, Reason: "empty table"}
	}
	header := strings.Split(strings.TrimPrefix(sc.Text(), "#"), "\t")
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &InvalidTableError{
			Source: source,
			Reason: fmt.Sprintf("missing required columns %v", missing),
		}
	}
	geneCol := -1
	for _, name := range geneNameColumns {
		if i, ok := col[name]; ok {
			if geneCol >= 0 {
				return nil, &InvalidTableError{
					Source: source,
					Reason: fmt.Sprintf("more than one gene name column out of %v", geneNameColumns),
				}
			}
			geneCol = i
		}
	}
	if geneCol < 0 {
		return nil, &InvalidTableError{
			Source: source,
			Reason: fmt.Sprintf("no gene name column; expected one of %v", geneNameColumns),
		}
	}

	var list []Transcript
	ln := 1
	for sc.Scan() {
		ln++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < len(header) {
			return nil, &InvalidTableError{Source: source, Line: ln, Reason: "bad field count"}
		}
		t, err := transcriptFromRow(fields, col, geneCol, source, ln)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// LoadUCSC opens path (gzip and "-" for stdin supported) and parses it,
// labeling transcripts with the given source name.
func LoadUCSC(path, source string) ([]Transcript, error) {
	rc, err := textio.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return ParseUCSC(rc, source)
}

func transcriptFromRow(fields []string, col map[string]int, geneCol int, source string, ln int) (Transcript, error) {
	strand := strings.TrimSpace(fields[col["strand"]])
	if strand != "+" && strand != "-" {
		return Transcript{}, &InvalidTableError{Source: source, Line: ln, Reason: fmt.Sprintf("bad strand %q", strand)}
	}

	starts, err := splitPositions(fields[col["exonStarts"]])
	if err != nil {
		return Transcript{}, &InvalidTableError{Source: source, Line: ln, Reason: "bad exonStarts: " + err.Error()}
	}
	ends, err := splitPositions(fields[col["exonEnds"]])
	if err != nil {
		return Transcript{}, &InvalidTableError{Source: source, Line: ln, Reason: "bad exonEnds: " + err.Error()}
	}
	if len(starts) != len(ends) {
		return Transcript{}, &InvalidTableError{Source: source, Line: ln, Reason: "exonStarts/exonEnds length mismatch"}
	}

	exons := make([]Exon, len(starts))
	for i := range starts {
		exons[i] = Exon{Start: starts[i], End: ends[i]}
	}
	// Tables list exons left to right along the '+' strand; exon 1 of a
	// '-'-strand transcript is the genomically rightmost interval.
	if strand == "-" {
		for i, j := 0, len(exons)-1; i < j; i, j = i+1, j-1 {
			exons[i], exons[j] = exons[j], exons[i]
		}
	}

	return Transcript{
		Name:       strings.TrimSpace(fields[col["name"]]),
		Gene:       strings.TrimSpace(fields[geneCol]),
		Source:     source,
		Chromosome: strings.TrimPrefix(strings.TrimSpace(fields[col["chrom"]]), "chr"),
		Strand:     strand[0],
		Exons:      exons,
	}, nil
}

// splitPositions parses the UCSC comma-separated position list ("100,200,").
func splitPositions(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
