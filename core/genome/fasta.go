// core/genome/fasta.go
package genome

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"probegen-core/internal/textio"
)

// ReadFASTA parses a whole reference genome into memory. The chromosome name
// is the first word of each header, with any leading "chr" stripped so that
// statements and annotation tables agree on naming.
func ReadFASTA(r io.Reader) (Genome, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences
	sc.Buffer(make([]byte, 64*1024), maxLine)

	g := make(Genome)
	var (
		name string
		seq  = make([]byte, 0, 1<<20)
	)
	flush := func() {
		if name != "" {
			g[name] = string(seq)
			seq = seq[:0]
		}
	}
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			flush()
			name = parseHeaderName(line[1:])
			continue
		}
		if name == "" {
			return nil, fmt.Errorf("fasta: sequence data before first header")
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta scan: %w", err)
	}
	flush()
	if len(g) == 0 {
		return nil, fmt.Errorf("fasta: no sequences found")
	}
	return g, nil
}

// LoadFASTA reads a reference genome from path, handling gzip and "-" for
// stdin the same way as annotation tables.
func LoadFASTA(path string) (Genome, error) {
	rc, err := textio.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return ReadFASTA(rc)
}

func parseHeaderName(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		hdr = hdr[:i]
	}
	return strings.TrimPrefix(string(hdr), "chr")
}
