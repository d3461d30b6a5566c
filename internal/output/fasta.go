// internal/output/fasta.go
package output

import (
	"fmt"
	"io"

	"probegen-core/probe"
)

// StreamFASTA streams probe records from a channel to the writer as
// two-line FASTA records.
func StreamFASTA(w io.Writer, in <-chan probe.Probe) error {
	for p := range in {
		if _, err := fmt.Fprintf(w, ">%s\n%s\n", p.Title, p.Seq); err != nil {
			return err
		}
	}
	return nil
}

// WriteFASTA writes a slice of probes as FASTA records to the writer.
func WriteFASTA(w io.Writer, list []probe.Probe) error {
	for _, p := range list {
		if _, err := fmt.Fprintf(w, ">%s\n%s\n", p.Title, p.Seq); err != nil {
			return err
		}
	}
	return nil
}
