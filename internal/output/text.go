// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"probegen-core/probe"
)

// StreamText streams probes as tab-delimited rows.
func StreamText(w io.Writer, in <-chan probe.Probe, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for p := range in {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%s\n", p.Title, len(p.Seq), p.Seq); err != nil {
			return err
		}
	}
	return nil
}
