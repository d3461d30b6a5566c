// internal/writers/probe.go
package writers

import (
	"fmt"
	"io"

	"probegen-core/probe"
	"probegen/internal/output"
)

// Formats lists the supported output format names.
var Formats = []string{"fasta", "text", "json"}

// ValidFormat reports whether format names a registered probe writer.
func ValidFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// StartProbeWriter spins up a writer goroutine consuming probes from the
// returned channel. FASTA and text stream as probes arrive; JSON buffers so
// it can emit one well-formed array. The error channel yields exactly once,
// after the input channel is closed and the format is fully written.
func StartProbeWriter(out io.Writer, format string, header bool, bufSize int) (chan<- probe.Probe, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan probe.Probe, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case "fasta":
			err = output.StreamFASTA(out, in)
		case "text":
			err = output.StreamText(out, in, header)
		case "json":
			var buf []probe.Probe
			for p := range in {
				buf = append(buf, p)
			}
			err = output.WriteJSON(out, buf)
		default:
			err = fmt.Errorf("unsupported output %q", format)
		}
		// Drain so producers never block after a writer error.
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}
