// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"probegen/pkg/api"
	"probegen-core/probe"
)

// ToAPIProbe converts a domain probe to the stable wire schema (v1).
func ToAPIProbe(p probe.Probe) api.ProbeV1 {
	return api.ProbeV1{Title: p.Title, Length: len(p.Seq), Seq: p.Seq}
}

// WriteJSON writes a single JSON array of v1 probes (pretty-indented).
func WriteJSON(w io.Writer, list []probe.Probe) error {
	out := make([]api.ProbeV1, 0, len(list))
	for _, p := range list {
		out = append(out, ToAPIProbe(p))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
