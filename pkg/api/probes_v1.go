// pkg/api/probes_v1.go
package api

// ProbeV1 is the stable JSON schema for emitted probes.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ProbeV1 struct {
	Title  string `json:"title"`
	Length int    `json:"length"`
	Seq    string `json:"seq"`
}
