// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// File is the optional TOML configuration providing defaults for the flags
// most runs repeat: the reference genome and annotation tables rarely change
// between invocations. Flags always win over file values.
type File struct {
	Genome      string   `toml:"genome"`
	Annotations []string `toml:"annotations"`
	Output      string   `toml:"output"`
	Threads     int      `toml:"threads"`
}

// Load reads and decodes a TOML config file.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("config %s: %w", path, err)
	}
	return f, nil
}
