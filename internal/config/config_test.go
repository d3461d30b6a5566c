// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "probegen.toml")
	body := "genome = \"hg19.fa\"\n" +
		"annotations = [\"refGene.txt\", \"knownGene.txt\"]\n" +
		"output = \"json\"\n" +
		"threads = 4\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "hg19.fa", f.Genome)
	assert.Equal(t, []string{"refGene.txt", "knownGene.txt"}, f.Annotations)
	assert.Equal(t, "json", f.Output)
	assert.Equal(t, 4, f.Threads)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("genome = ["), 0o644))
	_, err = Load(path)
	require.Error(t, err)
}
