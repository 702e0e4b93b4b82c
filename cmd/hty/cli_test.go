package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/htygo/metadata"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		output string
		outDir string
		want   string
	}{
		{"explicit output wins", "data/a.csv", "b.hty", "", "b.hty"},
		{"out dir", "data/a.csv", "", "out", filepath.Join("out", "a.hty")},
		{"default next to input", "data/a.csv", "", "", filepath.Join("data", "a.hty")},
		{"no extension", "a", "", "", "a.hty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, outputPath(tt.input, tt.output, tt.outDir))
		})
	}
}

func TestParsePredicate(t *testing.T) {
	col, op, threshold, err := parsePredicate("fare > 10.5")
	require.NoError(t, err)
	assert.Equal(t, "fare", col)
	assert.Equal(t, metadata.OpGreaterThan, op)
	assert.Equal(t, float32(10.5), threshold)

	_, _, _, err = parsePredicate("fare >")
	assert.Error(t, err)

	_, _, _, err = parsePredicate("fare between 10")
	assert.Error(t, err)

	_, _, _, err = parsePredicate("fare > ten")
	assert.Error(t, err)
}

func TestParseRows(t *testing.T) {
	rows, err := parseRows([]string{"1,2", "3.5, -4"})
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{1, 2}, {3.5, -4}}, rows)

	_, err = parseRows([]string{"1,x"})
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, `
log:
  level: debug
  format: json
remote:
  backend: minio
  bucket: hty
  endpoint: localhost:9000
`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "minio", cfg.Remote.Backend)
	assert.Equal(t, "hty", cfg.Remote.Bucket)
	assert.Equal(t, "localhost:9000", cfg.Remote.Endpoint)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}
