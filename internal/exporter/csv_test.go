package exporter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stream.csv")

	w, err := NewStreamWriter(path, []string{"Date", "Value"}, 0)
	require.NoError(t, err)

	require.NoError(t, w.WriteRecord([]string{"2026-01-02", "1.5"}))
	require.NoError(t, w.WriteRecord([]string{"2026-01-03", "2.5"}))
	require.NoError(t, w.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Date,Value\n2026-01-02,1.5\n2026-01-03,2.5\n", string(content))
}

func TestStreamWriter_Delimiters(t *testing.T) {
	tests := []struct {
		name     string
		comma    rune
		expected string
	}{
		{"tab", '\t', "a\tb\n1\t2\n"},
		{"semicolon", ';', "a;b\n1;2\n"},
		{"zero means comma", 0, "a,b\n1,2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out.csv")

			w, err := NewStreamWriter(path, []string{"a", "b"}, tt.comma)
			require.NoError(t, err)
			require.NoError(t, w.WriteRecord([]string{"1", "2"}))
			require.NoError(t, w.Close())

			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(content))
		})
	}
}

func TestStreamWriter_EmptyLeadingHeaderCell(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	w, err := NewStreamWriter(path, []string{"", "f1"}, 0)
	require.NoError(t, err)
	require.NoError(t, w.WriteRecord([]string{"sim1", "1"}))
	require.NoError(t, w.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ",f1\nsim1,1\n", string(content))
}

func TestStreamWriter_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.csv")

	w, err := NewStreamWriter(path, []string{"x"}, 0)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestStreamWriter_Truncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("old content\nwith lines\n"), 0644))

	w, err := NewStreamWriter(path, []string{"new"}, 0)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(content))
}

func TestStreamWriter_NoHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	w, err := NewStreamWriter(path, nil, 0)
	require.NoError(t, err)
	require.NoError(t, w.WriteRecord([]string{"a", "b"}))
	require.NoError(t, w.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(content))
}
