package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestFileDigest_Deterministic(t *testing.T) {
	a := writeTemp(t, "a", "ledger bytes")
	b := writeTemp(t, "b", "ledger bytes")

	da, err := FileDigest(a)
	require.NoError(t, err)
	db, err := FileDigest(b)
	require.NoError(t, err)

	assert.Equal(t, da, db)
	assert.Len(t, da, 64) // 32 bytes hex-encoded
}

func TestFileDigest_DifferentContent(t *testing.T) {
	da, err := FileDigest(writeTemp(t, "a", "one"))
	require.NoError(t, err)
	db, err := FileDigest(writeTemp(t, "b", "two"))
	require.NoError(t, err)

	assert.NotEqual(t, da, db)
}

func TestFileDigest_Missing(t *testing.T) {
	_, err := FileDigest(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSameContent(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "identical", a: "abc", b: "abc", want: true},
		{name: "same size different bytes", a: "abc", b: "abd", want: false},
		{name: "different size", a: "abc", b: "abcd", want: false},
		{name: "both empty", a: "", b: "", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			same, err := SameContent(writeTemp(t, "a", tt.a), writeTemp(t, "b", tt.b))
			require.NoError(t, err)
			assert.Equal(t, tt.want, same)
		})
	}
}

func TestSameContent_MissingFile(t *testing.T) {
	_, err := SameContent(writeTemp(t, "a", "x"), filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
