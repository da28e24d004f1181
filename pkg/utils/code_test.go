package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDownloadCode(t *testing.T) {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

	code, err := GenerateDownloadCode()
	require.NoError(t, err)
	assert.Len(t, code, DownloadCodeLength)

	for _, r := range code {
		assert.True(t, strings.ContainsRune(alphabet, r), "unexpected character %q in code %q", r, code)
	}
}

func TestGenerateDownloadCodeUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code, err := GenerateDownloadCode()
		require.NoError(t, err)
		assert.False(t, seen[code], "duplicate code %q", code)
		seen[code] = true
	}
}
