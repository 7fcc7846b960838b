package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCode(t *testing.T) {
	for _, length := range []int{4, 6, 8} {
		code, err := GenerateCode(length)
		require.NoError(t, err)
		require.Len(t, code, length)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "non-digit %q in code %q", r, code)
		}
	}

	_, err := GenerateCode(0)
	assert.Error(t, err)
	_, err = GenerateCode(-1)
	assert.Error(t, err)
}

func TestGenerateCodeVaries(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := GenerateCode(6)
		require.NoError(t, err)
		seen[code] = true
	}
	// 50 draws from a million values colliding down to one would mean the
	// generator is broken
	assert.Greater(t, len(seen), 1)
}

func TestNewOpaqueToken(t *testing.T) {
	tok, err := NewOpaqueToken(32)
	require.NoError(t, err)
	assert.Len(t, tok, 64) // hex doubles the byte count

	other, err := NewOpaqueToken(32)
	require.NoError(t, err)
	assert.NotEqual(t, tok, other)

	// non-positive sizes fall back to the 256-bit default
	tok, err = NewOpaqueToken(0)
	require.NoError(t, err)
	assert.Len(t, tok, 64)
}
