package otp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeGenerator_Generate_SixDigits(t *testing.T) {
	gen := NewCodeGenerator()

	for range 200 {
		code, err := gen.Generate()
		require.NoError(t, err)
		assert.Len(t, code, 6)
		assert.GreaterOrEqual(t, code, "100000")
		assert.LessOrEqual(t, code, "999999")
	}
}

func TestCodeGenerator_Generate_Varies(t *testing.T) {
	gen := NewCodeGenerator()

	seen := make(map[string]struct{})
	for range 50 {
		code, err := gen.Generate()
		require.NoError(t, err)
		seen[code] = struct{}{}
	}

	// 50 draws from 900k values colliding down to a single code is not credible.
	assert.Greater(t, len(seen), 1)
}
