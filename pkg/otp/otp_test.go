package otp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		code := Generate()
		require.Len(t, code, 6)
		for _, c := range code {
			require.True(t, c >= '0' && c <= '9', "code %q contains non-digit", code)
		}
		seen[code] = true
	}
	// 200 draws from a million values should essentially never all collide.
	assert.Greater(t, len(seen), 1)
}
