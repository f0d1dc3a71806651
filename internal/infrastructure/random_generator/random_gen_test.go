package randomgenerator

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomHex(t *testing.T) {
	rg := NewRandomGenerator()

	a, err := rg.RandomHex(4)
	require.NoError(t, err)
	b, err := rg.RandomHex(4)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{8}$`), a)
	assert.NotEqual(t, a, b)
}
