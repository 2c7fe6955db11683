package auth

import (
	"strings"
	"testing"

	"photoverify/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordGenerator_Generate(t *testing.T) {
	generator := NewPasswordGenerator(&config.Config{Auth: &config.AuthConfig{TempPasswordLength: 20}})

	first, err := generator.Generate()
	require.NoError(t, err)
	second, err := generator.Generate()
	require.NoError(t, err)

	assert.Len(t, first, 20)
	assert.NotEqual(t, first, second)
	for _, r := range first {
		assert.True(t, strings.ContainsRune(tempPasswordAlphabet, r))
	}
}

func TestPasswordGenerator_EnforcesMinimumLength(t *testing.T) {
	generator := NewPasswordGenerator(&config.Config{Auth: &config.AuthConfig{TempPasswordLength: 4}})

	password, err := generator.Generate()
	require.NoError(t, err)
	assert.Len(t, password, minTempPasswordLength)
}
