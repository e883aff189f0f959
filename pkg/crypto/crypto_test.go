package crypto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckSecret(t *testing.T) {
	hash, err := HashSecret("482913")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	assert.True(t, CheckSecret("482913", hash))
	assert.False(t, CheckSecret("000000", hash))
}

func TestGenerateNumericCode(t *testing.T) {
	code, err := GenerateNumericCode(6)
	assert.NoError(t, err)
	assert.Len(t, code, 6)
	for _, c := range code {
		assert.True(t, c >= '0' && c <= '9')
	}

	long, err := GenerateNumericCode(8)
	assert.NoError(t, err)
	assert.Len(t, long, 8)
}

func TestHashSecret_ErrorBranch(t *testing.T) {
	orig := bcryptGenerateFromPassword
	t.Cleanup(func() { bcryptGenerateFromPassword = orig })

	bcryptGenerateFromPassword = func([]byte, int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	_, err := HashSecret("482913")
	assert.Error(t, err)
}
