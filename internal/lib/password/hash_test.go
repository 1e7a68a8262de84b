package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHashAndCompare(t *testing.T) {
	hash, err := GetHash("123456")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "123456", hash)

	assert.NoError(t, CompareHash(hash, "123456"))
	assert.Error(t, CompareHash(hash, "654321"))
}
