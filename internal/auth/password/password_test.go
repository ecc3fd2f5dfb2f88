package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	hashed, err := Hash("s3cret")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hashed, "$2a$"))
	cost, err := bcrypt.Cost([]byte(hashed))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)

	assert.True(t, Verify("s3cret", hashed))
	assert.False(t, Verify("S3cret", hashed))
	assert.False(t, Verify("s3cret", "not-a-hash"))
}

func TestHashIsSalted(t *testing.T) {
	a, err := Hash("same")
	require.NoError(t, err)
	b, err := Hash("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestHashRejectsOverlongPassword(t *testing.T) {
	_, err := Hash(strings.Repeat("a", MaxLength))
	require.NoError(t, err)

	_, err = Hash(strings.Repeat("a", MaxLength+1))
	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
}
