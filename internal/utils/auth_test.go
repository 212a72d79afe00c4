package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	encoded, err := Hash("s3cret-pass")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(encoded), "argon2id$v=19$"))

	assert.NoError(t, VerifyPassword(string(encoded), "s3cret-pass"))
	assert.ErrorIs(t, VerifyPassword(string(encoded), "wrong"), ErrPasswordInvalid)
}

func TestHashUsesFreshSalt(t *testing.T) {
	a, err := Hash("same")
	require.NoError(t, err)
	b, err := Hash("same")
	require.NoError(t, err)
	assert.NotEqual(t, string(a), string(b))
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	for _, h := range []string{"", "bcrypt$x", "argon2id$v=19$bad$salt$hash", "argon2id$v=19$m=1,t=1,p=1$!!$!!"} {
		assert.ErrorIs(t, VerifyPassword(h, "pw"), ErrInvalidHash, h)
	}
}
