package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken(t *testing.T) {
	t.Run("generates a signed token carrying the user id", func(t *testing.T) {
		token, err := GenerateJWTToken("dashportal", 42, time.Hour, "sign-key")
		require.NoError(t, err)
		assert.NotEmpty(t, token.SignedString)
		assert.Equal(t, int64(42), token.UserID)
	})

	t.Run("rejects missing parameters", func(t *testing.T) {
		_, err := GenerateJWTToken("", 42, time.Hour, "sign-key")
		assert.Error(t, err)

		_, err = GenerateJWTToken("dashportal", 42, 0, "sign-key")
		assert.Error(t, err)

		_, err = GenerateJWTToken("dashportal", 42, time.Hour, "")
		assert.Error(t, err)
	})
}

func TestValidateAndParseJWTToken(t *testing.T) {
	issued, err := GenerateJWTToken("dashportal", 42, time.Hour, "sign-key")
	require.NoError(t, err)

	t.Run("valid token round-trips the user id", func(t *testing.T) {
		parsed, err := ValidateAndParseJWTToken(issued.SignedString, "sign-key", "dashportal")
		require.NoError(t, err)
		assert.Equal(t, int64(42), parsed.UserID)
	})

	t.Run("wrong sign key is rejected", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken(issued.SignedString, "other-key", "dashportal")
		assert.Error(t, err)
	})

	t.Run("wrong issuer is rejected", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken(issued.SignedString, "sign-key", "other-issuer")
		assert.Error(t, err)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		expired, err := GenerateJWTToken("dashportal", 42, -time.Minute, "sign-key")
		require.NoError(t, err)

		_, err = ValidateAndParseJWTToken(expired.SignedString, "sign-key", "dashportal")
		assert.Error(t, err)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken("not.a.jwt", "sign-key", "dashportal")
		assert.Error(t, err)
	})
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	for _, header := range []string{"", "Bearer", "Bearer ", "abc.def.ghi"} {
		_, err := ParseBearerToken(header)
		assert.Error(t, err, "header %q", header)
	}
}
