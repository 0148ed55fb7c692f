package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer(t *testing.T) {
	t.Run("выпущенный токен проходит проверку", func(t *testing.T) {
		issuer := NewTokenIssuer("secret", time.Hour)

		token, err := issuer.Issue("owner-1", "owner@example.com")
		require.NoError(t, err)

		ownerID, err := issuer.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "owner-1", ownerID)
	})

	t.Run("чужая подпись", func(t *testing.T) {
		token, err := NewTokenIssuer("secret-a", time.Hour).Issue("owner-1", "")
		require.NoError(t, err)

		_, err = NewTokenIssuer("secret-b", time.Hour).Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("истекший токен", func(t *testing.T) {
		issuer := NewTokenIssuer("secret", time.Minute)
		issuer.now = func() time.Time { return time.Now().Add(-time.Hour) }
		token, err := issuer.Issue("owner-1", "")
		require.NoError(t, err)

		issuer.now = time.Now
		_, err = issuer.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("мусор вместо токена", func(t *testing.T) {
		_, err := NewTokenIssuer("secret", time.Hour).Verify("not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
