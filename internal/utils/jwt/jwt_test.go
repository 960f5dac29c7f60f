package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_GenerateAndValidate(t *testing.T) {
	tests := []struct {
		name   string
		userID int64
		login  string
	}{
		{name: "Regular user", userID: 12345, login: "steve@example.com"},
		{name: "Another user", userID: 99999, login: "alex@example.com"},
		{name: "Without login", userID: 7},
	}

	m := NewManager("test-secret-key", time.Hour)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := m.Generate(tt.userID, tt.login)
			require.NoError(t, err)
			require.NotEmpty(t, token)

			claims, err := m.Validate(token)
			require.NoError(t, err)
			assert.Equal(t, tt.userID, claims.UserID)
			assert.Equal(t, tt.login, claims.Login)
			assert.Equal(t, Issuer, claims.Issuer)
		})
	}
}

func TestManager_ValidateRejects(t *testing.T) {
	m := NewManager("test-secret-key", time.Hour)
	valid, err := m.Generate(1, "steve@example.com")
	require.NoError(t, err)

	t.Run("Wrong secret", func(t *testing.T) {
		_, err := NewManager("wrong-secret", time.Hour).Validate(valid)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := m.Validate("invalid.token.string")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := m.Validate("")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Unsigned", func(t *testing.T) {
		_, err := m.Validate("eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJ1c2VyX2lkIjoxMjM0NX0.")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		short := NewManager("test-secret-key", time.Nanosecond)
		token, err := short.Generate(1, "")
		require.NoError(t, err)

		// Ждем, чтобы токен истек
		time.Sleep(10 * time.Millisecond)

		_, err = short.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Foreign issuer", func(t *testing.T) {
		claims := Claims{
			UserID: 1,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "someone-else",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret-key"))
		require.NoError(t, err)

		_, err = m.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func BenchmarkManager_Validate(b *testing.B) {
	m := NewManager("test-secret-key", time.Hour)
	token, _ := m.Generate(12345, "steve@example.com")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Validate(token)
	}
}
