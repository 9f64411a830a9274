package paseto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Sistem-Utilitas-QR/models"
)

func testSecret() string {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	return base64.URLEncoding.EncodeToString(key)
}

func TestNewMakerRejectsBadSecret(t *testing.T) {
	_, err := NewMaker("bukan base64 !!!")
	assert.Error(t, err)

	// Panjang salah setelah decode.
	short := base64.URLEncoding.EncodeToString([]byte("pendek"))
	_, err = NewMaker(short)
	assert.Error(t, err)
}

func TestTokenRoundTrip(t *testing.T) {
	maker, err := NewMaker(testSecret())
	require.NoError(t, err)

	user := &models.User{Name: "Platform Admin", Email: "admin@example.com", Role: "admin"}
	token, err := maker.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := maker.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	maker, err := NewMaker(testSecret())
	require.NoError(t, err)

	_, err = maker.ValidateToken("v2.local.token-palsu")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	maker, err := NewMaker(testSecret())
	require.NoError(t, err)

	otherKey := make([]byte, 32)
	for i := range otherKey {
		otherKey[i] = byte(100 + i)
	}
	other, err := NewMaker(base64.URLEncoding.EncodeToString(otherKey))
	require.NoError(t, err)

	token, err := maker.GenerateToken(&models.User{Email: "a@b.com", Role: "admin"})
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}
