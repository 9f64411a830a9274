package paseto

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/o1egl/paseto"

	"Sistem-Utilitas-QR/models"
)

// Maker membungkus PASETO v2 local untuk token sesi admin.
type Maker struct {
	instance     *paseto.V2
	symmetricKey []byte
}

// NewMaker mendekode secret Base64 dan memastikan panjangnya tepat 32 byte
// sesuai kebutuhan PASETO v2 local.
func NewMaker(secretBase64 string) (*Maker, error) {
	var decodedKey []byte
	var err error

	decodedKey, err = base64.URLEncoding.DecodeString(secretBase64)
	if err != nil {
		decodedKey, err = base64.StdEncoding.DecodeString(secretBase64)
		if err != nil {
			return nil, fmt.Errorf("PASETO_SECRET bukan Base64 yang valid: %w", err)
		}
	}

	if len(decodedKey) != 32 {
		return nil, fmt.Errorf("PASETO_SECRET harus tepat 32 byte setelah decode, dapat %d byte", len(decodedKey))
	}

	return &Maker{
		instance:     paseto.NewV2(),
		symmetricKey: decodedKey,
	}, nil
}

// GenerateToken membuat token 24 jam untuk user yang sudah terautentikasi.
func (m *Maker) GenerateToken(user *models.User) (string, error) {
	now := time.Now()

	token := paseto.JSONToken{
		IssuedAt:   now,
		Expiration: now.Add(24 * time.Hour),
		NotBefore:  now,
	}
	token.Set("email", user.Email)
	token.Set("role", user.Role)

	return m.instance.Encrypt(m.symmetricKey, token, "")
}

// ValidateToken mendekripsi dan memvalidasi token, lalu mengembalikan claims.
func (m *Maker) ValidateToken(tokenString string) (*models.Claims, error) {
	var token paseto.JSONToken
	var footer string

	if err := m.instance.Decrypt(tokenString, m.symmetricKey, &token, &footer); err != nil {
		return nil, fmt.Errorf("gagal dekripsi token paseto: %w", err)
	}

	if err := token.Validate(); err != nil {
		return nil, fmt.Errorf("validasi token gagal: %w", err)
	}

	return &models.Claims{
		Email: token.Get("email"),
		Role:  token.Get("role"),
	}, nil
}
