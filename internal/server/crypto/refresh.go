package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
)

// длина refresh-токена в байтах до кодирования
const refreshTokenBytes = 32

// NewRefreshToken генерирует случайный refresh-токен.
// Сам токен уходит клиенту, в БД хранится только его хэш.
func NewRefreshToken() (string, error) {
	raw := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// HashRefreshToken возвращает sha256-хэш токена для хранения и поиска сессии.
func HashRefreshToken(token string) []byte {
	sum := sha256.Sum256([]byte(token))
	return sum[:]
}
