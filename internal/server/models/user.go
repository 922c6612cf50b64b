// Серверная модель пользователя
package models

import (
	"time"

	"github.com/google/uuid"
)

// User — владелец аптечки. Email нормализован (trim + lowercase),
// пароль хранится только в виде argon2id-хэша.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
