// Package service содержит бизнес-логику приложения (medkeeper).
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-medkeeper/internal/server/config"
	"github.com/IvanChernomyrdin/go-medkeeper/internal/server/models"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users     UsersRepo
	Sessions  SessionsRepo
	Medicines MedicinesRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth      *AuthService
	Medicines *MedicinesService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (параметры хеширования пароля) и
// MedicinesService (порог warning для сроков годности).
func NewServices(repos Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:      NewAuthService(repos.Users, repos.Sessions, cfg),
		Medicines: NewMedicinesService(repos.Medicines, cfg),
	}
}

// UsersRepo — репозиторий пользователей (нужен для auth/signup/login).
type UsersRepo interface {
	Create(ctx context.Context, email, passwordHash string) (uuid.UUID, error)
	GetByEmail(ctx context.Context, email string) (uuid.UUID, string, error)
}

// MedicinesRepo — репозиторий лекарств (создание, выборка по владельцу, удаление).
type MedicinesRepo interface {
	Create(ctx context.Context, userID uuid.UUID, name, batch, expiry, barcode string, quantity int) (uuid.UUID, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Medicine, error)
	Delete(ctx context.Context, userID, medicineID uuid.UUID) error
}

type SessionsRepo interface {
	Create(ctx context.Context, userID uuid.UUID, refreshHash []byte, expiresAt time.Time) (uuid.UUID, error)
	GetByRefreshHash(ctx context.Context, refreshHash []byte) (id uuid.UUID, userID uuid.UUID, expiresAt time.Time, revokedAt *time.Time, replacedBy *uuid.UUID, err error)
	RevokeAndReplace(ctx context.Context, oldID, newID uuid.UUID) error
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error
}
