package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-medkeeper/internal/server/config"
	svcmodels "github.com/IvanChernomyrdin/go-medkeeper/internal/server/service/models"
	serr "github.com/IvanChernomyrdin/go-medkeeper/internal/shared/errors"
)

// MedicinesService реализует бизнес-логику учёта лекарств.
// Сервис:
//   - валидирует входные данные при добавлении;
//   - аннотирует выдачу статусом срока годности;
//   - не знает о HTTP и БД напрямую.
type MedicinesService struct {
	repo MedicinesRepo

	warningWithinDays int

	// now отдаёт "сегодня" для классификации сроков.
	// В тестах подменяется через WithClock.
	now func() time.Time
}

// NewMedicinesService создаёт новый MedicinesService.
func NewMedicinesService(repo MedicinesRepo, cfg *config.Config) *MedicinesService {
	return &MedicinesService{
		repo:              repo,
		warningWithinDays: cfg.Expiry.WarningWithinDays,
		now:               time.Now,
	}
}

// WithClock подменяет источник текущего времени (для тестов).
func (s *MedicinesService) WithClock(now func() time.Time) *MedicinesService {
	s.now = now
	return s
}

// AddMedicineInput — сырые поля запроса добавления лекарства.
// Quantity приходит строкой и валидируется здесь, а не в HTTP-слое.
type AddMedicineInput struct {
	Name     string
	Batch    string
	Expiry   string
	Barcode  string
	Quantity string
}

// Add создаёт запись о лекарстве для пользователя.
//
// Валидации (в этом порядке, до любой записи в БД):
//   - все поля обязательны; ошибка перечисляет каждое отсутствующее;
//   - quantity — целое число >= 0 (нечисло и отрицательное — разные ошибки);
//   - expiry — дата в формате YYYY-MM-DD.
//
// Ошибки:
//   - ErrInvalidInput (с перечнем полей)
//   - ErrInvalidQuantity / ErrNegativeQuantity
//   - ErrInvalidExpiry
//   - ErrInternal — ошибка хранилища
func (s *MedicinesService) Add(ctx context.Context, userID uuid.UUID, in AddMedicineInput) (uuid.UUID, error) {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"name", in.Name},
		{"batch", in.Batch},
		{"expiry", in.Expiry},
		{"barcode", in.Barcode},
		{"quantity", in.Quantity},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return uuid.Nil, fmt.Errorf("%w: missing fields: %s", serr.ErrInvalidInput, strings.Join(missing, ", "))
	}

	qty, err := strconv.Atoi(strings.TrimSpace(in.Quantity))
	if err != nil {
		return uuid.Nil, serr.ErrInvalidQuantity
	}
	if qty < 0 {
		return uuid.Nil, serr.ErrNegativeQuantity
	}

	expiry := strings.TrimSpace(in.Expiry)
	if _, err := time.Parse(ExpiryLayout, expiry); err != nil {
		return uuid.Nil, serr.ErrInvalidExpiry
	}

	return s.repo.Create(ctx, userID, in.Name, in.Batch, expiry, in.Barcode, qty)
}

// List возвращает лекарства пользователя, аннотированные days_left и status.
//
// Политика чтения мягкая: записи, у которых expiry в БД не парсится,
// молча исключаются из выдачи — битые данные в покое не должны
// ломать листинг целиком.
func (s *MedicinesService) List(ctx context.Context, userID uuid.UUID) ([]svcmodels.MedicineView, error) {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := s.now()

	views := make([]svcmodels.MedicineView, 0, len(rows))
	for _, m := range rows {
		expiry, err := time.Parse(ExpiryLayout, m.Expiry)
		if err != nil {
			// битую дату пропускаем
			continue
		}

		days := DaysLeft(expiry, today)

		views = append(views, svcmodels.MedicineView{
			ID:       m.ID.String(),
			Name:     m.Name,
			Batch:    m.Batch,
			Expiry:   m.Expiry,
			Barcode:  m.Barcode,
			Quantity: m.Quantity,
			DaysLeft: days,
			Status:   string(Classify(days, s.warningWithinDays)),
		})
	}

	return views, nil
}

// Delete удаляет лекарство пользователя.
//
// Чужая запись и несуществующий id неразличимы для вызывающего:
// оба случая — ErrNotFound.
func (s *MedicinesService) Delete(ctx context.Context, userID, medicineID uuid.UUID) error {
	return s.repo.Delete(ctx, userID, medicineID)
}
