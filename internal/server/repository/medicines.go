package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/IvanChernomyrdin/go-medkeeper/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-medkeeper/internal/shared/errors"
)

// MedicinesRepository реализует доступ к хранилищу лекарств (PostgreSQL).
// Отвечает исключительно за сохранение и извлечение данных без бизнес-логики.
type MedicinesRepository struct {
	db *sql.DB
}

// NewMedicinesRepository создаёт новый экземпляр MedicinesRepository.
func NewMedicinesRepository(db *sql.DB) *MedicinesRepository {
	return &MedicinesRepository{db: db}
}

// Create сохраняет новую запись о лекарстве пользователя.
//
// Валидация полей выполняется в сервисном слое,
// сюда приходят уже проверенные значения.
//
// Ошибки:
//   - ErrInvalidInput — нарушен check-констрейнт (например quantity < 0)
//   - ErrInternal — прочие ошибки базы данных
func (r *MedicinesRepository) Create(
	ctx context.Context,
	userID uuid.UUID,
	name, batch, expiry, barcode string,
	quantity int,
) (uuid.UUID, error) {
	var id uuid.UUID

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO medicines (user_id, name, batch, expiry, barcode, quantity)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`,
		userID, name, batch, expiry, barcode, quantity,
	).Scan(&id)

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23514" { // check_violation
			return uuid.Nil, serr.ErrInvalidInput
		}
		return uuid.Nil, serr.ErrInternal
	}

	return id, nil
}

// ListByUser возвращает все лекарства пользователя в порядке добавления.
//
// Expiry отдаётся строкой как есть: разбор даты и фильтрация битых
// значений — ответственность сервисного слоя.
func (r *MedicinesRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Medicine, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, name, batch, expiry, barcode, quantity, created_at
		  FROM medicines
		 WHERE user_id = $1
		 ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	var meds []models.Medicine
	for rows.Next() {
		var m models.Medicine
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.Name, &m.Batch, &m.Expiry, &m.Barcode, &m.Quantity, &m.CreatedAt,
		); err != nil {
			return nil, serr.ErrInternal
		}
		meds = append(meds, m)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}

	return meds, nil
}

// Delete удаляет лекарство, только если оно принадлежит userID.
//
// Чужая запись и несуществующий id неразличимы:
// в обоих случаях затронуто 0 строк — ErrNotFound.
func (r *MedicinesRepository) Delete(ctx context.Context, userID, medicineID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM medicines WHERE id = $1 AND user_id = $2`,
		medicineID, userID,
	)
	if err != nil {
		return serr.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		return serr.ErrInternal
	}
	if n == 0 {
		return serr.ErrNotFound
	}
	return nil
}
