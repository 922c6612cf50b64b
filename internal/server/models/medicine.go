// Серверная модель лекарства
package models

import (
	"time"

	"github.com/google/uuid"
)

// Medicine — запись о лекарстве, как она лежит в БД.
//
// Expiry хранится строкой "YYYY-MM-DD": валидация выполняется при записи,
// а при чтении строки с битой датой просто не попадают в выдачу.
type Medicine struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Batch     string
	Expiry    string
	Barcode   string
	Quantity  int
	CreatedAt time.Time
}
