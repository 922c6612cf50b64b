package service

import "time"

// Status — состояние срока годности лекарства.
type Status string

const (
	StatusExpired Status = "expired"
	StatusWarning Status = "warning"
	StatusSafe    Status = "safe"
)

// ExpiryLayout — формат дат срока годности во всём приложении.
const ExpiryLayout = "2006-01-02"

// DaysLeft считает количество целых календарных дней от today до expiry.
//
// Обе даты усекаются до суток, поэтому время внутри дня на результат
// не влияет. Результат может быть отрицательным (срок уже истёк).
func DaysLeft(expiry, today time.Time) int {
	e := time.Date(expiry.Year(), expiry.Month(), expiry.Day(), 0, 0, 0, 0, time.UTC)
	d := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(d) / (24 * time.Hour))
}

// Classify относит daysLeft к статусу:
//   - daysLeft < 0 — expired
//   - 0 <= daysLeft <= warningWithinDays — warning
//   - daysLeft > warningWithinDays — safe
//
// Функция чистая: "сегодня" сюда не зашито, его считает вызывающий.
func Classify(daysLeft, warningWithinDays int) Status {
	switch {
	case daysLeft < 0:
		return StatusExpired
	case daysLeft <= warningWithinDays:
		return StatusWarning
	default:
		return StatusSafe
	}
}
