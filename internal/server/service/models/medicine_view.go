// Package models содержит DTO сервисного слоя, которые api отдаёт наружу.
package models

// MedicineView — запись о лекарстве в выдаче списка.
//
// DaysLeft и Status вычисляются на момент запроса,
// в БД они не хранятся.
type MedicineView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Batch    string `json:"batch"`
	Expiry   string `json:"expiry"`
	Barcode  string `json:"barcode"`
	Quantity int    `json:"quantity"`
	DaysLeft int    `json:"days_left"`
	Status   string `json:"status"`
}
