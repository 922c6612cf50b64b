// Package errors содержит общие доменные ошибки приложения
// и утилиты для error wrapping.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое.
package errors

import "errors"

var (
	// Входные данные невалидны (пустые поля, неправильный формат и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Неверные учётные данные
	ErrInvalidCredentials = errors.New("invalid credentials")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Неавторизован
	ErrUnauthorized = errors.New("unauthorized")
	// Ресурс уже существует (например email уже занят)
	ErrAlreadyExists = errors.New("email already registered")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
	// конфликт (например дубликат refresh-сессии в бд)
	ErrConflict = errors.New("conflict")
)

// для тестов
var (
	ErrExpectedError   = errors.New("expected error")
	ErrUnexpectedError = errors.New("unexpected error")
)

// только для лекарств
var (
	// medicines
	ErrInvalidQuantity  = errors.New("quantity must be a number")
	ErrNegativeQuantity = errors.New("quantity must be non-negative")
	ErrInvalidExpiry    = errors.New("expiry date must be in YYYY-MM-DD format")
)
