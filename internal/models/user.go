// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи и хэш пароля.
package models

import "time"

// User представляет администратора академии, от имени которого
// выполняются защищённые операции.
type User struct {
	ID           int       // Уникальный идентификатор пользователя
	Name         string    // Имя пользователя
	Email        string    // Электронная почта (уникальная)
	PasswordHash string    // Хэш пароля пользователя
	CreatedAt    time.Time // Дата создания учётной записи
}

// DummySession используется для приёма учетных данных из JSON-запроса.
type DummySession struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
