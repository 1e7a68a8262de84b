// Package services содержит бизнес-логику академии: студенты, тарифы,
// абонементы, чекины, вопросы студентов и аутентификация администратора.
package services

import "errors"

// Доменные ошибки. Обработчики переводят их в HTTP-ответы:
// валидационные — в 400, остальные — в 401 (исторически статус 401
// используется и для «не найдено», и для отказов бизнес-правил).
var (
	ErrStudentNotFound      = errors.New("student does not exists")
	ErrStudentExists        = errors.New("student already exists")
	ErrPlanNotFound         = errors.New("plan does not exists")
	ErrRegistrationNotFound = errors.New("registration does not exists")
	ErrHelpOrderNotFound    = errors.New("help order does not exists")
	ErrRegistrationInactive = errors.New("student registration is not active")
	ErrCheckinLimit         = errors.New("maximum checkins on past 7 days reached")
	ErrInvalidStartDate     = errors.New("invalid start date")
	ErrUserNotFound         = errors.New("user not found")
	ErrPasswordMismatch     = errors.New("password does not match")
)
