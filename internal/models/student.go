// Package models содержит доменные структуры академии: студенты, тарифы,
// абонементы, чекины и вопросы, а также вспомогательные Dummy-типы для
// приёма данных из JSON-запросов с тегами валидации.
package models

import "time"

// Student представляет студента академии.
type Student struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`  // Уникальный email студента
	Age    int     `json:"age"`    // Возраст, строго больше 14
	Weight float64 `json:"weight"` // Вес в килограммах
	Height float64 `json:"height"` // Рост в сантиметрах
}

// DummyStudent используется для приёма данных студента из JSON-запроса.
type DummyStudent struct {
	Name   string  `json:"name" validate:"required"`
	Email  string  `json:"email" validate:"required,email"`
	Age    int     `json:"age" validate:"required,gt=14"`
	Weight float64 `json:"weight" validate:"required,gt=0"`
	Height float64 `json:"height" validate:"required,gt=0"`
}

// StudentSummary — краткая форма студента для вложенных объектов ответов.
type StudentSummary struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// Checkin представляет отметку о посещении зала.
type Checkin struct {
	ID        int       `json:"id"`
	StudentID int       `json:"student_id"`
	CreatedAt time.Time `json:"created_at"` // Неизменяемая метка времени посещения
}
