package models

import "time"

// Plan представляет тариф академии: длительность в месяцах и цена за месяц.
type Plan struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Duration int     `json:"duration"` // Длительность в календарных месяцах
	Price    float64 `json:"price"`    // Цена за один месяц
}

// DummyPlan используется для приёма данных тарифа из JSON-запроса.
type DummyPlan struct {
	Title    string  `json:"title" validate:"required"`
	Duration int     `json:"duration" validate:"required,gt=0"`
	Price    float64 `json:"price" validate:"required,gt=0"`
}

// PlanSummary — краткая форма тарифа для вложенных объектов ответов.
type PlanSummary struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// Registration представляет абонемент студента на тариф.
// Поля EndDate и Price производные: они всегда пересчитываются из
// текущего тарифа при создании и обновлении.
type Registration struct {
	ID        int       `json:"id"`
	StudentID int       `json:"student_id"`
	PlanID    int       `json:"plan_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Price     float64   `json:"price"`  // Полная стоимость за весь срок
	Active    bool      `json:"active"` // Вычисляется: start_date <= now <= end_date
}

// RegistrationDetail — абонемент с вложенными студентом и тарифом
// для списочных ответов и чтения по ID.
type RegistrationDetail struct {
	ID        int            `json:"id"`
	StartDate time.Time      `json:"start_date"`
	EndDate   time.Time      `json:"end_date"`
	Price     float64        `json:"price"`
	Active    bool           `json:"active"`
	Student   StudentSummary `json:"student"`
	Plan      PlanSummary    `json:"plan"`
}

// DummyRegistration используется для приёма данных абонемента из JSON-запроса.
// Дата приходит строкой в формате 2006-01-02.
type DummyRegistration struct {
	StudentID int    `json:"student_id" validate:"required"`
	PlanID    int    `json:"plan_id" validate:"required"`
	StartDate string `json:"start_date" validate:"required"`
}
