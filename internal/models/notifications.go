package models

import "time"

// RegistrationMail — сообщение для письма-подтверждения абонемента.
// Публикуется API при создании абонемента и потребляется notification-sender.
type RegistrationMail struct {
	Email        string    `json:"email"`
	StudentName  string    `json:"student_name"`
	PlanTitle    string    `json:"plan_title"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Price        float64   `json:"price"`
	MonthlyPrice float64   `json:"monthly_price"`
}

// AnswerMail — сообщение для письма с ответом на вопрос студента.
type AnswerMail struct {
	Email       string    `json:"email"`
	StudentName string    `json:"student_name"`
	Question    string    `json:"question"`
	Answer      string    `json:"answer"`
	AnswerAt    time.Time `json:"answer_at"`
}
