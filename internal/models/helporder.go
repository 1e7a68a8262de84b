package models

import "time"

// HelpOrder представляет вопрос студента тренеру.
// Question неизменяем после создания; AnswerAt выставляется один раз,
// при первом ответе.
type HelpOrder struct {
	ID        int        `json:"id"`
	StudentID int        `json:"student_id"`
	Question  string     `json:"question"`
	Answer    *string    `json:"answer"`
	AnswerAt  *time.Time `json:"answer_at"`
	CreatedAt time.Time  `json:"created_at"`
}

// HelpOrderDetail — вопрос с вложенным студентом для списков тренера.
type HelpOrderDetail struct {
	ID       int            `json:"id"`
	Question string         `json:"question"`
	Answer   *string        `json:"answer"`
	AnswerAt *time.Time     `json:"answer_at"`
	Student  StudentSummary `json:"student"`
}

// DummyHelpOrder используется для приёма вопроса из JSON-запроса.
type DummyHelpOrder struct {
	Question string `json:"question" validate:"required"`
}

// DummyAnswer используется для приёма ответа тренера из JSON-запроса.
type DummyAnswer struct {
	Answer string `json:"answer" validate:"required"`
}
