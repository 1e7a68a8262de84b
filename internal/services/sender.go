package services

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/gym-manager/internal/lib/sl"
	"github.com/magabrotheeeer/gym-manager/internal/lib/smtp"
	"github.com/magabrotheeeer/gym-manager/internal/models"
)

// Форматы дат в письмах: две цифры дня и месяца, цены с двумя знаками.
const (
	mailDateLayout     = "02.01.2006"
	mailDateTimeLayout = "02.01.2006 15:04:05"
)

// SenderService отправляет почтовые уведомления, полученные из очередей
// RabbitMQ: подтверждение абонемента и ответ на вопрос студента.
type SenderService struct {
	transport smtp.TransportInterface
	log       *slog.Logger
}

// NewSenderService создает новый экземпляр SenderService.
func NewSenderService(transport smtp.TransportInterface, log *slog.Logger) *SenderService {
	return &SenderService{
		transport: transport,
		log:       log,
	}
}

// SendRegistrationConfirmation отправляет письмо-подтверждение абонемента.
func (s *SenderService) SendRegistrationConfirmation(body []byte) error {
	var message models.RegistrationMail
	if err := json.Unmarshal(body, &message); err != nil {
		s.log.Error("failed to unmarshal message body", sl.Err(err))
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	to := []string{message.Email}
	subject := "Подтверждение записи в академию"
	bodyText := fmt.Sprintf(`Здравствуйте, %s!

Ваша запись на тариф %s подтверждена.

Начало: %s
Окончание: %s
Цена за месяц: %.2f
Полная стоимость: %.2f

Ждем вас в зале!`,
		message.StudentName, message.PlanTitle,
		message.StartDate.Format(mailDateLayout),
		message.EndDate.Format(mailDateLayout),
		message.MonthlyPrice, message.Price)

	return s.sendEmail(to, subject, bodyText)
}

// SendHelpOrderAnswer отправляет письмо с ответом тренера на вопрос студента.
func (s *SenderService) SendHelpOrderAnswer(body []byte) error {
	var message models.AnswerMail
	if err := json.Unmarshal(body, &message); err != nil {
		s.log.Error("failed to unmarshal message body", sl.Err(err))
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	to := []string{message.Email}
	subject := "Ваш вопрос получил ответ"
	bodyText := fmt.Sprintf(`Здравствуйте, %s!

Ваш вопрос: %s

Ответ тренера (%s): %s`,
		message.StudentName, message.Question,
		message.AnswerAt.Format(mailDateTimeLayout), message.Answer)

	return s.sendEmail(to, subject, bodyText)
}

func (s *SenderService) sendEmail(to []string, subject, bodyText string) error {
	msg := strings.Join([]string{
		"From: " + s.transport.GetSMTPUser(),
		"To: " + strings.Join(to, ";"),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		s.log.Error("failed to connect to SMTP server", sl.Err(err))
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	if err := client.Mail(s.transport.GetSMTPUser()); err != nil {
		s.log.Error("failed to set MAIL FROM", "from", s.transport.GetSMTPUser(), "error", sl.Err(err))
		return err
	}

	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			s.log.Error("failed to set RCPT TO", "recipient", addr, "error", sl.Err(err))
			return err
		}
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("failed to get Data writer", sl.Err(err))
		return err
	}

	if _, err = wc.Write([]byte(msg)); err != nil {
		s.log.Error("failed to write email body", sl.Err(err))
		return err
	}

	if err = wc.Close(); err != nil {
		s.log.Error("failed to close Data writer", sl.Err(err))
		return err
	}

	if err = client.Quit(); err != nil {
		s.log.Error("failed to quit SMTP client", sl.Err(err))
		return err
	}

	s.log.Info("email sent successfully", "to", to)
	return nil
}
