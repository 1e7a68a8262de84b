package rabbitmq

// Exchange — имя exchange для всех почтовых уведомлений.
const Exchange = "notifications"

// Routing keys для почтовых уведомлений.
const (
	RegistrationKey = "registration"
	AnswerKey       = "answer"
)

// QueueConfig описывает очередь и её routing key.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// GetNotificationQueues возвращает очереди, которые слушает notification-sender.
func GetNotificationQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: "notification.registration", RoutingKey: RegistrationKey},
		{QueueName: "notification.answer", RoutingKey: AnswerKey},
	}
}
