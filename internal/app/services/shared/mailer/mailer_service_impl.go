package mailer

import (
	"context"
	"errors"
	"halo-service/internal/app/contracts"
	"halo-service/internal/pkg/constvars"
	"halo-service/internal/pkg/dto/requests"
	"halo-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

var errBrokerUnavailable = errors.New("rabbitmq connection is not available")

// Publisher is the part of *amqp091.Channel the mailer publishes with.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	IsClosed() bool
}

type mailerService struct {
	Channel Publisher
	Queue   string
}

// NewMailerService opens a channel on the connection and declares the queue.
// A nil connection yields a service whose publishes fail, so the API can run
// while the broker is down.
func NewMailerService(rabbitMQConnection *amqp091.Connection, queue string) (contracts.MailerService, error) {
	if rabbitMQConnection == nil {
		return &mailerService{Queue: queue}, nil
	}

	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &mailerService{
		Channel: channel,
		Queue:   queue,
	}, nil
}

func NewMailerServiceWithPublisher(publisher Publisher, queue string) contracts.MailerService {
	return &mailerService{Channel: publisher, Queue: queue}
}

func (s *mailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	if err := s.Ping(); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	body, err := json.Marshal(request)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	return nil
}

func (s *mailerService) Ping() error {
	if s.Channel == nil || s.Channel.IsClosed() {
		return errBrokerUnavailable
	}
	return nil
}
