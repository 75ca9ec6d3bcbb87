package main

import (
	"halo-service/internal/app/config"
	"halo-service/internal/app/drivers/logger"
	"halo-service/internal/app/drivers/mailer"
	"halo-service/internal/app/drivers/messaging"
	"halo-service/internal/pkg/dto/requests"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

// The worker drains the mailer queue and relays each message over SMTP.
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	connection := messaging.MustNewRabbitMQ(driverConfig)
	defer connection.Close()

	channel, err := connection.Channel()
	if err != nil {
		log.Fatalf("Failed to open rabbitMQ channel: %v", err)
	}
	defer channel.Close()

	queue := internalConfig.RabbitMQ.MailerQueue
	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		log.Fatalf("Failed to declare queue %s: %v", queue, err)
	}

	err = channel.Qos(1, 0, false)
	if err != nil {
		log.Fatalf("Failed to set QoS: %v", err)
	}

	deliveries, err := channel.Consume(queue, "halo-mailer-worker", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("Failed to consume queue %s: %v", queue, err)
	}

	smtpClient := mailer.NewSMTPClient(driverConfig, log)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	log.WithField("queue", queue).Info("Mailer worker started")
	for {
		select {
		case <-c:
			log.Info("Mailer worker exiting")
			return
		case delivery, ok := <-deliveries:
			if !ok {
				log.Warn("Delivery channel closed, mailer worker exiting")
				return
			}
			handleDelivery(log, smtpClient, delivery.Body, delivery)
		}
	}
}

type emailSender interface {
	Send(payload *requests.EmailPayload) error
}

// acknowledger is the settle half of amqp091.Delivery.
type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

// handleDelivery acks sent mail and drops the rest without requeue.
func handleDelivery(log *logrus.Logger, sender emailSender, body []byte, delivery acknowledger) {
	payload := new(requests.EmailPayload)
	if err := json.Unmarshal(body, payload); err != nil {
		log.WithError(err).Error("Failed to decode email payload")
		nack(log, delivery)
		return
	}

	if err := sender.Send(payload); err != nil {
		log.WithError(err).WithField("to", payload.To).Error("Failed to send email")
		nack(log, delivery)
		return
	}

	log.WithField("to", payload.To).Info("Email sent")
	if err := delivery.Ack(false); err != nil {
		log.WithError(err).WithField("to", payload.To).Error("Failed to ack delivery")
	}
}

func nack(log *logrus.Logger, delivery acknowledger) {
	if err := delivery.Nack(false, false); err != nil {
		log.WithError(err).Error("Failed to nack delivery")
	}
}
