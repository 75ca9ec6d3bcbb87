package messaging

import (
	"fmt"
	"halo-service/internal/app/config"
	"log"

	"github.com/rabbitmq/amqp091-go"
)

func connectionString(driverConfig *config.DriverConfig) string {
	return fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)
}

// NewRabbitMQ returns nil when the broker is unreachable. Publishers treat a
// nil connection as a failed publish.
func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	conn, err := amqp091.Dial(connectionString(driverConfig))
	if err != nil {
		log.Printf("Failed to connect to rabbitMQ, running in degraded mode: %s", err.Error())
		return nil
	}
	log.Println("Successfully connected to rabbitMQ")
	return conn
}

// MustNewRabbitMQ is used by the worker, which has nothing to do without a broker.
func MustNewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	conn, err := amqp091.Dial(connectionString(driverConfig))
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}
	log.Println("Successfully connected to rabbitMQ")
	return conn
}
