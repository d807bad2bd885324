package messaging

import (
	"fmt"
	"invrent-service/internal/app/config"
	"log"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const connectionName = "invrent-service"

// NewRabbitMQ returns nil when event publishing is disabled.
func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	if !driverConfig.RabbitMQ.Enabled {
		log.Println("RabbitMQ disabled, domain events will not be published")
		return nil
	}

	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)

	properties := amqp091.NewConnectionProperties()
	properties.SetClientConnectionName(connectionName)

	conn, err := amqp091.DialConfig(connectionString, amqp091.Config{
		Heartbeat:  10 * time.Second,
		Locale:     "en_US",
		Properties: properties,
	})
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ at %s:%s: %s", driverConfig.RabbitMQ.Host, driverConfig.RabbitMQ.Port, err.Error())
	}
	log.Println("Successfully connected to rabbitMQ")
	return conn
}
