package messaging

import (
	"agendly-service/internal/app/config"
	"fmt"

	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	uri := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)

	conn, err := amqp091.Dial(uri)
	if err != nil {
		logrus.Fatalf("Failed to connect to rabbitmq: %v", err)
	}

	logrus.Infoln("Successfully connected to rabbitmq")
	return conn
}
