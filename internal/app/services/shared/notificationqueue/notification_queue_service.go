package notificationqueue

import (
	"agendly-service/internal/app/contracts"
	"agendly-service/internal/pkg/constvars"
	"agendly-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// amqpChannel is the slice of *amqp.Channel the service needs.
type amqpChannel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	Qos(prefetchCount, prefetchSize int, global bool) error
	Confirm(noWait bool) error
	NotifyPublish(confirm chan amqp.Confirmation) chan amqp.Confirmation
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Service publishes appointment notifications to a durable queue with a
// companion dead-letter queue, using publisher confirms. Messages the broker
// nacks are re-routed to the dead-letter queue so they are not lost.
type Service struct {
	ch        amqpChannel
	log       *zap.Logger
	queueName string
	dlqName   string
	confirms  chan amqp.Confirmation
	mu        sync.Mutex
}

func NewService(conn *amqp.Connection, log *zap.Logger, queueName string) (contracts.NotificationQueueService, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	return newServiceWithChannel(ch, log, queueName)
}

func newServiceWithChannel(ch amqpChannel, log *zap.Logger, queueName string) (*Service, error) {
	dlqName := queueName + "_dlq"
	for _, name := range []string{queueName, dlqName} {
		_, err := ch.QueueDeclare(
			name,
			true,  // durable
			false, // autoDelete
			false, // exclusive
			false, // noWait
			nil,
		)
		if err != nil {
			return nil, err
		}
	}

	if err := ch.Qos(1, 0, false); err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &Service{
		ch:        ch,
		log:       log,
		queueName: queueName,
		dlqName:   dlqName,
		confirms:  ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}, nil
}

func (s *Service) Publish(ctx context.Context, message contracts.NotificationMessage) error {
	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.publishTo(ctx, s.queueName, body); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.queueName)
	}

	select {
	case confirmation := <-s.confirms:
		if !confirmation.Ack {
			s.enqueueToDeadQueue(ctx, message, body)
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("broker nacked delivery %d", confirmation.DeliveryTag), s.queueName)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), s.queueName)
	}

	s.log.Info("notificationqueue.Publish confirmed",
		zap.String(constvars.LoggingQueueKey, s.queueName),
		zap.String("kind", message.Kind),
		zap.String(constvars.LoggingAppointmentIDKey, message.AppointmentID),
	)
	return nil
}

// enqueueToDeadQueue parks a nacked message on the dead-letter queue.
// Best-effort: a failure here is logged and the caller still sees the
// original publish error. Caller holds the mutex.
func (s *Service) enqueueToDeadQueue(ctx context.Context, message contracts.NotificationMessage, body []byte) {
	if err := s.publishTo(ctx, s.dlqName, body); err != nil {
		s.log.Error("notificationqueue failed to enqueue to dead letter queue",
			zap.String(constvars.LoggingQueueKey, s.dlqName),
			zap.String(constvars.LoggingAppointmentIDKey, message.AppointmentID),
			zap.Error(err),
		)
		return
	}

	select {
	case <-s.confirms:
	case <-ctx.Done():
	}

	s.log.Warn("notificationqueue message routed to dead letter queue",
		zap.String(constvars.LoggingQueueKey, s.dlqName),
		zap.String("kind", message.Kind),
		zap.String(constvars.LoggingAppointmentIDKey, message.AppointmentID),
	)
}

func (s *Service) publishTo(ctx context.Context, routingKey string, body []byte) error {
	return s.ch.PublishWithContext(ctx,
		"",         // default exchange
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
}
