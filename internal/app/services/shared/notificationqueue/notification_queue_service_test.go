package notificationqueue

import (
	"context"
	"testing"

	"agendly-service/internal/app/contracts"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type recordedPublish struct {
	routingKey string
	body       []byte
}

// fakeChannel scripts broker behavior: each publish is immediately confirmed
// with the next ack value from the script (missing entries ack).
type fakeChannel struct {
	declaredQueues []string
	publishes      []recordedPublish
	ackScript      []bool
	confirms       chan amqp.Confirmation
	deliveryTag    uint64
}

func (f *fakeChannel) QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error) {
	f.declaredQueues = append(f.declaredQueues, name)
	return amqp.Queue{Name: name}, nil
}

func (f *fakeChannel) Qos(prefetchCount, prefetchSize int, global bool) error { return nil }

func (f *fakeChannel) Confirm(noWait bool) error { return nil }

func (f *fakeChannel) NotifyPublish(confirm chan amqp.Confirmation) chan amqp.Confirmation {
	f.confirms = confirm
	return confirm
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	f.publishes = append(f.publishes, recordedPublish{routingKey: key, body: msg.Body})
	ack := true
	if len(f.publishes) <= len(f.ackScript) {
		ack = f.ackScript[len(f.publishes)-1]
	}
	f.deliveryTag++
	f.confirms <- amqp.Confirmation{DeliveryTag: f.deliveryTag, Ack: ack}
	return nil
}

func TestService_Publish(t *testing.T) {
	message := contracts.NotificationMessage{
		ID:            "msg-1",
		Kind:          contracts.NotificationKindCreated,
		AppointmentID: "apt-1",
	}

	t.Run("declares the queue and its dead letter companion", func(t *testing.T) {
		ch := &fakeChannel{}
		_, err := newServiceWithChannel(ch, zap.NewNop(), "appointment_notification_queue")

		assert.NoError(t, err)
		assert.Equal(t, []string{"appointment_notification_queue", "appointment_notification_queue_dlq"}, ch.declaredQueues)
	})

	t.Run("confirmed publish goes only to the main queue", func(t *testing.T) {
		ch := &fakeChannel{}
		svc, err := newServiceWithChannel(ch, zap.NewNop(), "appointment_notification_queue")
		assert.NoError(t, err)

		err = svc.Publish(context.Background(), message)

		assert.NoError(t, err)
		assert.Len(t, ch.publishes, 1)
		assert.Equal(t, "appointment_notification_queue", ch.publishes[0].routingKey)
	})

	t.Run("nacked publish is parked on the dead letter queue", func(t *testing.T) {
		ch := &fakeChannel{ackScript: []bool{false, true}}
		svc, err := newServiceWithChannel(ch, zap.NewNop(), "appointment_notification_queue")
		assert.NoError(t, err)

		err = svc.Publish(context.Background(), message)

		assert.Error(t, err)
		assert.Len(t, ch.publishes, 2)
		assert.Equal(t, "appointment_notification_queue", ch.publishes[0].routingKey)
		assert.Equal(t, "appointment_notification_queue_dlq", ch.publishes[1].routingKey)
		assert.Equal(t, ch.publishes[0].body, ch.publishes[1].body)
	})
}
