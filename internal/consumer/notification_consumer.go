package consumer

import (
	"encoding/json"
	"log"

	"github.com/hotelhub/reservation-service/internal/models"
	amqp "github.com/rabbitmq/amqp091-go"
)

// NotificationConsumer is the notification sink for booking lifecycle events.
// It logs each booking it sees; a mail or push integration would hang off the
// same handler. Failures here never reach the booking path, which treats
// publishing as fire-and-forget.
type NotificationConsumer struct{}

func NewNotificationConsumer() *NotificationConsumer {
	return &NotificationConsumer{}
}

// Start listens for messages until the delivery channel closes.
func (nc *NotificationConsumer) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			nc.handleMessage(msg)
		}
		log.Println("[NotificationConsumer] channel closed, stopping consumer")
	}()
}

func (nc *NotificationConsumer) handleMessage(msg amqp.Delivery) {
	var booking models.Booking
	if err := json.Unmarshal(msg.Body, &booking); err != nil {
		log.Printf("[NotificationConsumer] failed to unmarshal: %v", err)
		msg.Nack(false, false)
		return
	}

	log.Printf("[NotificationConsumer] booking %d created: room %d, user %d, %s to %s",
		booking.ID,
		booking.RoomID,
		booking.UserID,
		booking.CheckInDate.Format("2006-01-02"),
		booking.CheckOutDate.Format("2006-01-02"),
	)
	msg.Ack(false)
}
