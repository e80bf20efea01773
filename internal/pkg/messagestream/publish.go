package messagestream

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
)

const (
	TopicBookingQRReissue         = "booking_qr_reissue"
	TopicBookingQRReissuePoisoned = "booking_qr_reissue_poisoned"
	TopicBookingVerified          = "booking_verified"
	TopicBookingStatusChanged     = "booking_status_changed"
	TopicNotification             = "notification_queue"
)

// PublishJSON marshals payload and publishes it as a single message on topic.
func PublishJSON(publisher message.Publisher, topic string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return publisher.Publish(topic, message.NewMessage(watermill.NewUUID(), data))
}
