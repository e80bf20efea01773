package messagestream_test

import (
	"testing"

	"turf-booking/internal/pkg/messagestream"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	topic    string
	messages []*message.Message
}

func (r *recordingPublisher) Publish(topic string, messages ...*message.Message) error {
	r.topic = topic
	r.messages = append(r.messages, messages...)
	return nil
}

func (r *recordingPublisher) Close() error {
	return nil
}

func TestPublishJSON(t *testing.T) {
	pub := &recordingPublisher{}

	err := messagestream.PublishJSON(pub, messagestream.TopicBookingVerified, map[string]string{"booking_id": "b-1"})
	require.NoError(t, err)

	assert.Equal(t, messagestream.TopicBookingVerified, pub.topic)
	require.Len(t, pub.messages, 1)
	assert.NotEmpty(t, pub.messages[0].UUID)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(pub.messages[0].Payload, &payload))
	assert.Equal(t, "b-1", payload["booking_id"])
}
