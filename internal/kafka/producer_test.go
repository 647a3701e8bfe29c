package kafka_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventify/internal/kafka"
	"eventify/internal/logger"
	"eventify/internal/models"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Setenv("LOG_DIR", t.TempDir())
	log := logger.NewLogger()
	t.Cleanup(log.Close)
	return log
}

func TestMockProducerPublishes(t *testing.T) {
	producer, err := kafka.NewProducer(nil, true, newTestLogger(t))
	require.NoError(t, err)
	defer producer.Close()

	err = producer.PublishOrderEvent(&models.OrderEvent{
		Type:      "order.created",
		OrderID:   1,
		UserID:    7,
		Timestamp: time.Now(),
	})
	assert.NoError(t, err)

	err = producer.PublishOrderEvent(&models.OrderEvent{
		Type:      "ticket.cancelled",
		OrderID:   1,
		UserID:    7,
		Timestamp: time.Now(),
	})
	assert.NoError(t, err)
}

func TestMockProducerClose(t *testing.T) {
	producer, err := kafka.NewProducer(nil, true, newTestLogger(t))
	require.NoError(t, err)
	assert.NoError(t, producer.Close())
}
