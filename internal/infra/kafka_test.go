package infra

import (
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestNewProducerWriterSettings(t *testing.T) {
	p := NewProducer([]string{"localhost:9092"}, "resume.feedback")
	defer p.Close()

	assert.Equal(t, 1, p.writer.MaxAttempts)
	assert.Equal(t, "resume.feedback", p.writer.Topic)
	assert.Equal(t, kafka.RequireOne, p.writer.RequiredAcks)
	assert.Equal(t, 5*time.Second, p.writer.WriteTimeout)
}
