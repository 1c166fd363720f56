package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"evaluationservice/internal/errdefs"
	"evaluationservice/internal/model"
	"evaluationservice/pkg/utils"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier publishes mail requests to a topic consumed by the
// notifier worker.
type KafkaNotifier struct {
	writer  messageWriter
	topic   string
	breaker *utils.CircuitBreaker
}

func NewKafkaNotifier(brokers []string, topic string, breaker *utils.CircuitBreaker) *KafkaNotifier {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
	return newKafkaNotifier(writer, topic, breaker)
}

func newKafkaNotifier(writer messageWriter, topic string, breaker *utils.CircuitBreaker) *KafkaNotifier {
	return &KafkaNotifier{
		writer:  writer,
		topic:   topic,
		breaker: breaker,
	}
}

func (n *KafkaNotifier) Send(ctx context.Context, mail model.Mail) error {
	data, err := json.Marshal(mail)
	if err != nil {
		return fmt.Errorf("failed to marshal mail: %w", err)
	}

	message := kafka.Message{
		Key:   []byte(mail.To),
		Value: data,
		Time:  time.Now(),
	}

	send := func() error {
		if err := n.writer.WriteMessages(ctx, message); err != nil {
			return fmt.Errorf("%w: failed to publish mail to %s: %v", errdefs.ErrUnavailable, n.topic, err)
		}
		return nil
	}
	if n.breaker == nil {
		return send()
	}
	return n.breaker.Execute(send)
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
