package notify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"evaluationservice/internal/model"
	"evaluationservice/pkg/logging"
	"evaluationservice/pkg/utils"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Sender delivers a single mail.
type Sender interface {
	Send(ctx context.Context, mail model.Mail) error
}

type ConsumerOptions struct {
	MaxRetries     int
	RetryBaseDelay time.Duration
	SendTimeout    time.Duration
}

// Consumer reads mail requests and hands them to a Sender. Undeliverable
// and malformed messages are logged and committed.
type Consumer struct {
	reader messageReader
	sender Sender
	opts   ConsumerOptions
}

func NewConsumer(brokers []string, topic, groupID string, sender Sender, opts ConsumerOptions) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		GroupID: groupID,
		Topic:   topic,
	})
	return newConsumer(reader, sender, opts)
}

func newConsumer(reader messageReader, sender Sender, opts ConsumerOptions) *Consumer {
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 3
	}
	if opts.SendTimeout <= 0 {
		opts.SendTimeout = 10 * time.Second
	}
	return &Consumer{reader: reader, sender: sender, opts: opts}
}

// Run blocks until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	logger := logging.FromContext(ctx)
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				logger.Info(ctx, "Consumer shutting down")
				return nil
			}
			if errors.Is(err, io.EOF) {
				logger.Info(ctx, "Reader closed")
				return nil
			}
			logger.Error(ctx, "Failed to fetch message", zap.Error(err))
			continue
		}

		c.handle(ctx, logger, msg)

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logger.Error(ctx, "Failed to commit message", zap.Error(err))
		}
	}
}

func (c *Consumer) handle(ctx context.Context, logger *logging.Logger, msg kafka.Message) {
	var mail model.Mail
	if err := json.Unmarshal(msg.Value, &mail); err != nil || mail.To == "" {
		logger.Warn(ctx, "Failed to unmarshal message",
			zap.String("topic", msg.Topic),
			zap.ByteString("value", truncateBytes(msg.Value, 256)),
			zap.Error(err),
		)
		return
	}

	_, err := utils.RetryWithBackoff(ctx, c.opts.MaxRetries, c.opts.RetryBaseDelay, func() (struct{}, error) {
		sendCtx, cancel := context.WithTimeout(ctx, c.opts.SendTimeout)
		defer cancel()
		return struct{}{}, c.sender.Send(sendCtx, mail)
	})
	if err != nil {
		logger.Error(ctx, "Failed to deliver mail",
			zap.String("email", mail.To),
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		return
	}

	logger.Info(ctx, "Mail delivered",
		zap.String("email", mail.To),
		zap.Int("partition", msg.Partition),
		zap.Int64("offset", msg.Offset),
	)
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}

func truncateBytes(data []byte, limit int) []byte {
	if len(data) <= limit {
		return data
	}
	return data[:limit]
}
