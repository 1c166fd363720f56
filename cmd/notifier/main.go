package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"evaluationservice/internal/config"
	"evaluationservice/internal/notify"
	"evaluationservice/pkg/logging"

	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}

	logger := logging.New(zapLogger)
	defer func() { _ = logger.Sync() }()
	ctx = logging.ContextWithLogger(ctx, logger)

	cfg, err := config.New()
	if err != nil {
		logger.Fatal(ctx, "cannot create config", zap.Error(err))
	}

	sender := notify.NewSMTPSender(notify.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	})

	consumer := notify.NewConsumer(cfg.KafkaBrokers, cfg.KafkaMailTopic, cfg.KafkaGroupID, sender, notify.ConsumerOptions{
		MaxRetries:     cfg.MaxRetries,
		RetryBaseDelay: cfg.RetryBaseDelay,
		SendTimeout:    cfg.NotifyTimeout,
	})
	defer consumer.Close()

	logger.Info(ctx, "Starting notification consumer",
		zap.Strings("brokers", cfg.KafkaBrokers),
		zap.String("topic", cfg.KafkaMailTopic),
		zap.String("group_id", cfg.KafkaGroupID),
	)

	if err := consumer.Run(ctx); err != nil {
		logger.Fatal(ctx, "consumer stopped", zap.Error(err))
	}
	logger.Info(ctx, "Consumer shutting down")
}
