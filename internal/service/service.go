package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"evaluationservice/internal/config"
	"evaluationservice/internal/errdefs"
	"evaluationservice/pkg/logging"
	"evaluationservice/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Options struct {
	ReassignPolicy config.ReassignPolicy
	ResubmitPolicy config.ResubmitPolicy
	AnswerBatch    config.AnswerBatchPolicy
	MaxRetries     int
	RetryBaseDelay time.Duration
	NotifyTimeout  time.Duration
}

func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		ReassignPolicy: cfg.ReassignPolicy,
		ResubmitPolicy: cfg.ResubmitPolicy,
		AnswerBatch:    cfg.AnswerBatch,
		MaxRetries:     cfg.MaxRetries,
		RetryBaseDelay: cfg.RetryBaseDelay,
		NotifyTimeout:  cfg.NotifyTimeout,
	}
}

func (o Options) withDefaults() Options {
	if o.ReassignPolicy == "" {
		o.ReassignPolicy = config.ReassignReset
	}
	if o.ResubmitPolicy == "" {
		o.ResubmitPolicy = config.ResubmitOverwrite
	}
	if o.AnswerBatch == "" {
		o.AnswerBatch = config.AnswerBatchAtomic
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = 3
	}
	if o.NotifyTimeout <= 0 {
		o.NotifyTimeout = 10 * time.Second
	}
	return o
}

// Metrics receives domain counters. A nil Metrics disables them.
type Metrics interface {
	EvaluationCreated()
	EvaluationSubmitted()
	ReviewersAssigned(n int)
	AnswersRecorded(n int)
	VersionConflict(operation string)
	NotificationSent()
	NotificationFailed()
}

type noopMetrics struct{}

func (noopMetrics) EvaluationCreated()     {}
func (noopMetrics) EvaluationSubmitted()   {}
func (noopMetrics) ReviewersAssigned(int)  {}
func (noopMetrics) AnswersRecorded(int)    {}
func (noopMetrics) VersionConflict(string) {}
func (noopMetrics) NotificationSent()      {}
func (noopMetrics) NotificationFailed()    {}

type EvaluationService struct {
	evaluations EvaluationRepository
	employees   EmployeeDirectory
	users       UserDirectory
	notifier    Notifier
	metrics     Metrics
	opts        Options
	now         func() time.Time

	pending sync.WaitGroup
}

func NewEvaluationService(
	evaluations EvaluationRepository,
	employees EmployeeDirectory,
	users UserDirectory,
	notifier Notifier,
	metrics Metrics,
	opts Options,
) *EvaluationService {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &EvaluationService{
		evaluations: evaluations,
		employees:   employees,
		users:       users,
		notifier:    notifier,
		metrics:     metrics,
		opts:        opts.withDefaults(),
		now:         time.Now,
	}
}

// Wait blocks until every dispatched notification batch has finished.
func (s *EvaluationService) Wait() {
	s.pending.Wait()
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", errdefs.ErrInvalidID, raw)
	}
	return id, nil
}

func (s *EvaluationService) inTx(ctx context.Context, fn func(repo EvaluationRepositoryTx) error) error {
	repo, err := s.evaluations.NewEvaluationRepositoryTx(ctx)
	if err != nil {
		return err
	}

	defer func(repo EvaluationRepositoryTx, ctx context.Context) {
		if err := repo.Rollback(ctx); err != nil {
			logging.FromContext(ctx).Error(ctx, "Failed to Rollback", zap.Error(err))
		}
	}(repo, ctx)

	if err := fn(repo); err != nil {
		return err
	}
	if err := repo.Commit(ctx); err != nil {
		if errors.Is(err, errdefs.ErrUnavailable) {
			return fmt.Errorf("%w: %v", errdefs.ErrCommitUncertain, err)
		}
		return err
	}
	return nil
}

// withRetry reruns fn while it fails with a retriable error.
func (s *EvaluationService) withRetry(ctx context.Context, operation string, fn func() error) error {
	_, err := utils.RetryWithBackoff(ctx, s.opts.MaxRetries, s.opts.RetryBaseDelay, func() (struct{}, error) {
		err := fn()
		if errors.Is(err, errdefs.ErrVersionConflict) {
			s.metrics.VersionConflict(operation)
			logging.FromContext(ctx).Warn(ctx, "version conflict", zap.String("operation", operation))
		}
		return struct{}{}, err
	})
	return err
}
