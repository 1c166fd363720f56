package service

import (
	"context"

	"evaluationservice/internal/config"
	"evaluationservice/internal/errdefs"
	"evaluationservice/internal/model"
	"evaluationservice/pkg/logging"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	AssignmentMailSubject = "New evaluation assignment"
	AssignmentMailContent = "You have been assigned to a new evaluation. Please sign in to your account to complete it."
)

// AssignReviewers binds reviewers to an evaluation. Every id must resolve or
// nothing is written. Reviewers are notified after commit; delivery failures
// are logged and never returned.
func (s *EvaluationService) AssignReviewers(ctx context.Context, input *model.AssignReviewersInput) (*model.EvaluationDetail, error) {
	evaluationId, err := parseID(input.EvaluationId)
	if err != nil {
		return nil, err
	}
	reviewerIds := make([]uuid.UUID, 0, len(input.ReviewerIds))
	for _, raw := range input.ReviewerIds {
		id, err := parseID(raw)
		if err != nil {
			return nil, err
		}
		reviewerIds = append(reviewerIds, id)
	}
	reviewerIds = uniqueIds(reviewerIds)

	if _, err := s.evaluations.GetEvaluation(ctx, evaluationId); err != nil {
		return nil, err
	}

	reviewers, err := s.resolveReviewers(ctx, reviewerIds)
	if err != nil {
		return nil, err
	}

	err = s.withRetry(ctx, "assign_reviewers", func() error {
		return s.inTx(ctx, func(repo EvaluationRepositoryTx) error {
			evaluation, err := repo.GetEvaluation(ctx, evaluationId)
			if err != nil {
				return err
			}
			current, err := repo.ListReviewers(ctx, evaluationId)
			if err != nil {
				return err
			}
			slots := s.buildSlots(evaluationId, reviewerIds, current)
			if err := repo.ReplaceReviewers(ctx, evaluationId, slots); err != nil {
				return err
			}
			return repo.BumpVersion(ctx, evaluationId, evaluation.Version)
		})
	})
	if err != nil {
		return nil, err
	}

	s.metrics.ReviewersAssigned(len(reviewers))
	logging.FromContext(ctx).Info(ctx, "reviewers assigned",
		zap.String("evaluation_id", evaluationId.String()),
		zap.Int("reviewers", len(reviewers)),
		zap.String("policy", string(s.opts.ReassignPolicy)),
	)

	s.notifyReviewers(ctx, evaluationId, reviewers)

	return s.findDetail(ctx, evaluationId)
}

// resolveReviewers returns the users for ids in the same order.
func (s *EvaluationService) resolveReviewers(ctx context.Context, ids []uuid.UUID) ([]*model.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	users, err := s.users.GetUsersByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	byId := make(map[uuid.UUID]*model.User, len(users))
	for _, user := range users {
		byId[user.Id] = user
	}

	ordered := make([]*model.User, 0, len(ids))
	for _, id := range ids {
		user, ok := byId[id]
		if !ok {
			return nil, errdefs.ErrReviewerNotFound
		}
		ordered = append(ordered, user)
	}
	return ordered, nil
}

func (s *EvaluationService) buildSlots(evaluationId uuid.UUID, reviewerIds []uuid.UUID, current []*model.ReviewerAssignment) []*model.ReviewerAssignment {
	previous := make(map[uuid.UUID]*model.ReviewerAssignment, len(current))
	if s.opts.ReassignPolicy == config.ReassignMerge {
		for _, slot := range current {
			previous[slot.ReviewerId] = slot
		}
	}

	slots := make([]*model.ReviewerAssignment, 0, len(reviewerIds))
	for i, reviewerId := range reviewerIds {
		slot := &model.ReviewerAssignment{
			EvaluationId: evaluationId,
			ReviewerId:   reviewerId,
			Position:     int32(i),
		}
		if prev, ok := previous[reviewerId]; ok {
			slot.Score = prev.Score
			slot.AnswerId = prev.AnswerId
		}
		slots = append(slots, slot)
	}
	return slots
}

// notifyReviewers sends one mail per reviewer in the background.
func (s *EvaluationService) notifyReviewers(ctx context.Context, evaluationId uuid.UUID, reviewers []*model.User) {
	if s.notifier == nil || len(reviewers) == 0 {
		return
	}

	logger := logging.FromContext(ctx)
	detached := logging.ContextWithLogger(context.WithoutCancel(ctx), logger)

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		for _, reviewer := range reviewers {
			sendCtx, cancel := context.WithTimeout(detached, s.opts.NotifyTimeout)
			err := s.notifier.Send(sendCtx, model.Mail{
				To:      reviewer.Email,
				Subject: AssignmentMailSubject,
				Content: AssignmentMailContent,
			})
			cancel()
			if err != nil {
				s.metrics.NotificationFailed()
				logger.Error(detached, "failed to notify reviewer",
					zap.String("evaluation_id", evaluationId.String()),
					zap.String("email", reviewer.Email),
					zap.Error(err),
				)
				continue
			}
			s.metrics.NotificationSent()
		}
	}()
}
