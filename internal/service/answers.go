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

// AddAnswers records a reviewer's responses. The reviewer must be assigned
// and the evaluation still in progress.
func (s *EvaluationService) AddAnswers(ctx context.Context, input *model.AddAnswersInput) (*model.EvaluationDetail, error) {
	evaluationId, err := parseID(input.EvaluationId)
	if err != nil {
		return nil, err
	}
	reviewerId, err := parseID(input.ReviewerId)
	if err != nil {
		return nil, err
	}

	recorded := 0
	switch {
	case len(input.Responses) == 0:
		err = s.inTx(ctx, func(repo EvaluationRepositoryTx) error {
			_, err := checkAnswerable(ctx, repo, evaluationId, reviewerId)
			return err
		})

	case s.opts.AnswerBatch == config.AnswerBatchSequential:
		for _, response := range input.Responses {
			var answerId uuid.UUID
			if answerId, err = uuid.NewV7(); err != nil {
				break
			}
			err = s.withRetry(ctx, "add_answers", func() error {
				return s.inTx(ctx, func(repo EvaluationRepositoryTx) error {
					evaluation, err := checkAnswerable(ctx, repo, evaluationId, reviewerId)
					if err != nil {
						return err
					}
					if err := recordResponse(ctx, repo, evaluationId, reviewerId, answerId, response); err != nil {
						return err
					}
					return repo.BumpVersion(ctx, evaluationId, evaluation.Version)
				})
			})
			if err != nil {
				break
			}
			recorded++
		}

	default:
		answerIds, idErr := newAnswerIds(len(input.Responses))
		if idErr != nil {
			return nil, idErr
		}
		err = s.withRetry(ctx, "add_answers", func() error {
			return s.inTx(ctx, func(repo EvaluationRepositoryTx) error {
				evaluation, err := checkAnswerable(ctx, repo, evaluationId, reviewerId)
				if err != nil {
					return err
				}
				for i, response := range input.Responses {
					if err := recordResponse(ctx, repo, evaluationId, reviewerId, answerIds[i], response); err != nil {
						return err
					}
				}
				return repo.BumpVersion(ctx, evaluationId, evaluation.Version)
			})
		})
		if err == nil {
			recorded = len(input.Responses)
		}
	}

	if recorded > 0 {
		s.metrics.AnswersRecorded(recorded)
	}
	if err != nil {
		logging.FromContext(ctx).Warn(ctx, "answers rejected",
			zap.String("evaluation_id", evaluationId.String()),
			zap.String("reviewer_id", reviewerId.String()),
			zap.Int("recorded", recorded),
			zap.Error(err),
		)
		return nil, err
	}

	logging.FromContext(ctx).Info(ctx, "answers recorded",
		zap.String("evaluation_id", evaluationId.String()),
		zap.String("reviewer_id", reviewerId.String()),
		zap.Int("recorded", recorded),
	)
	return s.findDetail(ctx, evaluationId)
}

// checkAnswerable verifies reviewer eligibility before evaluation state.
func checkAnswerable(ctx context.Context, repo EvaluationRepositoryTx, evaluationId, reviewerId uuid.UUID) (*model.Evaluation, error) {
	evaluation, err := repo.GetEvaluation(ctx, evaluationId)
	if err != nil {
		return nil, err
	}
	reviewers, err := repo.ListReviewers(ctx, evaluationId)
	if err != nil {
		return nil, err
	}

	assigned := false
	for _, slot := range reviewers {
		if slot.ReviewerId == reviewerId {
			assigned = true
			break
		}
	}
	if !assigned {
		return nil, errdefs.ErrNotAssignedReviewer
	}
	if evaluation.IsCompleted() {
		return nil, errdefs.ErrEvaluationCompleted
	}
	return evaluation, nil
}

// newAnswerIds are generated once per batch so every retry attempt inserts
// the same primary keys.
func newAnswerIds(n int) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, n)
	for i := range ids {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

func recordResponse(ctx context.Context, repo EvaluationRepositoryTx, evaluationId, reviewerId, answerId uuid.UUID, response model.ResponseInput) error {
	questionId, err := parseID(response.QuestionId)
	if err != nil {
		return err
	}
	question, err := repo.GetQuestion(ctx, questionId)
	if err != nil {
		return err
	}
	if question.EvaluationId != evaluationId {
		return errdefs.ErrQuestionNotFound
	}
	if response.Score < model.MinScore || response.Score > model.MaxScore {
		return errdefs.ErrInvalidScore
	}

	answer, err := repo.CreateAnswer(ctx, &model.RepositoryCreateAnswerInput{
		Id:           answerId,
		QuestionId:   questionId,
		RespondentId: reviewerId,
		Score:        int32(response.Score),
	})
	if err != nil {
		return err
	}

	return repo.UpdateReviewerSlot(ctx, evaluationId, reviewerId, answer.Score, answer.Id)
}
