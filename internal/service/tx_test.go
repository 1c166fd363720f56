package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"evaluationservice/internal/errdefs"
	"evaluationservice/internal/model"
	"evaluationservice/internal/service"
	"evaluationservice/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mockDeps struct {
	repo      *mocks.MockEvaluationRepository
	tx        *mocks.MockEvaluationRepositoryTx
	employees *mocks.MockEmployeeDirectory
	users     *mocks.MockUserDirectory
	notifier  *mocks.MockNotifier
}

func setupMocks(t *testing.T, opts service.Options) (*service.EvaluationService, *mockDeps) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	deps := &mockDeps{
		repo:      mocks.NewMockEvaluationRepository(ctrl),
		tx:        mocks.NewMockEvaluationRepositoryTx(ctrl),
		employees: mocks.NewMockEmployeeDirectory(ctrl),
		users:     mocks.NewMockUserDirectory(ctrl),
		notifier:  mocks.NewMockNotifier(ctrl),
	}
	svc := service.NewEvaluationService(deps.repo, deps.employees, deps.users, deps.notifier, nil, opts)
	t.Cleanup(svc.Wait)
	return svc, deps
}

// ── transactions ────────────────────────────────────────────────────

func TestSubmit_CommitFailureRollsBack(t *testing.T) {
	svc, deps := setupMocks(t, service.Options{})
	ctx := context.Background()
	id := uuid.New()
	evaluation := &model.Evaluation{Id: id, Status: model.EvaluationStatusInProgress, Version: 4}

	commitErr := errors.New("connection reset")

	gomock.InOrder(
		deps.repo.EXPECT().NewEvaluationRepositoryTx(ctx).Return(deps.tx, nil),
		deps.tx.EXPECT().GetEvaluation(ctx, id).Return(evaluation, nil),
		deps.tx.EXPECT().CompleteEvaluation(ctx, id, gomock.Any()).Return(nil),
		deps.tx.EXPECT().BumpVersion(ctx, id, int64(4)).Return(nil),
		deps.tx.EXPECT().Commit(ctx).Return(commitErr),
		deps.tx.EXPECT().Rollback(ctx).Return(nil),
	)

	_, err := svc.Submit(ctx, id.String())
	assert.ErrorIs(t, err, commitErr)
}

func TestSubmit_RetriesUnavailableBegin(t *testing.T) {
	svc, deps := setupMocks(t, service.Options{MaxRetries: 2, RetryBaseDelay: time.Millisecond})
	ctx := context.Background()
	id := uuid.New()
	evaluation := &model.Evaluation{Id: id, Status: model.EvaluationStatusInProgress, Version: 1}

	gomock.InOrder(
		deps.repo.EXPECT().NewEvaluationRepositoryTx(ctx).Return(nil, errdefs.ErrUnavailable),
		deps.repo.EXPECT().NewEvaluationRepositoryTx(ctx).Return(deps.tx, nil),
		deps.tx.EXPECT().GetEvaluation(ctx, id).Return(evaluation, nil),
		deps.tx.EXPECT().CompleteEvaluation(ctx, id, gomock.Any()).Return(nil),
		deps.tx.EXPECT().BumpVersion(ctx, id, int64(1)).Return(nil),
		deps.tx.EXPECT().Commit(ctx).Return(nil),
		deps.tx.EXPECT().Rollback(ctx).Return(nil),
	)

	result, err := svc.Submit(ctx, id.String())
	require.NoError(t, err)
	assert.Equal(t, model.EvaluationStatusCompleted, result.Status)
	assert.Equal(t, int64(2), result.Version)
}

func TestAddAnswers_NotFoundIsNotRetried(t *testing.T) {
	svc, deps := setupMocks(t, service.Options{MaxRetries: 5})
	ctx := context.Background()
	id := uuid.New()

	deps.repo.EXPECT().NewEvaluationRepositoryTx(ctx).Return(deps.tx, nil).Times(1)
	deps.tx.EXPECT().GetEvaluation(ctx, id).Return(nil, errdefs.ErrEvaluationNotFound).Times(1)
	deps.tx.EXPECT().Rollback(ctx).Return(nil).Times(1)

	_, err := svc.AddAnswers(ctx, &model.AddAnswersInput{
		EvaluationId: id.String(),
		ReviewerId:   uuid.NewString(),
		Responses:    []model.ResponseInput{{QuestionId: uuid.NewString(), Score: 3}},
	})
	assert.ErrorIs(t, err, errdefs.ErrEvaluationNotFound)
}

func TestCalculateScore_SkipsTxWithoutQuestions(t *testing.T) {
	svc, deps := setupMocks(t, service.Options{})
	ctx := context.Background()
	id := uuid.New()
	evaluation := &model.Evaluation{Id: id, Period: "Q1", Status: model.EvaluationStatusInProgress}

	deps.repo.EXPECT().GetEvaluation(ctx, id).Return(evaluation, nil)
	deps.repo.EXPECT().ListQuestions(ctx, []uuid.UUID{id}).Return(nil, nil)
	deps.repo.EXPECT().ListAnswers(ctx, gomock.Len(0)).Return(nil, nil)
	deps.repo.EXPECT().ListReviewers(ctx, []uuid.UUID{id}).Return(nil, nil)

	score, err := svc.CalculateScore(ctx, id.String())
	require.NoError(t, err)
	assert.Empty(t, score.Questions)
	assert.Equal(t, 0.0, score.OverallScore)
}

// ── concurrent reassignment ─────────────────────────────────────────

func TestAddAnswers_ReplacedSlotIsRetried(t *testing.T) {
	svc, deps := setupMocks(t, service.Options{MaxRetries: 2, RetryBaseDelay: time.Millisecond})
	ctx := context.Background()
	evaluationId := uuid.New()
	reviewerId := uuid.New()
	questionId := uuid.New()
	evaluation := &model.Evaluation{Id: evaluationId, Status: model.EvaluationStatusInProgress, Version: 7}
	slots := []*model.ReviewerAssignment{{EvaluationId: evaluationId, ReviewerId: reviewerId}}
	question := &model.Question{Id: questionId, EvaluationId: evaluationId}

	var answerIds []uuid.UUID
	deps.repo.EXPECT().NewEvaluationRepositoryTx(ctx).Return(deps.tx, nil).Times(2)
	deps.tx.EXPECT().GetEvaluation(ctx, evaluationId).Return(evaluation, nil).Times(2)
	deps.tx.EXPECT().ListReviewers(ctx, evaluationId).Return(slots, nil).Times(2)
	deps.tx.EXPECT().GetQuestion(ctx, questionId).Return(question, nil).Times(2)
	deps.tx.EXPECT().CreateAnswer(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *model.RepositoryCreateAnswerInput) (*model.Answer, error) {
			answerIds = append(answerIds, in.Id)
			return &model.Answer{Id: in.Id, QuestionId: in.QuestionId, RespondentId: in.RespondentId, Score: in.Score}, nil
		}).Times(2)
	deps.tx.EXPECT().UpdateReviewerSlot(ctx, evaluationId, reviewerId, int32(4), gomock.Any()).
		Return(errdefs.ErrVersionConflict).Times(2)
	deps.tx.EXPECT().Rollback(ctx).Return(nil).Times(2)

	_, err := svc.AddAnswers(ctx, &model.AddAnswersInput{
		EvaluationId: evaluationId.String(),
		ReviewerId:   reviewerId.String(),
		Responses:    []model.ResponseInput{{QuestionId: questionId.String(), Score: 4}},
	})

	assert.ErrorIs(t, err, errdefs.ErrVersionConflict)
	assert.NotErrorIs(t, err, errdefs.ErrPermissionDenied)
	require.Len(t, answerIds, 2)
	assert.Equal(t, answerIds[0], answerIds[1])
}

// ── commit outcome ──────────────────────────────────────────────────

func TestAddAnswers_UnavailableCommitIsNotRetried(t *testing.T) {
	svc, deps := setupMocks(t, service.Options{MaxRetries: 5, RetryBaseDelay: time.Millisecond})
	ctx := context.Background()
	evaluationId := uuid.New()
	reviewerId := uuid.New()
	questionId := uuid.New()
	evaluation := &model.Evaluation{Id: evaluationId, Status: model.EvaluationStatusInProgress, Version: 2}
	slots := []*model.ReviewerAssignment{{EvaluationId: evaluationId, ReviewerId: reviewerId}}
	question := &model.Question{Id: questionId, EvaluationId: evaluationId}

	deps.repo.EXPECT().NewEvaluationRepositoryTx(ctx).Return(deps.tx, nil).Times(1)
	deps.tx.EXPECT().GetEvaluation(ctx, evaluationId).Return(evaluation, nil)
	deps.tx.EXPECT().ListReviewers(ctx, evaluationId).Return(slots, nil)
	deps.tx.EXPECT().GetQuestion(ctx, questionId).Return(question, nil)
	deps.tx.EXPECT().CreateAnswer(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *model.RepositoryCreateAnswerInput) (*model.Answer, error) {
			return &model.Answer{Id: in.Id, Score: in.Score}, nil
		})
	deps.tx.EXPECT().UpdateReviewerSlot(ctx, evaluationId, reviewerId, int32(5), gomock.Any()).Return(nil)
	deps.tx.EXPECT().BumpVersion(ctx, evaluationId, int64(2)).Return(nil)
	deps.tx.EXPECT().Commit(ctx).Return(errdefs.ErrUnavailable)
	deps.tx.EXPECT().Rollback(ctx).Return(nil)

	_, err := svc.AddAnswers(ctx, &model.AddAnswersInput{
		EvaluationId: evaluationId.String(),
		ReviewerId:   reviewerId.String(),
		Responses:    []model.ResponseInput{{QuestionId: questionId.String(), Score: 5}},
	})

	assert.ErrorIs(t, err, errdefs.ErrCommitUncertain)
	assert.ErrorIs(t, err, errdefs.ErrUnavailable)
}
