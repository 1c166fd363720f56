package service

import (
	"context"
	"time"

	"evaluationservice/internal/model"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type EvaluationRepository interface {
	NewEvaluationRepositoryTx(ctx context.Context) (EvaluationRepositoryTx, error)

	GetEvaluation(ctx context.Context, id uuid.UUID) (*model.Evaluation, error)
	ListEvaluations(ctx context.Context, filter *model.RepositoryEvaluationFilter) ([]*model.Evaluation, error)

	// ListQuestions returns questions of the given evaluations ordered by position.
	ListQuestions(ctx context.Context, evaluationIds []uuid.UUID) ([]*model.Question, error)
	ListAllQuestions(ctx context.Context) ([]*model.Question, error)
	GetQuestionsByIds(ctx context.Context, ids []uuid.UUID) ([]*model.Question, error)

	// ListAnswers returns answers of the given questions in creation order.
	ListAnswers(ctx context.Context, questionIds []uuid.UUID) ([]*model.Answer, error)
	ListAllAnswers(ctx context.Context) ([]*model.Answer, error)

	ListReviewers(ctx context.Context, evaluationIds []uuid.UUID) ([]*model.ReviewerAssignment, error)
}

// EvaluationRepositoryTx is a unit of work. Every mutation of an evaluation
// must end with BumpVersion so concurrent writers are detected.
type EvaluationRepositoryTx interface {
	GetEvaluation(ctx context.Context, id uuid.UUID) (*model.Evaluation, error)
	CreateEvaluation(ctx context.Context, input *model.RepositoryCreateEvaluationInput) (*model.Evaluation, error)
	CompleteEvaluation(ctx context.Context, id uuid.UUID, submittedAt time.Time) error
	BumpVersion(ctx context.Context, id uuid.UUID, expected int64) error

	AppendEmployeeEvaluation(ctx context.Context, employeeId uuid.UUID, evaluationId uuid.UUID) error

	CreateQuestion(ctx context.Context, input *model.RepositoryCreateQuestionInput) (*model.Question, error)
	GetQuestion(ctx context.Context, id uuid.UUID) (*model.Question, error)
	NextQuestionPosition(ctx context.Context, evaluationId uuid.UUID) (int32, error)
	UpdateQuestionText(ctx context.Context, id uuid.UUID, text string) (*model.Question, error)
	SetAverageScore(ctx context.Context, questionId uuid.UUID, average float64) error

	CreateAnswer(ctx context.Context, input *model.RepositoryCreateAnswerInput) (*model.Answer, error)

	ListReviewers(ctx context.Context, evaluationId uuid.UUID) ([]*model.ReviewerAssignment, error)
	ReplaceReviewers(ctx context.Context, evaluationId uuid.UUID, reviewers []*model.ReviewerAssignment) error
	UpdateReviewerSlot(ctx context.Context, evaluationId uuid.UUID, reviewerId uuid.UUID, score int32, answerId uuid.UUID) error

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type EmployeeDirectory interface {
	GetEmployee(ctx context.Context, id uuid.UUID) (*model.Employee, error)
}

type UserDirectory interface {
	GetUsersByIds(ctx context.Context, ids []uuid.UUID) ([]*model.User, error)
}

type Notifier interface {
	Send(ctx context.Context, mail model.Mail) error
}
