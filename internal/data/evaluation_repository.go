package data

import (
	"context"
	"errors"
	"time"

	"evaluationservice/internal/errdefs"
	"evaluationservice/internal/model"
	"evaluationservice/internal/service"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const questionColumns = `id, evaluation_id, position, text, average_score, created_at`
const answerColumns = `id, question_id, respondent_id, score, created_at`
const reviewerColumns = `evaluation_id, reviewer_id, position, score, answer_id`

type EvaluationRepository struct {
	db Querier
}

func NewEvaluationRepository(db Querier) *EvaluationRepository {
	return &EvaluationRepository{db: db}
}

func (r *EvaluationRepository) NewEvaluationRepositoryTx(ctx context.Context) (service.EvaluationRepositoryTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, handleError(err, errdefs.ErrNotFound)
	}
	return &EvaluationRepositoryTx{tx: tx}, nil
}

func (r *EvaluationRepository) GetEvaluation(ctx context.Context, id uuid.UUID) (*model.Evaluation, error) {
	return getEvaluation(ctx, r.db, id)
}

func (r *EvaluationRepository) ListEvaluations(ctx context.Context, filter *model.RepositoryEvaluationFilter) ([]*model.Evaluation, error) {
	query, args := buildEvaluationListQuery(filter)
	var evaluations []*model.Evaluation
	if err := pgxscan.Select(ctx, r.db, &evaluations, query, args...); err != nil {
		return nil, handleError(err, errdefs.ErrEvaluationNotFound)
	}
	return evaluations, nil
}

func (r *EvaluationRepository) ListQuestions(ctx context.Context, evaluationIds []uuid.UUID) ([]*model.Question, error) {
	if len(evaluationIds) == 0 {
		return nil, nil
	}
	query := `
SELECT ` + questionColumns + `
FROM questions
WHERE evaluation_id = ANY($1)
ORDER BY evaluation_id, position
`
	var questions []*model.Question
	if err := pgxscan.Select(ctx, r.db, &questions, query, evaluationIds); err != nil {
		return nil, handleError(err, errdefs.ErrQuestionNotFound)
	}
	return questions, nil
}

func (r *EvaluationRepository) ListAllQuestions(ctx context.Context) ([]*model.Question, error) {
	query := `
SELECT ` + questionColumns + `
FROM questions
ORDER BY evaluation_id, position
`
	var questions []*model.Question
	if err := pgxscan.Select(ctx, r.db, &questions, query); err != nil {
		return nil, handleError(err, errdefs.ErrQuestionNotFound)
	}
	return questions, nil
}

func (r *EvaluationRepository) GetQuestionsByIds(ctx context.Context, ids []uuid.UUID) ([]*model.Question, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `
SELECT ` + questionColumns + `
FROM questions
WHERE id = ANY($1)
`
	var questions []*model.Question
	if err := pgxscan.Select(ctx, r.db, &questions, query, ids); err != nil {
		return nil, handleError(err, errdefs.ErrQuestionNotFound)
	}
	return questions, nil
}

func (r *EvaluationRepository) ListAnswers(ctx context.Context, questionIds []uuid.UUID) ([]*model.Answer, error) {
	if len(questionIds) == 0 {
		return nil, nil
	}
	query := `
SELECT ` + answerColumns + `
FROM answers
WHERE question_id = ANY($1)
ORDER BY created_at, id
`
	var answers []*model.Answer
	if err := pgxscan.Select(ctx, r.db, &answers, query, questionIds); err != nil {
		return nil, handleError(err, errdefs.ErrNotFound)
	}
	return answers, nil
}

func (r *EvaluationRepository) ListAllAnswers(ctx context.Context) ([]*model.Answer, error) {
	query := `
SELECT ` + answerColumns + `
FROM answers
ORDER BY created_at, id
`
	var answers []*model.Answer
	if err := pgxscan.Select(ctx, r.db, &answers, query); err != nil {
		return nil, handleError(err, errdefs.ErrNotFound)
	}
	return answers, nil
}

func (r *EvaluationRepository) ListReviewers(ctx context.Context, evaluationIds []uuid.UUID) ([]*model.ReviewerAssignment, error) {
	if len(evaluationIds) == 0 {
		return nil, nil
	}
	query := `
SELECT ` + reviewerColumns + `
FROM evaluation_reviewers
WHERE evaluation_id = ANY($1)
ORDER BY evaluation_id, position
`
	var reviewers []*model.ReviewerAssignment
	if err := pgxscan.Select(ctx, r.db, &reviewers, query, evaluationIds); err != nil {
		return nil, handleError(err, errdefs.ErrEvaluationNotFound)
	}
	return reviewers, nil
}

func getEvaluation(ctx context.Context, db pgxscan.Querier, id uuid.UUID) (*model.Evaluation, error) {
	query := `
SELECT` + evaluationColumns + `
FROM evaluations
WHERE id = $1
`
	var evaluation model.Evaluation
	if err := pgxscan.Get(ctx, db, &evaluation, query, id); err != nil {
		return nil, handleError(err, errdefs.ErrEvaluationNotFound)
	}
	return &evaluation, nil
}

// EvaluationRepositoryTx wraps a single pgx transaction.
type EvaluationRepositoryTx struct {
	tx pgx.Tx
}

func (r *EvaluationRepositoryTx) GetEvaluation(ctx context.Context, id uuid.UUID) (*model.Evaluation, error) {
	return getEvaluation(ctx, r.tx, id)
}

func (r *EvaluationRepositoryTx) CreateEvaluation(ctx context.Context, input *model.RepositoryCreateEvaluationInput) (*model.Evaluation, error) {
	query := `
INSERT INTO evaluations (id, employee_id, period, status, type)
VALUES ($1, $2, $3, $4, $5)
RETURNING` + evaluationColumns

	var evaluation model.Evaluation
	err := pgxscan.Get(ctx, r.tx, &evaluation, query,
		input.Id,
		input.EmployeeId,
		input.Period,
		input.Status,
		input.Type,
	)
	if err != nil {
		return nil, handleError(err, errdefs.ErrEmployeeNotFound)
	}
	return &evaluation, nil
}

func (r *EvaluationRepositoryTx) CompleteEvaluation(ctx context.Context, id uuid.UUID, submittedAt time.Time) error {
	query := `
UPDATE evaluations
SET status = $2, submitted_at = $3, edited_at = now()
WHERE id = $1
`
	tag, err := r.tx.Exec(ctx, query, id, model.EvaluationStatusCompleted, submittedAt)
	if err != nil {
		return handleError(err, errdefs.ErrEvaluationNotFound)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrEvaluationNotFound
	}
	return nil
}

func (r *EvaluationRepositoryTx) BumpVersion(ctx context.Context, id uuid.UUID, expected int64) error {
	query := `
UPDATE evaluations
SET version = version + 1, edited_at = now()
WHERE id = $1 AND version = $2
`
	tag, err := r.tx.Exec(ctx, query, id, expected)
	if err != nil {
		return handleError(err, errdefs.ErrEvaluationNotFound)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrVersionConflict
	}
	return nil
}

func (r *EvaluationRepositoryTx) AppendEmployeeEvaluation(ctx context.Context, employeeId uuid.UUID, evaluationId uuid.UUID) error {
	query := `
UPDATE employees
SET evaluation_ids = array_append(evaluation_ids, $2)
WHERE id = $1
`
	tag, err := r.tx.Exec(ctx, query, employeeId, evaluationId)
	if err != nil {
		return handleError(err, errdefs.ErrEmployeeNotFound)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrEmployeeNotFound
	}
	return nil
}

func (r *EvaluationRepositoryTx) CreateQuestion(ctx context.Context, input *model.RepositoryCreateQuestionInput) (*model.Question, error) {
	query := `
INSERT INTO questions (id, evaluation_id, position, text)
VALUES ($1, $2, $3, $4)
RETURNING ` + questionColumns

	var question model.Question
	err := pgxscan.Get(ctx, r.tx, &question, query,
		input.Id,
		input.EvaluationId,
		input.Position,
		input.Text,
	)
	if err != nil {
		return nil, handleError(err, errdefs.ErrEvaluationNotFound)
	}
	return &question, nil
}

func (r *EvaluationRepositoryTx) GetQuestion(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	query := `
SELECT ` + questionColumns + `
FROM questions
WHERE id = $1
`
	var question model.Question
	if err := pgxscan.Get(ctx, r.tx, &question, query, id); err != nil {
		return nil, handleError(err, errdefs.ErrQuestionNotFound)
	}
	return &question, nil
}

func (r *EvaluationRepositoryTx) NextQuestionPosition(ctx context.Context, evaluationId uuid.UUID) (int32, error) {
	query := `SELECT COALESCE(MAX(position) + 1, 0) FROM questions WHERE evaluation_id = $1`
	var position int32
	if err := r.tx.QueryRow(ctx, query, evaluationId).Scan(&position); err != nil {
		return 0, handleError(err, errdefs.ErrEvaluationNotFound)
	}
	return position, nil
}

func (r *EvaluationRepositoryTx) UpdateQuestionText(ctx context.Context, id uuid.UUID, text string) (*model.Question, error) {
	query := `
UPDATE questions
SET text = $2
WHERE id = $1
RETURNING ` + questionColumns

	var question model.Question
	if err := pgxscan.Get(ctx, r.tx, &question, query, id, text); err != nil {
		return nil, handleError(err, errdefs.ErrQuestionNotFound)
	}
	return &question, nil
}

func (r *EvaluationRepositoryTx) SetAverageScore(ctx context.Context, questionId uuid.UUID, average float64) error {
	query := `UPDATE questions SET average_score = $2 WHERE id = $1`
	tag, err := r.tx.Exec(ctx, query, questionId, average)
	if err != nil {
		return handleError(err, errdefs.ErrQuestionNotFound)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrQuestionNotFound
	}
	return nil
}

func (r *EvaluationRepositoryTx) CreateAnswer(ctx context.Context, input *model.RepositoryCreateAnswerInput) (*model.Answer, error) {
	query := `
INSERT INTO answers (id, question_id, respondent_id, score)
VALUES ($1, $2, $3, $4)
RETURNING ` + answerColumns

	var answer model.Answer
	err := pgxscan.Get(ctx, r.tx, &answer, query,
		input.Id,
		input.QuestionId,
		input.RespondentId,
		input.Score,
	)
	if err != nil {
		return nil, handleError(err, errdefs.ErrQuestionNotFound)
	}
	return &answer, nil
}

func (r *EvaluationRepositoryTx) ListReviewers(ctx context.Context, evaluationId uuid.UUID) ([]*model.ReviewerAssignment, error) {
	query := `
SELECT ` + reviewerColumns + `
FROM evaluation_reviewers
WHERE evaluation_id = $1
ORDER BY position
`
	var reviewers []*model.ReviewerAssignment
	if err := pgxscan.Select(ctx, r.tx, &reviewers, query, evaluationId); err != nil {
		return nil, handleError(err, errdefs.ErrEvaluationNotFound)
	}
	return reviewers, nil
}

func (r *EvaluationRepositoryTx) ReplaceReviewers(ctx context.Context, evaluationId uuid.UUID, reviewers []*model.ReviewerAssignment) error {
	if _, err := r.tx.Exec(ctx, `DELETE FROM evaluation_reviewers WHERE evaluation_id = $1`, evaluationId); err != nil {
		return handleError(err, errdefs.ErrEvaluationNotFound)
	}

	query := `
INSERT INTO evaluation_reviewers (evaluation_id, reviewer_id, position, score, answer_id)
VALUES ($1, $2, $3, $4, $5)
`
	for i, reviewer := range reviewers {
		_, err := r.tx.Exec(ctx, query,
			evaluationId,
			reviewer.ReviewerId,
			int32(i),
			reviewer.Score,
			reviewer.AnswerId,
		)
		if err != nil {
			return handleError(err, errdefs.ErrEvaluationNotFound)
		}
	}
	return nil
}

func (r *EvaluationRepositoryTx) UpdateReviewerSlot(ctx context.Context, evaluationId uuid.UUID, reviewerId uuid.UUID, score int32, answerId uuid.UUID) error {
	query := `
UPDATE evaluation_reviewers
SET score = $3, answer_id = $4
WHERE evaluation_id = $1 AND reviewer_id = $2
`
	tag, err := r.tx.Exec(ctx, query, evaluationId, reviewerId, score, answerId)
	if err != nil {
		return handleError(err, errdefs.ErrEvaluationNotFound)
	}
	// Callers check the assignment earlier in the same transaction, so a
	// missing row means a concurrent reassignment replaced the slots.
	if tag.RowsAffected() == 0 {
		return errdefs.ErrVersionConflict
	}
	return nil
}

func (r *EvaluationRepositoryTx) Commit(ctx context.Context) error {
	if err := r.tx.Commit(ctx); err != nil {
		return handleError(err, errdefs.ErrNotFound)
	}
	return nil
}

// Rollback is a no-op after Commit.
func (r *EvaluationRepositoryTx) Rollback(ctx context.Context) error {
	err := r.tx.Rollback(ctx)
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}
	return nil
}
