package service

import (
	"context"
	"strings"

	"evaluationservice/internal/config"
	"evaluationservice/internal/errdefs"
	"evaluationservice/internal/model"
	"evaluationservice/pkg/logging"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateEvaluation stores the evaluation, its questions and the employee
// back-reference in one transaction.
func (s *EvaluationService) CreateEvaluation(ctx context.Context, input *model.CreateEvaluationInput) (*model.EvaluationDetail, error) {
	employeeId, err := parseID(input.EmployeeId)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Period) == "" {
		return nil, errdefs.ErrEmptyPeriod
	}
	if !input.Type.IsValid() {
		return nil, errdefs.ErrInvalidType
	}
	for _, text := range input.Questions {
		if strings.TrimSpace(text) == "" {
			return nil, errdefs.ErrEmptyText
		}
	}

	if _, err := s.employees.GetEmployee(ctx, employeeId); err != nil {
		return nil, err
	}

	var evaluation *model.Evaluation
	var questions []*model.Question

	err = s.inTx(ctx, func(repo EvaluationRepositoryTx) error {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}

		evaluation, err = repo.CreateEvaluation(ctx, &model.RepositoryCreateEvaluationInput{
			Id:         id,
			EmployeeId: employeeId,
			Period:     input.Period,
			Status:     model.EvaluationStatusInProgress,
			Type:       input.Type,
		})
		if err != nil {
			return err
		}

		questions = make([]*model.Question, 0, len(input.Questions))
		for i, text := range input.Questions {
			questionId, err := uuid.NewV7()
			if err != nil {
				return err
			}
			question, err := repo.CreateQuestion(ctx, &model.RepositoryCreateQuestionInput{
				Id:           questionId,
				EvaluationId: evaluation.Id,
				Position:     int32(i),
				Text:         text,
			})
			if err != nil {
				return err
			}
			questions = append(questions, question)
		}

		return repo.AppendEmployeeEvaluation(ctx, employeeId, evaluation.Id)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.EvaluationCreated()
	logging.FromContext(ctx).Info(ctx, "evaluation created",
		zap.String("evaluation_id", evaluation.Id.String()),
		zap.String("employee_id", employeeId.String()),
		zap.Int("questions", len(questions)),
	)

	g := newGraph()
	g.addQuestions(questions)
	return g.detail(evaluation), nil
}

// Submit marks the evaluation completed and stamps the submission time.
func (s *EvaluationService) Submit(ctx context.Context, rawId string) (*model.Evaluation, error) {
	id, err := parseID(rawId)
	if err != nil {
		return nil, err
	}

	var result *model.Evaluation
	err = s.withRetry(ctx, "submit", func() error {
		return s.inTx(ctx, func(repo EvaluationRepositoryTx) error {
			evaluation, err := repo.GetEvaluation(ctx, id)
			if err != nil {
				return err
			}
			if evaluation.IsCompleted() && s.opts.ResubmitPolicy == config.ResubmitReject {
				return errdefs.ErrAlreadyCompleted
			}

			submittedAt := s.now().UTC()
			if err := repo.CompleteEvaluation(ctx, id, submittedAt); err != nil {
				return err
			}
			if err := repo.BumpVersion(ctx, id, evaluation.Version); err != nil {
				return err
			}

			evaluation.Status = model.EvaluationStatusCompleted
			evaluation.SubmittedAt = &submittedAt
			evaluation.Version++
			result = evaluation
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	s.metrics.EvaluationSubmitted()
	logging.FromContext(ctx).Info(ctx, "evaluation submitted", zap.String("evaluation_id", id.String()))
	return result, nil
}

// FindDetail returns the evaluation with questions, answers and reviewer
// slots resolved.
func (s *EvaluationService) FindDetail(ctx context.Context, rawId string) (*model.EvaluationDetail, error) {
	id, err := parseID(rawId)
	if err != nil {
		return nil, err
	}
	return s.findDetail(ctx, id)
}

func (s *EvaluationService) findDetail(ctx context.Context, id uuid.UUID) (*model.EvaluationDetail, error) {
	evaluation, err := s.evaluations.GetEvaluation(ctx, id)
	if err != nil {
		return nil, err
	}
	g, err := s.loadGraph(ctx, []*model.Evaluation{evaluation}, false)
	if err != nil {
		return nil, err
	}
	return g.detail(evaluation), nil
}

// FindAll returns every evaluation matching filter, fully resolved and
// annotated with reviewer and respondent identities.
func (s *EvaluationService) FindAll(ctx context.Context, filter *model.EvaluationFilter) ([]*model.EvaluationDetail, error) {
	repoFilter := &model.RepositoryEvaluationFilter{}
	if filter != nil {
		if filter.Status != nil && !filter.Status.IsValid() {
			return nil, errdefs.ErrInvalidArgument
		}
		if filter.Type != nil && !filter.Type.IsValid() {
			return nil, errdefs.ErrInvalidType
		}
		repoFilter.Status = filter.Status
		repoFilter.Type = filter.Type
		if filter.EmployeeId != nil {
			employeeId, err := parseID(*filter.EmployeeId)
			if err != nil {
				return nil, err
			}
			repoFilter.EmployeeId = &employeeId
		}
	}

	evaluations, err := s.evaluations.ListEvaluations(ctx, repoFilter)
	if err != nil {
		return nil, err
	}
	g, err := s.loadGraph(ctx, evaluations, true)
	if err != nil {
		return nil, err
	}

	details := make([]*model.EvaluationDetail, 0, len(evaluations))
	for _, evaluation := range evaluations {
		details = append(details, g.detail(evaluation))
	}
	return details, nil
}

// FindAllAnswersWithQuestions returns every answer annotated with the
// question it belongs to.
func (s *EvaluationService) FindAllAnswersWithQuestions(ctx context.Context) ([]*model.AnswerWithQuestion, error) {
	answers, err := s.evaluations.ListAllAnswers(ctx)
	if err != nil {
		return nil, err
	}

	questionIds := make([]uuid.UUID, 0, len(answers))
	for _, answer := range answers {
		questionIds = append(questionIds, answer.QuestionId)
	}
	questions, err := s.evaluations.GetQuestionsByIds(ctx, uniqueIds(questionIds))
	if err != nil {
		return nil, err
	}
	byId := make(map[uuid.UUID]*model.Question, len(questions))
	for _, question := range questions {
		byId[question.Id] = question
	}

	result := make([]*model.AnswerWithQuestion, 0, len(answers))
	for _, answer := range answers {
		question, ok := byId[answer.QuestionId]
		if !ok {
			continue
		}
		result = append(result, &model.AnswerWithQuestion{
			Id:           answer.Id,
			Score:        answer.Score,
			RespondentId: answer.RespondentId,
			Question:     model.QuestionRef{Id: question.Id, Text: question.Text},
			CreatedAt:    answer.CreatedAt,
		})
	}
	return result, nil
}
