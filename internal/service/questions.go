package service

import (
	"context"
	"strings"

	"evaluationservice/internal/errdefs"
	"evaluationservice/internal/model"

	"github.com/google/uuid"
)

// AddQuestion appends a question to an evaluation that is still in progress.
func (s *EvaluationService) AddQuestion(ctx context.Context, input *model.AddQuestionInput) (*model.Question, error) {
	evaluationId, err := parseID(input.EvaluationId)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Text) == "" {
		return nil, errdefs.ErrEmptyText
	}

	var question *model.Question
	err = s.withRetry(ctx, "add_question", func() error {
		return s.inTx(ctx, func(repo EvaluationRepositoryTx) error {
			evaluation, err := repo.GetEvaluation(ctx, evaluationId)
			if err != nil {
				return err
			}
			if evaluation.IsCompleted() {
				return errdefs.ErrEvaluationClosed
			}
			position, err := repo.NextQuestionPosition(ctx, evaluationId)
			if err != nil {
				return err
			}
			id, err := uuid.NewV7()
			if err != nil {
				return err
			}
			question, err = repo.CreateQuestion(ctx, &model.RepositoryCreateQuestionInput{
				Id:           id,
				EvaluationId: evaluationId,
				Position:     position,
				Text:         input.Text,
			})
			if err != nil {
				return err
			}
			return repo.BumpVersion(ctx, evaluationId, evaluation.Version)
		})
	})
	if err != nil {
		return nil, err
	}
	return question, nil
}

// FindQuestion returns one question with its answers.
func (s *EvaluationService) FindQuestion(ctx context.Context, rawId string) (*model.QuestionDetail, error) {
	id, err := parseID(rawId)
	if err != nil {
		return nil, err
	}
	questions, err := s.evaluations.GetQuestionsByIds(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, errdefs.ErrQuestionNotFound
	}
	g, err := s.questionGraph(ctx, questions)
	if err != nil {
		return nil, err
	}
	return g.questionDetail(questions[0]), nil
}

func (s *EvaluationService) FindQuestions(ctx context.Context) ([]*model.QuestionDetail, error) {
	questions, err := s.evaluations.ListAllQuestions(ctx)
	if err != nil {
		return nil, err
	}
	g, err := s.questionGraph(ctx, questions)
	if err != nil {
		return nil, err
	}
	result := make([]*model.QuestionDetail, 0, len(questions))
	for _, question := range questions {
		result = append(result, g.questionDetail(question))
	}
	return result, nil
}

// UpdateQuestion changes the question text. Answers keep pointing at it.
func (s *EvaluationService) UpdateQuestion(ctx context.Context, input *model.UpdateQuestionInput) (*model.Question, error) {
	questionId, err := parseID(input.QuestionId)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Text) == "" {
		return nil, errdefs.ErrEmptyText
	}

	var question *model.Question
	err = s.withRetry(ctx, "update_question", func() error {
		return s.inTx(ctx, func(repo EvaluationRepositoryTx) error {
			current, err := repo.GetQuestion(ctx, questionId)
			if err != nil {
				return err
			}
			evaluation, err := repo.GetEvaluation(ctx, current.EvaluationId)
			if err != nil {
				return err
			}
			if evaluation.IsCompleted() {
				return errdefs.ErrEvaluationClosed
			}
			question, err = repo.UpdateQuestionText(ctx, questionId, input.Text)
			if err != nil {
				return err
			}
			return repo.BumpVersion(ctx, evaluation.Id, evaluation.Version)
		})
	})
	if err != nil {
		return nil, err
	}
	return question, nil
}
