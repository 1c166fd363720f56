package service

import (
	"context"

	"evaluationservice/internal/model"
	"evaluationservice/pkg/logging"

	"go.uber.org/zap"
)

// CalculateScore averages every recorded answer per question and stores the
// result on the question. Questions without answers average 0.
func (s *EvaluationService) CalculateScore(ctx context.Context, rawId string) (*model.EvaluationScore, error) {
	id, err := parseID(rawId)
	if err != nil {
		return nil, err
	}
	evaluation, err := s.evaluations.GetEvaluation(ctx, id)
	if err != nil {
		return nil, err
	}
	g, err := s.loadGraph(ctx, []*model.Evaluation{evaluation}, false)
	if err != nil {
		return nil, err
	}

	questions := g.questions[evaluation.Id]
	scores := make([]*model.QuestionScore, 0, len(questions))
	for _, question := range questions {
		answers := g.answers[question.Id]
		scores = append(scores, &model.QuestionScore{
			Id:           question.Id,
			Text:         question.Text,
			AnswerCount:  len(answers),
			AverageScore: averageScore(answers),
		})
	}

	if len(scores) > 0 {
		err = s.inTx(ctx, func(repo EvaluationRepositoryTx) error {
			for _, score := range scores {
				if err := repo.SetAverageScore(ctx, score.Id, score.AverageScore); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	result := &model.EvaluationScore{
		Id:           evaluation.Id,
		Period:       evaluation.Period,
		Status:       evaluation.Status,
		Type:         evaluation.Type,
		Reviewers:    g.reviewerDetails(evaluation.Id),
		Questions:    scores,
		OverallScore: overallScore(scores),
	}

	logging.FromContext(ctx).Info(ctx, "score calculated",
		zap.String("evaluation_id", evaluation.Id.String()),
		zap.Float64("overall_score", result.OverallScore),
	)
	return result, nil
}

func averageScore(answers []*model.Answer) float64 {
	if len(answers) == 0 {
		return 0
	}
	var total int64
	for _, answer := range answers {
		total += int64(answer.Score)
	}
	return float64(total) / float64(len(answers))
}

// overallScore is the mean of per-question averages, counting only
// questions that received at least one answer.
func overallScore(scores []*model.QuestionScore) float64 {
	var total float64
	answered := 0
	for _, score := range scores {
		if score.AnswerCount == 0 {
			continue
		}
		total += score.AverageScore
		answered++
	}
	if answered == 0 {
		return 0
	}
	return total / float64(answered)
}
