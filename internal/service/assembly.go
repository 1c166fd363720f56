package service

import (
	"context"

	"evaluationservice/internal/model"

	"github.com/google/uuid"
)

// graph is the result of keyed batch lookups for a set of evaluations.
type graph struct {
	questions map[uuid.UUID][]*model.Question
	answers   map[uuid.UUID][]*model.Answer
	reviewers map[uuid.UUID][]*model.ReviewerAssignment
	users     map[uuid.UUID]*model.User
}

func newGraph() *graph {
	return &graph{
		questions: make(map[uuid.UUID][]*model.Question),
		answers:   make(map[uuid.UUID][]*model.Answer),
		reviewers: make(map[uuid.UUID][]*model.ReviewerAssignment),
		users:     make(map[uuid.UUID]*model.User),
	}
}

func (g *graph) addQuestions(questions []*model.Question) {
	for _, question := range questions {
		g.questions[question.EvaluationId] = append(g.questions[question.EvaluationId], question)
	}
}

func (g *graph) addAnswers(answers []*model.Answer) {
	for _, answer := range answers {
		g.answers[answer.QuestionId] = append(g.answers[answer.QuestionId], answer)
	}
}

func (g *graph) addReviewers(reviewers []*model.ReviewerAssignment) {
	for _, reviewer := range reviewers {
		g.reviewers[reviewer.EvaluationId] = append(g.reviewers[reviewer.EvaluationId], reviewer)
	}
}

func (g *graph) addUsers(users []*model.User) {
	for _, user := range users {
		g.users[user.Id] = user
	}
}

// loadGraph resolves questions, answers and reviewer slots of evaluations.
// withUsers additionally resolves reviewer and respondent identities.
func (s *EvaluationService) loadGraph(ctx context.Context, evaluations []*model.Evaluation, withUsers bool) (*graph, error) {
	g := newGraph()
	if len(evaluations) == 0 {
		return g, nil
	}

	evaluationIds := make([]uuid.UUID, 0, len(evaluations))
	for _, evaluation := range evaluations {
		evaluationIds = append(evaluationIds, evaluation.Id)
	}

	questions, err := s.evaluations.ListQuestions(ctx, evaluationIds)
	if err != nil {
		return nil, err
	}
	g.addQuestions(questions)

	questionIds := make([]uuid.UUID, 0, len(questions))
	for _, question := range questions {
		questionIds = append(questionIds, question.Id)
	}
	answers, err := s.evaluations.ListAnswers(ctx, questionIds)
	if err != nil {
		return nil, err
	}
	g.addAnswers(answers)

	reviewers, err := s.evaluations.ListReviewers(ctx, evaluationIds)
	if err != nil {
		return nil, err
	}
	g.addReviewers(reviewers)

	if withUsers {
		userIds := make([]uuid.UUID, 0, len(reviewers)+len(answers))
		for _, reviewer := range reviewers {
			userIds = append(userIds, reviewer.ReviewerId)
		}
		for _, answer := range answers {
			userIds = append(userIds, answer.RespondentId)
		}
		users, err := s.users.GetUsersByIds(ctx, uniqueIds(userIds))
		if err != nil {
			return nil, err
		}
		g.addUsers(users)
	}

	return g, nil
}

func (g *graph) userRef(id uuid.UUID) *model.UserRef {
	user, ok := g.users[id]
	if !ok {
		return nil
	}
	return &model.UserRef{Id: user.Id, Username: user.Username, Email: user.Email}
}

func (g *graph) reviewerDetails(evaluationId uuid.UUID) []*model.ReviewerDetail {
	slots := g.reviewers[evaluationId]
	details := make([]*model.ReviewerDetail, 0, len(slots))
	for _, slot := range slots {
		details = append(details, &model.ReviewerDetail{
			ReviewerId: slot.ReviewerId,
			Score:      slot.Score,
			AnswerId:   slot.AnswerId,
			Reviewer:   g.userRef(slot.ReviewerId),
		})
	}
	return details
}

func (g *graph) questionDetail(question *model.Question) *model.QuestionDetail {
	ref := model.QuestionRef{Id: question.Id, Text: question.Text}
	answers := g.answers[question.Id]
	answerDetails := make([]*model.AnswerDetail, 0, len(answers))
	for _, answer := range answers {
		answerDetails = append(answerDetails, &model.AnswerDetail{
			Id:           answer.Id,
			Score:        answer.Score,
			RespondentId: answer.RespondentId,
			Respondent:   g.userRef(answer.RespondentId),
			Question:     ref,
			CreatedAt:    answer.CreatedAt,
		})
	}
	return &model.QuestionDetail{
		Id:           question.Id,
		EvaluationId: question.EvaluationId,
		Text:         question.Text,
		AverageScore: question.AverageScore,
		Answers:      answerDetails,
	}
}

// questionGraph resolves the answers of standalone questions.
func (s *EvaluationService) questionGraph(ctx context.Context, questions []*model.Question) (*graph, error) {
	g := newGraph()
	if len(questions) == 0 {
		return g, nil
	}
	questionIds := make([]uuid.UUID, 0, len(questions))
	for _, question := range questions {
		questionIds = append(questionIds, question.Id)
	}
	answers, err := s.evaluations.ListAnswers(ctx, questionIds)
	if err != nil {
		return nil, err
	}
	g.addAnswers(answers)
	return g, nil
}

func (g *graph) detail(evaluation *model.Evaluation) *model.EvaluationDetail {
	questions := g.questions[evaluation.Id]
	questionDetails := make([]*model.QuestionDetail, 0, len(questions))
	for _, question := range questions {
		questionDetails = append(questionDetails, g.questionDetail(question))
	}

	return &model.EvaluationDetail{
		Id:          evaluation.Id,
		EmployeeId:  evaluation.EmployeeId,
		Period:      evaluation.Period,
		Status:      evaluation.Status,
		Type:        evaluation.Type,
		SubmittedAt: evaluation.SubmittedAt,
		Questions:   questionDetails,
		Reviewers:   g.reviewerDetails(evaluation.Id),
	}
}

// uniqueIds removes duplicates and keeps first-seen order.
func uniqueIds(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	result := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
