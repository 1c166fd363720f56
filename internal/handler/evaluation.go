package handler

import (
	"context"
	"net/http"
	"time"

	"evaluationservice/internal/errdefs"
	"evaluationservice/internal/middleware"
	"evaluationservice/internal/model"
	"evaluationservice/pkg/ctxdata"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type EvaluationService interface {
	CreateEvaluation(ctx context.Context, input *model.CreateEvaluationInput) (*model.EvaluationDetail, error)
	Submit(ctx context.Context, id string) (*model.Evaluation, error)
	FindDetail(ctx context.Context, id string) (*model.EvaluationDetail, error)
	FindAll(ctx context.Context, filter *model.EvaluationFilter) ([]*model.EvaluationDetail, error)
	FindAllAnswersWithQuestions(ctx context.Context) ([]*model.AnswerWithQuestion, error)
	AssignReviewers(ctx context.Context, input *model.AssignReviewersInput) (*model.EvaluationDetail, error)
	AddAnswers(ctx context.Context, input *model.AddAnswersInput) (*model.EvaluationDetail, error)
	CalculateScore(ctx context.Context, id string) (*model.EvaluationScore, error)
	AddQuestion(ctx context.Context, input *model.AddQuestionInput) (*model.Question, error)
	UpdateQuestion(ctx context.Context, input *model.UpdateQuestionInput) (*model.Question, error)
	FindQuestion(ctx context.Context, id string) (*model.QuestionDetail, error)
	FindQuestions(ctx context.Context) ([]*model.QuestionDetail, error)
}

type EvaluationHandler struct {
	s        EvaluationService
	cache    Cache
	ttl      time.Duration
	validate *validator.Validate
}

func NewEvaluationHandler(s EvaluationService, cache Cache, ttl time.Duration) *EvaluationHandler {
	return &EvaluationHandler{
		s:        s,
		cache:    cache,
		ttl:      ttl,
		validate: validator.New(),
	}
}

func (h *EvaluationHandler) RegisterRoutes(r chi.Router) {
	manager := middleware.RequireRole(model.RoleManager)
	employee := middleware.RequireRole(model.RoleEmployee)

	r.Route("/evaluations", func(r chi.Router) {
		r.With(manager).Post("/", h.CreateEvaluation)
		r.With(manager).Get("/", h.FindAll)
		r.With(manager).Get("/answers", h.FindAllAnswersWithQuestions)
		r.With(employee).Get("/{id}", h.FindDetail)
		r.With(manager).Post("/{id}/submit", h.Submit)
		r.With(manager).Patch("/{id}/assign-reviewers", h.AssignReviewers)
		r.With(employee).Post("/{id}/answers", h.AddAnswers)
		r.With(manager).Patch("/{id}/calculate-score", h.CalculateScore)
		r.With(manager).Post("/{id}/questions", h.AddQuestion)
	})
	r.Route("/questions", func(r chi.Router) {
		r.With(employee).Get("/", h.FindQuestions)
		r.With(employee).Get("/{questionId}", h.FindQuestion)
		r.With(manager).Patch("/{questionId}", h.UpdateQuestion)
	})
}

// detailKey uses the canonical uuid form so every spelling of an id shares
// one entry.
func detailKey(id string) string {
	if parsed, err := uuid.Parse(id); err == nil {
		id = parsed.String()
	}
	return "evaluation:detail:" + id
}

func (h *EvaluationHandler) invalidate(ctx context.Context, id string) {
	h.cache.Delete(ctx, detailKey(id))
}

func (h *EvaluationHandler) respond(w http.ResponseWriter, r *http.Request, statusCode int, v any) {
	data, err := marshalJSON(v)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, statusCode, data)
}

func (h *EvaluationHandler) CreateEvaluation(w http.ResponseWriter, r *http.Request) {
	var req createEvaluationRequest
	if err := decodeBody(r, h.validate, &req); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	questions := make([]string, 0, len(req.Questions))
	for _, q := range req.Questions {
		questions = append(questions, q.Text)
	}

	detail, err := h.s.CreateEvaluation(r.Context(), &model.CreateEvaluationInput{
		EmployeeId: req.EmployeeId,
		Period:     req.Period,
		Type:       model.EvaluationType(req.Type),
		Questions:  questions,
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	h.respond(w, r, http.StatusCreated, detail)
}

func (h *EvaluationHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := &model.EvaluationFilter{}
	if v := query.Get("status"); v != "" {
		status := model.EvaluationStatus(v)
		filter.Status = &status
	}
	if v := query.Get("type"); v != "" {
		typ := model.EvaluationType(v)
		filter.Type = &typ
	}
	if v := query.Get("employeeId"); v != "" {
		filter.EmployeeId = &v
	}

	details, err := h.s.FindAll(r.Context(), filter)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	h.respond(w, r, http.StatusOK, details)
}

func (h *EvaluationHandler) FindAllAnswersWithQuestions(w http.ResponseWriter, r *http.Request) {
	answers, err := h.s.FindAllAnswersWithQuestions(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	h.respond(w, r, http.StatusOK, answers)
}

// FindDetail is read-through cached. Every mutation of the evaluation drops
// the entry.
func (h *EvaluationHandler) FindDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := parsePathParam(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if data, ok := h.cache.Get(ctx, detailKey(id)); ok {
		writeJSON(w, http.StatusOK, data)
		return
	}

	detail, err := h.s.FindDetail(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	data, err := marshalJSON(detail)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
	h.cache.Set(ctx, detailKey(id), data, h.ttl)
}

func (h *EvaluationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := parsePathParam(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	evaluation, err := h.s.Submit(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	h.invalidate(ctx, id)
	h.respond(w, r, http.StatusOK, evaluation)
}

func (h *EvaluationHandler) AssignReviewers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := parsePathParam(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req assignReviewersRequest
	if err := decodeBody(r, h.validate, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, err := h.s.AssignReviewers(ctx, &model.AssignReviewersInput{
		EvaluationId: id,
		ReviewerIds:  req.ReviewerIds,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	h.invalidate(ctx, id)
	h.respond(w, r, http.StatusOK, detail)
}

// AddAnswers records responses on behalf of the calling subject.
func (h *EvaluationHandler) AddAnswers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := parsePathParam(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	reviewerId, ok := ctxdata.GetSubjectID(ctx)
	if !ok {
		writeError(ctx, w, errdefs.ErrAuthentication)
		return
	}
	var req addAnswersRequest
	if err := decodeBody(r, h.validate, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	responses := make([]model.ResponseInput, 0, len(req.Responses))
	for _, resp := range req.Responses {
		responses = append(responses, model.ResponseInput{
			QuestionId: resp.QuestionId,
			Score:      resp.ResponseScore,
		})
	}

	detail, err := h.s.AddAnswers(ctx, &model.AddAnswersInput{
		EvaluationId: id,
		ReviewerId:   reviewerId,
		Responses:    responses,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	h.invalidate(ctx, id)
	h.respond(w, r, http.StatusOK, detail)
}

func (h *EvaluationHandler) CalculateScore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := parsePathParam(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	score, err := h.s.CalculateScore(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	h.invalidate(ctx, id)
	h.respond(w, r, http.StatusOK, score)
}

func (h *EvaluationHandler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := parsePathParam(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req questionRequest
	if err := decodeBody(r, h.validate, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	question, err := h.s.AddQuestion(ctx, &model.AddQuestionInput{EvaluationId: id, Text: req.Text})
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	h.invalidate(ctx, id)
	h.respond(w, r, http.StatusCreated, question)
}

func (h *EvaluationHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := parsePathParam(r, "questionId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req questionRequest
	if err := decodeBody(r, h.validate, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	question, err := h.s.UpdateQuestion(ctx, &model.UpdateQuestionInput{QuestionId: id, Text: req.Text})
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	h.invalidate(ctx, question.EvaluationId.String())
	h.respond(w, r, http.StatusOK, question)
}

func (h *EvaluationHandler) FindQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.s.FindQuestions(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	h.respond(w, r, http.StatusOK, questions)
}

func (h *EvaluationHandler) FindQuestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := parsePathParam(r, "questionId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	question, err := h.s.FindQuestion(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	h.respond(w, r, http.StatusOK, question)
}
