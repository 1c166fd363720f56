package service_test

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"evaluationservice/internal/errdefs"
	"evaluationservice/internal/model"
	"evaluationservice/internal/service"

	"github.com/google/uuid"
)

// memState is a copy-on-begin snapshot of every table.
type memState struct {
	clock       time.Time
	employees   map[uuid.UUID]model.Employee
	users       map[uuid.UUID]model.User
	evaluations map[uuid.UUID]model.Evaluation
	questions   map[uuid.UUID]model.Question
	answers     []model.Answer
	reviewers   map[uuid.UUID][]model.ReviewerAssignment
}

func (s *memState) clone() *memState {
	c := &memState{
		clock:       s.clock,
		employees:   make(map[uuid.UUID]model.Employee, len(s.employees)),
		users:       make(map[uuid.UUID]model.User, len(s.users)),
		evaluations: make(map[uuid.UUID]model.Evaluation, len(s.evaluations)),
		questions:   make(map[uuid.UUID]model.Question, len(s.questions)),
		answers:     slices.Clone(s.answers),
		reviewers:   make(map[uuid.UUID][]model.ReviewerAssignment, len(s.reviewers)),
	}
	for k, v := range s.employees {
		v.EvaluationIds = slices.Clone(v.EvaluationIds)
		c.employees[k] = v
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.evaluations {
		c.evaluations[k] = v
	}
	for k, v := range s.questions {
		c.questions[k] = v
	}
	for k, v := range s.reviewers {
		c.reviewers[k] = slices.Clone(v)
	}
	return c
}

func (s *memState) tick() time.Time {
	s.clock = s.clock.Add(time.Millisecond)
	return s.clock
}

// memStore implements the repository and directory interfaces in memory
// with optimistic version checks on commit.
type memStore struct {
	mu    sync.Mutex
	state *memState

	// fail injects an error into the named transactional method.
	fail map[string]error
	// beforeCommit runs before each commit is validated.
	beforeCommit func(s *memStore)

	commits   int
	rollbacks int
}

func newMemStore() *memStore {
	return &memStore{
		state: &memState{
			clock:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			employees:   map[uuid.UUID]model.Employee{},
			users:       map[uuid.UUID]model.User{},
			evaluations: map[uuid.UUID]model.Evaluation{},
			questions:   map[uuid.UUID]model.Question{},
			reviewers:   map[uuid.UUID][]model.ReviewerAssignment{},
		},
		fail: map[string]error{},
	}
}

func (s *memStore) addEmployee(name string) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.state.employees[id] = model.Employee{Id: id, Name: name, Email: name + "@example.com", Role: model.RoleEmployee}
	return id
}

func (s *memStore) addUser(username string) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.state.users[id] = model.User{Id: id, Username: username, Email: username + "@example.com", Role: model.RoleEmployee}
	return id
}

func (s *memStore) employee(id uuid.UUID) model.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.employees[id]
}

func (s *memStore) evaluationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.evaluations)
}

func (s *memStore) questionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.questions)
}

func (s *memStore) answerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.answers)
}

func (s *memStore) storedQuestion(id uuid.UUID) model.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.questions[id]
}

// concurrentWrite bumps the committed version as another writer would.
func (s *memStore) concurrentWrite(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.state.evaluations[id]
	e.Version++
	s.state.evaluations[id] = e
}

// ── EvaluationRepository ────────────────────────────────────────────

func (s *memStore) NewEvaluationRepositoryTx(_ context.Context) (service.EvaluationRepositoryTx, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail["Begin"]; err != nil {
		return nil, err
	}
	return &memTx{store: s, state: s.state.clone(), bumped: map[uuid.UUID]int64{}}, nil
}

func (s *memStore) GetEvaluation(_ context.Context, id uuid.UUID) (*model.Evaluation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.state.evaluations[id]
	if !ok {
		return nil, errdefs.ErrEvaluationNotFound
	}
	return &e, nil
}

func (s *memStore) ListEvaluations(_ context.Context, filter *model.RepositoryEvaluationFilter) ([]*model.Evaluation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []*model.Evaluation
	for _, e := range s.state.evaluations {
		if filter != nil {
			if filter.Status != nil && e.Status != *filter.Status {
				continue
			}
			if filter.Type != nil && e.Type != *filter.Type {
				continue
			}
			if filter.EmployeeId != nil && e.EmployeeId != *filter.EmployeeId {
				continue
			}
		}
		result = append(result, &e)
	}
	slices.SortFunc(result, func(a, b *model.Evaluation) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return result, nil
}

func (s *memStore) ListQuestions(_ context.Context, evaluationIds []uuid.UUID) ([]*model.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []*model.Question
	for _, q := range s.state.questions {
		if slices.Contains(evaluationIds, q.EvaluationId) {
			result = append(result, &q)
		}
	}
	slices.SortFunc(result, func(a, b *model.Question) int {
		return int(a.Position - b.Position)
	})
	return result, nil
}

func (s *memStore) ListAllQuestions(_ context.Context) ([]*model.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]*model.Question, 0, len(s.state.questions))
	for _, q := range s.state.questions {
		result = append(result, &q)
	}
	slices.SortFunc(result, func(a, b *model.Question) int {
		if c := strings.Compare(a.EvaluationId.String(), b.EvaluationId.String()); c != 0 {
			return c
		}
		return int(a.Position - b.Position)
	})
	return result, nil
}

func (s *memStore) GetQuestionsByIds(_ context.Context, ids []uuid.UUID) ([]*model.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []*model.Question
	for _, id := range ids {
		if q, ok := s.state.questions[id]; ok {
			result = append(result, &q)
		}
	}
	return result, nil
}

func (s *memStore) ListAnswers(_ context.Context, questionIds []uuid.UUID) ([]*model.Answer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []*model.Answer
	for _, a := range s.state.answers {
		if slices.Contains(questionIds, a.QuestionId) {
			result = append(result, &a)
		}
	}
	return result, nil
}

func (s *memStore) ListAllAnswers(_ context.Context) ([]*model.Answer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]*model.Answer, 0, len(s.state.answers))
	for _, a := range s.state.answers {
		result = append(result, &a)
	}
	return result, nil
}

func (s *memStore) ListReviewers(_ context.Context, evaluationIds []uuid.UUID) ([]*model.ReviewerAssignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []*model.ReviewerAssignment
	for _, id := range evaluationIds {
		for _, r := range s.state.reviewers[id] {
			result = append(result, &r)
		}
	}
	return result, nil
}

// ── directories ─────────────────────────────────────────────────────

func (s *memStore) GetEmployee(_ context.Context, id uuid.UUID) (*model.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.state.employees[id]
	if !ok {
		return nil, errdefs.ErrEmployeeNotFound
	}
	return &e, nil
}

func (s *memStore) GetUsersByIds(_ context.Context, ids []uuid.UUID) ([]*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []*model.User
	for _, id := range ids {
		if u, ok := s.state.users[id]; ok {
			result = append(result, &u)
		}
	}
	return result, nil
}

// ── EvaluationRepositoryTx ──────────────────────────────────────────

type memTx struct {
	store  *memStore
	state  *memState
	bumped map[uuid.UUID]int64
	done   bool
}

func (t *memTx) failure(method string) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	return t.store.fail[method]
}

func (t *memTx) GetEvaluation(_ context.Context, id uuid.UUID) (*model.Evaluation, error) {
	e, ok := t.state.evaluations[id]
	if !ok {
		return nil, errdefs.ErrEvaluationNotFound
	}
	return &e, nil
}

func (t *memTx) CreateEvaluation(_ context.Context, input *model.RepositoryCreateEvaluationInput) (*model.Evaluation, error) {
	if err := t.failure("CreateEvaluation"); err != nil {
		return nil, err
	}
	if _, ok := t.state.employees[input.EmployeeId]; !ok {
		return nil, errdefs.ErrEmployeeNotFound
	}
	now := t.state.tick()
	e := model.Evaluation{
		Id:         input.Id,
		EmployeeId: input.EmployeeId,
		Period:     input.Period,
		Status:     input.Status,
		Type:       input.Type,
		Version:    1,
		CreatedAt:  now,
		EditedAt:   now,
	}
	t.state.evaluations[e.Id] = e
	return &e, nil
}

func (t *memTx) CompleteEvaluation(_ context.Context, id uuid.UUID, submittedAt time.Time) error {
	e, ok := t.state.evaluations[id]
	if !ok {
		return errdefs.ErrEvaluationNotFound
	}
	e.Status = model.EvaluationStatusCompleted
	e.SubmittedAt = &submittedAt
	t.state.evaluations[id] = e
	return nil
}

func (t *memTx) BumpVersion(_ context.Context, id uuid.UUID, expected int64) error {
	e, ok := t.state.evaluations[id]
	if !ok || e.Version != expected {
		return errdefs.ErrVersionConflict
	}
	e.Version++
	t.state.evaluations[id] = e
	t.bumped[id] = expected
	return nil
}

func (t *memTx) AppendEmployeeEvaluation(_ context.Context, employeeId uuid.UUID, evaluationId uuid.UUID) error {
	if err := t.failure("AppendEmployeeEvaluation"); err != nil {
		return err
	}
	e, ok := t.state.employees[employeeId]
	if !ok {
		return errdefs.ErrEmployeeNotFound
	}
	e.EvaluationIds = append(e.EvaluationIds, evaluationId)
	t.state.employees[employeeId] = e
	return nil
}

func (t *memTx) CreateQuestion(_ context.Context, input *model.RepositoryCreateQuestionInput) (*model.Question, error) {
	if err := t.failure("CreateQuestion"); err != nil {
		return nil, err
	}
	if _, ok := t.state.evaluations[input.EvaluationId]; !ok {
		return nil, errdefs.ErrEvaluationNotFound
	}
	q := model.Question{
		Id:           input.Id,
		EvaluationId: input.EvaluationId,
		Position:     input.Position,
		Text:         input.Text,
		CreatedAt:    t.state.tick(),
	}
	t.state.questions[q.Id] = q
	return &q, nil
}

func (t *memTx) GetQuestion(_ context.Context, id uuid.UUID) (*model.Question, error) {
	q, ok := t.state.questions[id]
	if !ok {
		return nil, errdefs.ErrQuestionNotFound
	}
	return &q, nil
}

func (t *memTx) NextQuestionPosition(_ context.Context, evaluationId uuid.UUID) (int32, error) {
	var next int32
	for _, q := range t.state.questions {
		if q.EvaluationId == evaluationId && q.Position >= next {
			next = q.Position + 1
		}
	}
	return next, nil
}

func (t *memTx) UpdateQuestionText(_ context.Context, id uuid.UUID, text string) (*model.Question, error) {
	q, ok := t.state.questions[id]
	if !ok {
		return nil, errdefs.ErrQuestionNotFound
	}
	q.Text = text
	t.state.questions[id] = q
	return &q, nil
}

func (t *memTx) SetAverageScore(_ context.Context, questionId uuid.UUID, average float64) error {
	q, ok := t.state.questions[questionId]
	if !ok {
		return errdefs.ErrQuestionNotFound
	}
	q.AverageScore = &average
	t.state.questions[questionId] = q
	return nil
}

func (t *memTx) CreateAnswer(_ context.Context, input *model.RepositoryCreateAnswerInput) (*model.Answer, error) {
	if err := t.failure("CreateAnswer"); err != nil {
		return nil, err
	}
	a := model.Answer{
		Id:           input.Id,
		QuestionId:   input.QuestionId,
		RespondentId: input.RespondentId,
		Score:        input.Score,
		CreatedAt:    t.state.tick(),
	}
	t.state.answers = append(t.state.answers, a)
	return &a, nil
}

func (t *memTx) ListReviewers(_ context.Context, evaluationId uuid.UUID) ([]*model.ReviewerAssignment, error) {
	var result []*model.ReviewerAssignment
	for _, r := range t.state.reviewers[evaluationId] {
		result = append(result, &r)
	}
	return result, nil
}

func (t *memTx) ReplaceReviewers(_ context.Context, evaluationId uuid.UUID, reviewers []*model.ReviewerAssignment) error {
	slots := make([]model.ReviewerAssignment, 0, len(reviewers))
	for i, r := range reviewers {
		slot := *r
		slot.EvaluationId = evaluationId
		slot.Position = int32(i)
		slots = append(slots, slot)
	}
	t.state.reviewers[evaluationId] = slots
	return nil
}

func (t *memTx) UpdateReviewerSlot(_ context.Context, evaluationId uuid.UUID, reviewerId uuid.UUID, score int32, answerId uuid.UUID) error {
	slots := t.state.reviewers[evaluationId]
	for i := range slots {
		if slots[i].ReviewerId == reviewerId {
			slots[i].Score = score
			id := answerId
			slots[i].AnswerId = &id
			return nil
		}
	}
	return errdefs.ErrVersionConflict
}

func (t *memTx) Commit(_ context.Context) error {
	if t.done {
		return nil
	}
	t.store.mu.Lock()
	hook := t.store.beforeCommit
	t.store.mu.Unlock()
	if hook != nil {
		hook(t.store)
	}

	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for id, expected := range t.bumped {
		if t.store.state.evaluations[id].Version != expected {
			return errdefs.ErrVersionConflict
		}
	}
	t.store.state = t.state
	t.store.commits++
	t.done = true
	return nil
}

func (t *memTx) Rollback(_ context.Context) error {
	if t.done {
		return nil
	}
	t.done = true
	t.store.mu.Lock()
	t.store.rollbacks++
	t.store.mu.Unlock()
	return nil
}
