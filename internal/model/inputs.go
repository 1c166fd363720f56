package model

type CreateEvaluationInput struct {
	EmployeeId string
	Period     string
	Type       EvaluationType
	Questions  []string
}

type AssignReviewersInput struct {
	EvaluationId string
	ReviewerIds  []string
}

type ResponseInput struct {
	QuestionId string
	Score      int
}

type AddAnswersInput struct {
	EvaluationId string
	ReviewerId   string
	Responses    []ResponseInput
}

type AddQuestionInput struct {
	EvaluationId string
	Text         string
}

type UpdateQuestionInput struct {
	QuestionId string
	Text       string
}

// EvaluationFilter narrows FindAll. Empty fields are ignored.
type EvaluationFilter struct {
	Status     *EvaluationStatus
	Type       *EvaluationType
	EmployeeId *string
}
