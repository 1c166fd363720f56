package handler

type questionRequest struct {
	Text string `json:"text" validate:"required"`
}

type createEvaluationRequest struct {
	EmployeeId string            `json:"employeeId" validate:"required,uuid"`
	Period     string            `json:"period" validate:"required"`
	Type       string            `json:"type" validate:"required,oneof=self peer manager"`
	Status     string            `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed"`
	Questions  []questionRequest `json:"questions" validate:"dive"`
}

type assignReviewersRequest struct {
	ReviewerIds []string `json:"reviewerIds" validate:"required,dive,uuid"`
}

type responseRequest struct {
	QuestionId    string `json:"questionId" validate:"required"`
	ResponseScore int    `json:"responseScore"`
}

type addAnswersRequest struct {
	Responses []responseRequest `json:"responses" validate:"dive"`
}
