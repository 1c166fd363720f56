package model

import (
	"time"

	"github.com/google/uuid"
)

// Resolved read models. They are plain values assembled from keyed lookups.

type UserRef struct {
	Id       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

type QuestionRef struct {
	Id   uuid.UUID `json:"id"`
	Text string    `json:"text"`
}

type AnswerDetail struct {
	Id           uuid.UUID   `json:"id"`
	Score        int32       `json:"score"`
	RespondentId uuid.UUID   `json:"respondentId"`
	Respondent   *UserRef    `json:"respondent,omitempty"`
	Question     QuestionRef `json:"question"`
	CreatedAt    time.Time   `json:"createdAt"`
}

type QuestionDetail struct {
	Id           uuid.UUID       `json:"id"`
	EvaluationId uuid.UUID       `json:"evaluationId"`
	Text         string          `json:"text"`
	AverageScore *float64        `json:"averageScore,omitempty"`
	Answers      []*AnswerDetail `json:"answers"`
}

type ReviewerDetail struct {
	ReviewerId uuid.UUID  `json:"reviewerId"`
	Score      int32      `json:"score"`
	AnswerId   *uuid.UUID `json:"answerId"`
	Reviewer   *UserRef   `json:"reviewer,omitempty"`
}

type EvaluationDetail struct {
	Id          uuid.UUID         `json:"id"`
	EmployeeId  uuid.UUID         `json:"employeeId"`
	Period      string            `json:"period"`
	Status      EvaluationStatus  `json:"status"`
	Type        EvaluationType    `json:"type"`
	SubmittedAt *time.Time        `json:"submittedAt,omitempty"`
	Questions   []*QuestionDetail `json:"questions"`
	Reviewers   []*ReviewerDetail `json:"reviewerIds"`
}

type QuestionScore struct {
	Id           uuid.UUID `json:"id"`
	Text         string    `json:"text"`
	AnswerCount  int       `json:"answerCount"`
	AverageScore float64   `json:"averageScore"`
}

type EvaluationScore struct {
	Id           uuid.UUID         `json:"id"`
	Period       string            `json:"period"`
	Status       EvaluationStatus  `json:"status"`
	Type         EvaluationType    `json:"type"`
	Reviewers    []*ReviewerDetail `json:"reviewerIds"`
	Questions    []*QuestionScore  `json:"questions"`
	OverallScore float64           `json:"overallScore"`
}

type AnswerWithQuestion struct {
	Id           uuid.UUID   `json:"id"`
	Score        int32       `json:"score"`
	RespondentId uuid.UUID   `json:"respondentId"`
	Question     QuestionRef `json:"question"`
	CreatedAt    time.Time   `json:"createdAt"`
}
