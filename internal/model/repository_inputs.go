package model

import "github.com/google/uuid"

type RepositoryCreateEvaluationInput struct {
	Id         uuid.UUID
	EmployeeId uuid.UUID
	Period     string
	Status     EvaluationStatus
	Type       EvaluationType
}

type RepositoryCreateQuestionInput struct {
	Id           uuid.UUID
	EvaluationId uuid.UUID
	Position     int32
	Text         string
}

type RepositoryCreateAnswerInput struct {
	Id           uuid.UUID
	QuestionId   uuid.UUID
	RespondentId uuid.UUID
	Score        int32
}

type RepositoryEvaluationFilter struct {
	Status     *EvaluationStatus
	Type       *EvaluationType
	EmployeeId *uuid.UUID
}
