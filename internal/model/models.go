package model

import (
	"time"

	"github.com/google/uuid"
)

type EvaluationStatus string

const (
	EvaluationStatusInProgress EvaluationStatus = "in_progress"
	EvaluationStatusCompleted  EvaluationStatus = "completed"
)

func (s EvaluationStatus) String() string {
	return string(s)
}

func (s EvaluationStatus) IsValid() bool {
	return s == EvaluationStatusInProgress || s == EvaluationStatusCompleted
}

type EvaluationType string

const (
	EvaluationTypeSelf    EvaluationType = "self"
	EvaluationTypePeer    EvaluationType = "peer"
	EvaluationTypeManager EvaluationType = "manager"
)

func (t EvaluationType) String() string {
	return string(t)
}

func (t EvaluationType) IsValid() bool {
	return t == EvaluationTypeSelf || t == EvaluationTypePeer || t == EvaluationTypeManager
}

const (
	MinScore = 1
	MaxScore = 5
)

type Employee struct {
	Id            uuid.UUID   `db:"id"`
	Name          string      `db:"name"`
	Email         string      `db:"email"`
	Role          Role        `db:"role"`
	Position      string      `db:"position"`
	Department    string      `db:"department"`
	StartDate     *time.Time  `db:"start_date"`
	EvaluationIds []uuid.UUID `db:"evaluation_ids"`
	CreatedAt     time.Time   `db:"created_at"`
}

// User is a reviewer identity.
type User struct {
	Id        uuid.UUID `db:"id"`
	Username  string    `db:"username"`
	Email     string    `db:"email"`
	Role      Role      `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

type Evaluation struct {
	Id          uuid.UUID        `db:"id" json:"id"`
	EmployeeId  uuid.UUID        `db:"employee_id" json:"employeeId"`
	Period      string           `db:"period" json:"period"`
	Status      EvaluationStatus `db:"status" json:"status"`
	Type        EvaluationType   `db:"type" json:"type"`
	SubmittedAt *time.Time       `db:"submitted_at" json:"submittedAt,omitempty"`
	Version     int64            `db:"version" json:"version"`
	CreatedAt   time.Time        `db:"created_at" json:"createdAt"`
	EditedAt    time.Time        `db:"edited_at" json:"editedAt"`
}

func (e *Evaluation) IsCompleted() bool {
	return e.Status == EvaluationStatusCompleted
}

type Question struct {
	Id           uuid.UUID `db:"id" json:"id"`
	EvaluationId uuid.UUID `db:"evaluation_id" json:"evaluationId"`
	Position     int32     `db:"position" json:"position"`
	Text         string    `db:"text" json:"text"`
	AverageScore *float64  `db:"average_score" json:"averageScore,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// Answer is immutable once stored.
type Answer struct {
	Id           uuid.UUID `db:"id"`
	QuestionId   uuid.UUID `db:"question_id"`
	RespondentId uuid.UUID `db:"respondent_id"`
	Score        int32     `db:"score"`
	CreatedAt    time.Time `db:"created_at"`
}

// ReviewerAssignment holds the latest score a reviewer gave on an evaluation.
// AnswerId is a lookup reference only.
type ReviewerAssignment struct {
	EvaluationId uuid.UUID  `db:"evaluation_id"`
	ReviewerId   uuid.UUID  `db:"reviewer_id"`
	Position     int32      `db:"position"`
	Score        int32      `db:"score"`
	AnswerId     *uuid.UUID `db:"answer_id"`
}

type Mail struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Content string `json:"content"`
}
