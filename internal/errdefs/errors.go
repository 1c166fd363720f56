package errdefs

import (
	"errors"
	"fmt"
)

// Error kinds visible at the boundary. Specific errors wrap one of them.
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrConflict         = errors.New("conflict")
	ErrUnavailable      = errors.New("service unavailable")
	ErrAuthentication   = errors.New("authentication error")
)

var (
	ErrInvalidID    = fmt.Errorf("%w: invalid id format", ErrInvalidArgument)
	ErrInvalidScore = fmt.Errorf("%w: score must be between 1 and 5", ErrInvalidArgument)
	ErrEmptyPeriod  = fmt.Errorf("%w: period is required", ErrInvalidArgument)
	ErrInvalidType  = fmt.Errorf("%w: unknown evaluation type", ErrInvalidArgument)
	ErrEmptyText    = fmt.Errorf("%w: question text is required", ErrInvalidArgument)

	ErrEvaluationNotFound = fmt.Errorf("evaluation %w", ErrNotFound)
	ErrEmployeeNotFound   = fmt.Errorf("employee %w", ErrNotFound)
	ErrQuestionNotFound   = fmt.Errorf("question %w", ErrNotFound)
	ErrReviewerNotFound   = fmt.Errorf("one or more reviewer ids are invalid: %w", ErrNotFound)

	ErrNotAssignedReviewer = fmt.Errorf("%w: you are not authorized to respond to this evaluation", ErrPermissionDenied)

	ErrEvaluationCompleted = fmt.Errorf("%w: cannot add answers to a completed evaluation", ErrConflict)
	ErrAlreadyCompleted    = fmt.Errorf("%w: evaluation is already completed", ErrConflict)
	ErrEvaluationClosed    = fmt.Errorf("%w: a completed evaluation cannot be modified", ErrConflict)
	ErrAlreadyExists       = fmt.Errorf("%w: already exists", ErrConflict)
	ErrVersionConflict     = fmt.Errorf("%w: evaluation was modified concurrently", ErrConflict)

	// ErrCommitUncertain means the connection failed during COMMIT and the
	// transaction may or may not have been applied. It is never retried.
	ErrCommitUncertain = fmt.Errorf("%w: transaction outcome unknown", ErrUnavailable)
)
