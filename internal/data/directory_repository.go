package data

import (
	"context"

	"evaluationservice/internal/errdefs"
	"evaluationservice/internal/model"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
)

type EmployeeRepository struct {
	db Querier
}

func NewEmployeeRepository(db Querier) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) GetEmployee(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	query := `
SELECT
	id, name, email, role, position, department,
	start_date, evaluation_ids, created_at
FROM employees
WHERE id = $1
`
	var employee model.Employee
	if err := pgxscan.Get(ctx, r.db, &employee, query, id); err != nil {
		return nil, handleError(err, errdefs.ErrEmployeeNotFound)
	}
	return &employee, nil
}

type UserRepository struct {
	db Querier
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

// GetUsersByIds returns the users that exist among ids. Missing ids are
// silently skipped.
func (r *UserRepository) GetUsersByIds(ctx context.Context, ids []uuid.UUID) ([]*model.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `
SELECT id, username, email, role, created_at
FROM users
WHERE id = ANY($1)
`
	var users []*model.User
	if err := pgxscan.Select(ctx, r.db, &users, query, ids); err != nil {
		return nil, handleError(err, errdefs.ErrReviewerNotFound)
	}
	return users, nil
}
