package data

import (
	"fmt"
	"strings"

	"evaluationservice/internal/model"
)

const evaluationColumns = `
	id, employee_id, period, status, type,
	submitted_at, version, created_at, edited_at
`

func buildEvaluationListQuery(filter *model.RepositoryEvaluationFilter) (string, []any) {
	var where []string
	var args []any
	argIdx := 1

	if filter != nil {
		if filter.Status != nil {
			where = append(where, fmt.Sprintf("status = $%d", argIdx))
			args = append(args, filter.Status.String())
			argIdx++
		}
		if filter.Type != nil {
			where = append(where, fmt.Sprintf("type = $%d", argIdx))
			args = append(args, filter.Type.String())
			argIdx++
		}
		if filter.EmployeeId != nil {
			where = append(where, fmt.Sprintf("employee_id = $%d", argIdx))
			args = append(args, *filter.EmployeeId)
		}
	}

	query := "SELECT" + evaluationColumns + "FROM evaluations"
	if len(where) > 0 {
		query += "\nWHERE " + strings.Join(where, " AND ")
	}
	query += "\nORDER BY created_at, id"
	return query, args
}
