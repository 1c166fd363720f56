package authorization

import (
	"evaluationservice/internal/errdefs"
	"evaluationservice/internal/model"
)

// grants maps a role to every role it is equal to or above.
var grants = map[model.Role]map[model.Role]struct{}{
	model.RoleAdmin: {
		model.RoleAdmin:    {},
		model.RoleManager:  {},
		model.RoleEmployee: {},
	},
	model.RoleManager: {
		model.RoleManager:  {},
		model.RoleEmployee: {},
	},
	model.RoleEmployee: {
		model.RoleEmployee: {},
	},
}

// HasRoleOrHigher reports whether actual satisfies required.
func HasRoleOrHigher(actual, required model.Role) bool {
	granted, ok := grants[actual]
	if !ok {
		return false
	}
	_, ok = granted[required]
	return ok
}

// Require returns ErrPermissionDenied unless role satisfies required.
func Require(role string, required model.Role) error {
	actual, ok := model.RoleFromString(role)
	if !ok || !HasRoleOrHigher(actual, required) {
		return errdefs.ErrPermissionDenied
	}
	return nil
}
