package rbac

import "errors"

// Domain errors for RBAC operations.
var (
	// ErrInvalidRole is returned when a role does not exist.
	ErrInvalidRole = errors.New("rbac.invalid_role")

	// ErrRoleNotInContext is returned when no role is found in the context.
	ErrRoleNotInContext = errors.New("rbac.role_not_in_context")
)
