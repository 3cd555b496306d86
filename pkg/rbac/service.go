package rbac

import (
	"context"
	"slices"

	"github.com/google/uuid"
)

// Resolver answers permission questions for the closed set of roles.
// All checks fail closed: an unknown role holds no permissions.
type Resolver interface {
	// HasPermission reports whether the role's static permission set
	// contains the given permission.
	HasPermission(role Role, permission Permission) bool

	// HasAnyPermission reports whether the role holds at least one of the
	// given permissions. An empty permission list is never satisfied.
	HasAnyPermission(role Role, permissions ...Permission) bool

	// HasAllPermissions reports whether the role holds every one of the
	// given permissions. An empty permission list is vacuously satisfied.
	HasAllPermissions(role Role, permissions ...Permission) bool

	// CanAccessResource reports whether the requesting user may act on a
	// resource. Owners bypass the permission check entirely; everyone else
	// needs the required permission.
	CanAccessResource(role Role, resourceOwnerID, currentUserID uuid.UUID, permission Permission) bool

	// HasPermissionFromContext checks the role stored in the context.
	HasPermissionFromContext(ctx context.Context, permission Permission) bool

	// CanAccessResourceFromContext checks ownership and the role stored in the context.
	CanAccessResourceFromContext(ctx context.Context, resourceOwnerID, currentUserID uuid.UUID, permission Permission) bool

	// VerifyRole returns ErrInvalidRole if the given role does not exist.
	VerifyRole(role Role) error

	// Roles returns all known role names in sorted order.
	Roles() []Role
}

// RoleSource defines the interface for providing role data.
type RoleSource interface {
	// Load returns the full role-to-permission mapping.
	Load(ctx context.Context) (map[Role][]Permission, error)
}

// resolver implements the Resolver interface.
type resolver struct {
	// grants is treated as immutable after initialization, which makes the
	// resolver safe for unlimited concurrent readers without locking.
	grants map[Role]map[Permission]struct{}
	roles  []Role
}

// NewResolver creates a Resolver from the given source. Permission sets are
// precomputed into lookup maps once, so runtime checks are allocation-free.
func NewResolver(ctx context.Context, source RoleSource) (Resolver, error) {
	roles, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}

	if roles == nil {
		roles = make(map[Role][]Permission)
	}

	grants := make(map[Role]map[Permission]struct{}, len(roles))
	names := make([]Role, 0, len(roles))
	for role, permissions := range roles {
		set := make(map[Permission]struct{}, len(permissions))
		for _, p := range permissions {
			set[p] = struct{}{}
		}
		grants[role] = set
		names = append(names, role)
	}
	slices.Sort(names)

	return &resolver{
		grants: grants,
		roles:  names,
	}, nil
}

// HasPermission reports whether the role's permission set contains the permission.
func (r *resolver) HasPermission(role Role, permission Permission) bool {
	set, exists := r.grants[role]
	if !exists {
		return false
	}
	_, ok := set[permission]
	return ok
}

// HasAnyPermission reports whether the role holds at least one of the permissions.
func (r *resolver) HasAnyPermission(role Role, permissions ...Permission) bool {
	set, exists := r.grants[role]
	if !exists {
		return false
	}
	for _, p := range permissions {
		if _, ok := set[p]; ok {
			return true
		}
	}
	return false
}

// HasAllPermissions reports whether the role holds every one of the permissions.
func (r *resolver) HasAllPermissions(role Role, permissions ...Permission) bool {
	set, exists := r.grants[role]
	if !exists {
		return false
	}
	for _, p := range permissions {
		if _, ok := set[p]; !ok {
			return false
		}
	}
	return true
}

// CanAccessResource grants owners direct access and defers to HasPermission otherwise.
func (r *resolver) CanAccessResource(role Role, resourceOwnerID, currentUserID uuid.UUID, permission Permission) bool {
	if resourceOwnerID == currentUserID {
		return true
	}
	return r.HasPermission(role, permission)
}

// HasPermissionFromContext checks the role stored in the context.
func (r *resolver) HasPermissionFromContext(ctx context.Context, permission Permission) bool {
	role, ok := GetRoleFromContext(ctx)
	if !ok {
		return false
	}
	return r.HasPermission(role, permission)
}

// CanAccessResourceFromContext checks ownership and the role stored in the context.
func (r *resolver) CanAccessResourceFromContext(ctx context.Context, resourceOwnerID, currentUserID uuid.UUID, permission Permission) bool {
	if resourceOwnerID == currentUserID {
		return true
	}
	return r.HasPermissionFromContext(ctx, permission)
}

// VerifyRole returns ErrInvalidRole if the given role does not exist.
func (r *resolver) VerifyRole(role Role) error {
	if _, exists := r.grants[role]; !exists {
		return ErrInvalidRole
	}
	return nil
}

// Roles returns all known role names in sorted order.
func (r *resolver) Roles() []Role {
	return r.roles
}
