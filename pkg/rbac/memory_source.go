package rbac

import (
	"context"
	"slices"
	"sync"
)

// inMemRoleSource is a simple RoleSource that serves roles from memory.
// It's thread-safe and makes defensive copies to prevent external modifications.
type inMemRoleSource struct {
	mu    sync.RWMutex
	roles map[Role][]Permission
}

// NewInMemRoleSource creates a new in-memory role source from a map of roles.
// It creates a deep copy of the input to prevent external modifications.
func NewInMemRoleSource(roles map[Role][]Permission) RoleSource {
	rolesCopy := make(map[Role][]Permission, len(roles))
	for role, permissions := range roles {
		rolesCopy[role] = slices.Clone(permissions)
	}

	return &inMemRoleSource{
		roles: rolesCopy,
	}
}

// NewDefaultRoleSource returns a RoleSource serving the static CortexCloud roles.
func NewDefaultRoleSource() RoleSource {
	return NewInMemRoleSource(DefaultRoles())
}

// Load returns the map of roles.
// The returned map is safe to read but should not be modified.
func (s *inMemRoleSource) Load(ctx context.Context) (map[Role][]Permission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// The resolver treats this as read-only, so the internal map is
	// returned directly for performance.
	return s.roles, nil
}
