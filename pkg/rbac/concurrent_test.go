package rbac_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortexcloud/entitlements/pkg/rbac"
)

// The resolver is immutable after construction, so unlimited concurrent
// readers must observe consistent answers without synchronization.
func TestResolver_ConcurrentReads(t *testing.T) {
	t.Parallel()

	resolver, err := rbac.NewResolver(context.Background(), rbac.NewDefaultRoleSource())
	require.NoError(t, err)

	const goroutines = 50
	const iterations = 200

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for range goroutines {
		go func() {
			defer wg.Done()
			for range iterations {
				assert.True(t, resolver.HasPermission(rbac.RoleSuperAdmin, rbac.PermissionManageSystem))
				assert.False(t, resolver.HasPermission(rbac.RoleUser, rbac.PermissionManageSystem))
				assert.True(t, resolver.HasAllPermissions(rbac.RoleAdmin,
					rbac.PermissionManageUsers, rbac.PermissionManageBilling))
				assert.False(t, resolver.HasAnyPermission(rbac.Role("ghost"), rbac.PermissionReadOwnData))
			}
		}()
	}

	wg.Wait()
}
