// Package rbac provides role-based access control for CortexCloud.
// It resolves permission checks against static, explicitly listed role
// permission sets.
//
// The package deliberately avoids role inheritance and wildcard matching:
// every role lists its full permission set, so authorization behavior is
// auditable by reading a single table. All checks fail closed: an unknown
// role holds no permissions.
//
// Key concepts:
//
//   - Role: A closed enumeration of roles (user, admin, super_admin)
//   - Permission: An opaque capability tag matched by identity only
//   - Owner bypass: Resource owners skip the permission check entirely
//
// Basic usage:
//
//	source := rbac.NewDefaultRoleSource()
//	resolver, err := rbac.NewResolver(ctx, source)
//	if err != nil {
//	    // Handle configuration error
//	}
//
//	// Check a single permission
//	if !resolver.HasPermission(rbac.RoleAdmin, rbac.PermissionManageBilling) {
//	    // Deny
//	}
//
//	// Owner bypass: owners always access their own resources
//	ok := resolver.CanAccessResource(rbac.RoleUser, ownerID, ownerID, rbac.PermissionReadAllData)
//	// ok == true regardless of the role's permissions
//
//	// Combinators
//	resolver.HasAnyPermission(rbac.RoleUser, rbac.PermissionReadOwnData, rbac.PermissionManageSystem)
//	resolver.HasAllPermissions(rbac.RoleUser) // vacuously true
package rbac
