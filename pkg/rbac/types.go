package rbac

// Role identifies a user's role within CortexCloud.
// The set of roles is closed: permission sets are listed explicitly per role,
// never derived by inheritance, so adding a role cannot silently change
// another role's behavior.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// Permission is an opaque capability tag checked by identity only.
// There is no hierarchy and no wildcard matching: a role either lists a
// permission or it does not.
type Permission string

const (
	PermissionReadOwnData        Permission = "read:own_data"
	PermissionWriteOwnData       Permission = "write:own_data"
	PermissionReadWorkflows      Permission = "read:workflows"
	PermissionWriteWorkflows     Permission = "write:workflows"
	PermissionReadDocuments      Permission = "read:documents"
	PermissionWriteDocuments     Permission = "write:documents"
	PermissionReadAllData        Permission = "read:all_data"
	PermissionManageUsers        Permission = "manage:users"
	PermissionManageBilling      Permission = "manage:billing"
	PermissionManageIntegrations Permission = "manage:integrations"
	PermissionManageAdmins       Permission = "manage:admins"
	PermissionManageSystem       Permission = "manage:system"
)

// DefaultRoles returns the static CortexCloud role-to-permission table.
// Each role's set is complete on its own; admin repeats the user
// permissions rather than inheriting them.
func DefaultRoles() map[Role][]Permission {
	return map[Role][]Permission{
		RoleUser: {
			PermissionReadOwnData,
			PermissionWriteOwnData,
			PermissionReadWorkflows,
			PermissionWriteWorkflows,
			PermissionReadDocuments,
			PermissionWriteDocuments,
		},
		RoleAdmin: {
			PermissionReadOwnData,
			PermissionWriteOwnData,
			PermissionReadWorkflows,
			PermissionWriteWorkflows,
			PermissionReadDocuments,
			PermissionWriteDocuments,
			PermissionReadAllData,
			PermissionManageUsers,
			PermissionManageBilling,
			PermissionManageIntegrations,
		},
		RoleSuperAdmin: {
			PermissionReadOwnData,
			PermissionWriteOwnData,
			PermissionReadWorkflows,
			PermissionWriteWorkflows,
			PermissionReadDocuments,
			PermissionWriteDocuments,
			PermissionReadAllData,
			PermissionManageUsers,
			PermissionManageBilling,
			PermissionManageIntegrations,
			PermissionManageAdmins,
			PermissionManageSystem,
		},
	}
}
