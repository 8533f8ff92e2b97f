package erpadmin

import (
	"github.com/cccteam/ccc/accesstypes"
	"github.com/wasteworks/erpadmin/gateway"
)

// PermissionSet is a membership-tested set of permission codes.
type PermissionSet map[accesstypes.Permission]struct{}

// NewPermissionSet builds a set from the permission list a backend
// payload carries.
func NewPermissionSet(permissions []accesstypes.Permission) PermissionSet {
	set := make(PermissionSet, len(permissions))
	for _, p := range permissions {
		set[p] = struct{}{}
	}

	return set
}

// Has reports whether the set contains permission.
func (s PermissionSet) Has(permission accesstypes.Permission) bool {
	_, ok := s[permission]

	return ok
}

// HasPermission reports whether the current user holds permission. The
// super_admin role passes every check; with no authenticated user every
// check fails.
func (m *Manager) HasPermission(permission accesstypes.Permission) bool {
	auth, ok := m.State().(Authenticated)
	if !ok {
		return false
	}
	if auth.User.Role == gateway.RoleSuperAdmin {
		return true
	}

	return auth.Permissions.Has(permission)
}

// HasAnyPermission reports whether the current user holds at least one
// of permissions. False when permissions is empty, except for
// super_admin, who passes unconditionally.
func (m *Manager) HasAnyPermission(permissions ...accesstypes.Permission) bool {
	auth, ok := m.State().(Authenticated)
	if !ok {
		return false
	}
	if auth.User.Role == gateway.RoleSuperAdmin {
		return true
	}

	for _, p := range permissions {
		if auth.Permissions.Has(p) {
			return true
		}
	}

	return false
}

// HasRole reports whether the current user's role is exactly role. No
// super_admin bypass here, a role check asks about the role itself.
func (m *Manager) HasRole(role accesstypes.Role) bool {
	auth, ok := m.State().(Authenticated)
	if !ok {
		return false
	}

	return auth.User.Role == role
}
