package erpadmin

import (
	"testing"

	"github.com/cccteam/ccc/accesstypes"
	"github.com/wasteworks/erpadmin/gateway"
	"github.com/wasteworks/erpadmin/tokenstore"
)

func managerInState(state State) *Manager {
	m := New(nil, &tokenstore.Memory{})
	m.state = state

	return m
}

func TestManager_HasPermission(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		state      State
		permission accesstypes.Permission
		want       bool
	}{
		{
			name:       "no user fails every check",
			state:      Anonymous{},
			permission: "clients.view",
			want:       false,
		},
		{
			name:       "unsettled session fails every check",
			state:      Unknown{},
			permission: "clients.view",
			want:       false,
		},
		{
			name: "member permission passes",
			state: Authenticated{
				User:        gateway.User{ID: "u1", Role: "operator"},
				Permissions: PermissionSet{"clients.view": {}},
			},
			permission: "clients.view",
			want:       true,
		},
		{
			name: "non-member permission fails",
			state: Authenticated{
				User:        gateway.User{ID: "u1", Role: "operator"},
				Permissions: PermissionSet{"clients.view": {}},
			},
			permission: "clients.edit",
			want:       false,
		},
		{
			name: "super_admin passes arbitrary codes",
			state: Authenticated{
				User: gateway.User{ID: "u1", Role: gateway.RoleSuperAdmin},
			},
			permission: "anything.at.all",
			want:       true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := managerInState(tt.state)
			if got := m.HasPermission(tt.permission); got != tt.want {
				t.Errorf("Manager.HasPermission() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestManager_HasAnyPermission(t *testing.T) {
	t.Parallel()

	operator := Authenticated{
		User:        gateway.User{ID: "u1", Role: "operator"},
		Permissions: PermissionSet{"invoices.view": {}},
	}

	tests := []struct {
		name        string
		state       State
		permissions []accesstypes.Permission
		want        bool
	}{
		{
			name:        "one member among several passes",
			state:       operator,
			permissions: []accesstypes.Permission{"invoices.edit", "invoices.view"},
			want:        true,
		},
		{
			name:        "no members fails",
			state:       operator,
			permissions: []accesstypes.Permission{"invoices.edit", "invoices.delete"},
			want:        false,
		},
		{
			name:  "empty list fails for a regular user",
			state: operator,
			want:  false,
		},
		{
			name: "super_admin passes even an empty list",
			state: Authenticated{
				User: gateway.User{ID: "u1", Role: gateway.RoleSuperAdmin},
			},
			want: true,
		},
		{
			name:        "no user fails",
			state:       Anonymous{},
			permissions: []accesstypes.Permission{"invoices.view"},
			want:        false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := managerInState(tt.state)
			if got := m.HasAnyPermission(tt.permissions...); got != tt.want {
				t.Errorf("Manager.HasAnyPermission() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestManager_HasRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		state State
		role  accesstypes.Role
		want  bool
	}{
		{
			name:  "exact role matches",
			state: Authenticated{User: gateway.User{ID: "u1", Role: "accountant"}},
			role:  "accountant",
			want:  true,
		},
		{
			name:  "different role does not match",
			state: Authenticated{User: gateway.User{ID: "u1", Role: "accountant"}},
			role:  "admin",
			want:  false,
		},
		{
			name:  "super_admin does not stand in for other roles",
			state: Authenticated{User: gateway.User{ID: "u1", Role: gateway.RoleSuperAdmin}},
			role:  "admin",
			want:  false,
		},
		{
			name:  "no user fails",
			state: Anonymous{},
			role:  "admin",
			want:  false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := managerInState(tt.state)
			if got := m.HasRole(tt.role); got != tt.want {
				t.Errorf("Manager.HasRole() = %v, want %v", got, tt.want)
			}
		})
	}
}
