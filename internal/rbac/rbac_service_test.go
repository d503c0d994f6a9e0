package rbac_test

import (
	"errors"
	"testing"

	"go-pms/internal/domain"
	"go-pms/internal/rbac"
	"go-pms/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefaultService(t *testing.T) rbac.Service {
	t.Helper()
	e, err := infra.NewEnforcer("")
	require.NoError(t, err)

	svc, err := rbac.NewService(rbac.NewCSVRepository(infra.DefaultPolicy), e)
	require.NoError(t, err)
	return svc
}

func TestRBACService_DefaultPolicy(t *testing.T) {
	svc := newDefaultService(t)

	tests := []struct {
		role, resource, action string
		want                   bool
	}{
		{"employee", "kpi", "read", true},
		{"employee", "kpi", "propose", true},
		{"employee", "kpi", "create", false},
		{"employee", "kpi", "review", false},
		{"employee", "apar", "update", true},
		{"employee", "employee", "list", false},
		{"admin", "kpi", "analyze", true},
		{"Admin", "employee", "list", true},
		{"admin", "apar", "read", true},
		{"guest", "kpi", "read", false},
	}

	for _, tt := range tests {
		allowed, err := svc.Enforce(domain.EnforceRequest{Role: tt.role, Resource: tt.resource, Action: tt.action})
		require.NoError(t, err)
		assert.Equal(t, tt.want, allowed, "%s %s:%s", tt.role, tt.resource, tt.action)
	}
}

func TestRBACService_PermissionsForRole_IncludesInherited(t *testing.T) {
	svc := newDefaultService(t)

	perms, err := svc.PermissionsForRole("admin")
	require.NoError(t, err)

	assert.Contains(t, perms, domain.PermissionResponse{Role: "admin", Resource: "kpi", Action: "*"})
	assert.Contains(t, perms, domain.PermissionResponse{Role: "employee", Resource: "kpi", Action: "propose"})
}

type stubRepo struct {
	perms []rbac.RolePermissionRow
	err   error
}

func (s *stubRepo) GetRolePermissions() ([]rbac.RolePermissionRow, error)  { return s.perms, s.err }
func (s *stubRepo) GetRoleInheritance() ([]rbac.RoleInheritanceRow, error) { return nil, nil }

func TestRBACService_Reload(t *testing.T) {
	e, err := infra.NewEnforcer("")
	require.NoError(t, err)

	repo := &stubRepo{perms: []rbac.RolePermissionRow{{Role: "employee", Resource: "kpi", Action: "read"}}}
	svc, err := rbac.NewService(repo, e)
	require.NoError(t, err)

	repo.perms = nil
	require.NoError(t, svc.Reload())

	allowed, err := svc.Enforce(domain.EnforceRequest{Role: "employee", Resource: "kpi", Action: "read"})
	require.NoError(t, err)
	assert.False(t, allowed)

	repo.err = errors.New("policy unavailable")
	assert.Error(t, svc.Reload())
}

func TestCSVRepository_RejectsMalformedLines(t *testing.T) {
	repo := rbac.NewCSVRepository([]byte("p, employee, kpi\n"))

	_, err := repo.GetRolePermissions()
	assert.Error(t, err)
}
