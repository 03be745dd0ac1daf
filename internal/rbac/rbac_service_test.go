package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestService_AdminHoldsEveryPermission(t *testing.T) {
	svc, err := NewService()
	assert.NoError(t, err)

	for _, p := range policies {
		if p[0] != RoleAdmin {
			continue
		}
		ok, err := svc.Enforce(RoleAdmin, p[1], p[2])
		assert.NoError(t, err)
		assert.True(t, ok, "admin should be allowed %s:%s", p[1], p[2])
	}
}

func TestService_EmployeeRestrictions(t *testing.T) {
	svc, err := NewService()
	assert.NoError(t, err)

	allowed := [][2]string{
		{"employee", "read"},
		{"leave", "read"},
		{"leave", "create"},
		{"attendance", "read"},
		{"attendance", "mark"},
		{"report", "read"},
	}
	for _, p := range allowed {
		ok, err := svc.Enforce(RoleEmployee, p[0], p[1])
		assert.NoError(t, err)
		assert.True(t, ok, "employee should be allowed %s:%s", p[0], p[1])
	}

	denied := [][2]string{
		{"employee", "create"},
		{"employee", "update"},
		{"employee", "delete"},
		{"leave", "decide"},
		{"report", "export"},
	}
	for _, p := range denied {
		ok, err := svc.Enforce(RoleEmployee, p[0], p[1])
		assert.NoError(t, err)
		assert.False(t, ok, "employee should be denied %s:%s", p[0], p[1])
	}
}

func TestService_UnknownRoleDeniedEverywhere(t *testing.T) {
	svc, err := NewService()
	assert.NoError(t, err)

	ok, err := svc.Enforce("guest", "employee", "read")
	assert.NoError(t, err)
	assert.False(t, ok)
}
