package rbac

import (
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// The dashboard has exactly two fixed roles, so the model and policy live
// in code rather than behind a policy store.
const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// policies is the full permission table. Admin holds every permission;
// the employee role is read-mostly plus its own apply/mark mutations.
var policies = [][]string{
	{RoleAdmin, "employee", "read"},
	{RoleAdmin, "employee", "create"},
	{RoleAdmin, "employee", "update"},
	{RoleAdmin, "employee", "delete"},
	{RoleAdmin, "leave", "read"},
	{RoleAdmin, "leave", "create"},
	{RoleAdmin, "leave", "decide"},
	{RoleAdmin, "attendance", "read"},
	{RoleAdmin, "attendance", "mark"},
	{RoleAdmin, "report", "read"},
	{RoleAdmin, "report", "export"},

	{RoleEmployee, "employee", "read"},
	{RoleEmployee, "leave", "read"},
	{RoleEmployee, "leave", "create"},
	{RoleEmployee, "attendance", "read"},
	{RoleEmployee, "attendance", "mark"},
	{RoleEmployee, "report", "read"},
}

type Service interface {
	Enforce(role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
}

func NewService() (Service, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	if _, err := enforcer.AddPolicies(policies); err != nil {
		return nil, err
	}

	return &service{enforcer: enforcer}, nil
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.enforcer.Enforce(role, resource, action)
}
