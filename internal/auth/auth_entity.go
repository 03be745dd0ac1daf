package auth

import "go-hrms/internal/rbac"

// Identity is the authenticated user. Exactly two demo accounts exist;
// there is no user registration surface.
type Identity struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"` // rbac.RoleAdmin | rbac.RoleEmployee
	Avatar string `json:"avatar"`
}

// account pairs an identity with its credential hash.
type account struct {
	Identity
	passwordHash []byte
}

// demoAccounts lists the fixed credential pairs. The plaintext passwords
// here are demo fixtures by design; they are hashed at seed time and the
// service only ever compares against the hash.
var demoAccounts = []struct {
	Identity Identity
	Password string
}{
	{
		Identity: Identity{
			ID:     1,
			Name:   "Admin User",
			Email:  "admin@example.com",
			Role:   rbac.RoleAdmin,
			Avatar: "/placeholder.svg?height=40&width=40",
		},
		Password: "admin123",
	},
	{
		Identity: Identity{
			ID:     2,
			Name:   "Employee User",
			Email:  "employee@example.com",
			Role:   rbac.RoleEmployee,
			Avatar: "/placeholder.svg?height=40&width=40",
		},
		Password: "employee123",
	},
}
