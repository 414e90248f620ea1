package model

// Role is the closed set of account roles
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleStandard Role = "standard"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStandard:
		return true
	}
	return false
}
