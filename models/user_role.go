package models

type UserRole string

const (
	UserRoleEmployee UserRole = "EMPLOYEE"
	UserRoleManager  UserRole = "MANAGER"
	UserRoleHR       UserRole = "HR"
	UserRoleIT       UserRole = "IT"
	UserRoleAdmin    UserRole = "ADMIN"
)

var roleHumanName = map[UserRole]string{
	UserRoleEmployee: "Employee",
	UserRoleManager:  "Manager",
	UserRoleHR:       "HR staff",
	UserRoleIT:       "IT staff",
	UserRoleAdmin:    "Administrator",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// Actor is the acting user's session context. It is resolved once from the
// JWT claims and passed explicitly into the workflow handlers.
type Actor struct {
	UserCode      string
	UserName      string
	Email         string
	OrgPositionID string
	Role          UserRole
}
