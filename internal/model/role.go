package model

import "strings"

// Role is resolved once at the authentication boundary and carried as a typed
// value from there on. Handlers never compare raw role strings.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// ParseRole maps a stored/submitted role string to the closed enumeration,
// accepting the localized synonyms found in imported accounts. Unknown values
// default to student, the least privileged role.
func ParseRole(s string) Role {
	switch Role(strings.ToLower(s)) {
	case RoleTeacher, "professor":
		return RoleTeacher
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleStudent
	}
}

// CanManageActivities reports whether the role may create, delete and inspect
// activities. Admin inherits all teacher permissions.
func (r Role) CanManageActivities() bool {
	return r == RoleTeacher || r == RoleAdmin
}

func (r Role) IsStudent() bool {
	return r == RoleStudent
}
