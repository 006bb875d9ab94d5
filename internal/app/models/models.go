package models

// Role is the single role a user account holds
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleAlumni  Role = "alumni"
	RoleStudent Role = "student"
)

// IsValid reports whether r is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleAlumni, RoleStudent:
		return true
	}
	return false
}

// SelfRegistrable reports whether accounts with this role may sign themselves up.
// Admins are provisioned out of band.
func (r Role) SelfRegistrable() bool {
	return r == RoleAlumni || r == RoleStudent
}

// RequiresApproval reports whether new accounts with this role start unapproved
func (r Role) RequiresApproval() bool {
	return r == RoleAlumni
}
