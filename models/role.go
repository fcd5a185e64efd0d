// Package models file: models/role.go
package models

// Role is the caller's standing with respect to organizing events,
// computed once per request and threaded through instead of being
// re-derived from existence checks.
type Role string

const (
	RoleParticipant      Role = "participant"
	RolePendingOrganizer Role = "pending_organizer"
	RoleOrganizer        Role = "organizer"
)

// CanOrganize reports whether the role permits creating hackathons.
func (r Role) CanOrganize() bool {
	return r == RoleOrganizer
}
