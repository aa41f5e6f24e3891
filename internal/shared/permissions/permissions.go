// Package permissions holds the authorization predicates. They are pure
// functions over the actor and the target resource: the caller decides which
// HTTP error a denial becomes.
package permissions

import (
	"mediadb-backend/internal/domains/user/model"
)

// IsAdmin reports whether the user has admin rights, either through the
// admin role or the superuser flag.
func IsAdmin(u *model.User) bool {
	return u.Role == model.RoleAdmin || u.IsSuperuser
}

// IsModerator reports whether the user has the moderator role. Superusers
// are admins, not moderators.
func IsModerator(u *model.User) bool {
	return u.Role == model.RoleModerator
}

// CanModerate reports whether the user may edit or delete content authored
// by authorID: admins, moderators and the author itself.
func CanModerate(u *model.User, authorID int64) bool {
	return IsAdmin(u) || IsModerator(u) || u.ID == authorID
}
