package model

// Role is the authorization role stored on a user row.
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// User represents an account in the catalog.
type User struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Bio       *string `json:"bio"`
	Role      Role    `json:"role"`

	// IsSuperuser grants admin rights regardless of role.
	IsSuperuser bool `json:"is_superuser"`

	// ConfirmationCode holds the bcrypt digest of the one-time signup code.
	// Never serialized.
	ConfirmationCode string `json:"-"`
}
