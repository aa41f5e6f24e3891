package model

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var usernameRegex = regexp.MustCompile(`^[\w.@+-]+$`)

// "me" is reserved for the self-service endpoint /users/me.
func usernameNotMe(value interface{}) error {
	username, _ := value.(string)
	if strings.EqualFold(username, "me") {
		return validation.NewError("validation_username_me", "username cannot be 'me'")
	}
	return nil
}

func usernameRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("username is required"),
		validation.Length(1, 150),
		validation.Match(usernameRegex).Error("username may only contain letters, digits and @/./+/-/_"),
		validation.By(usernameNotMe),
	}
}

func emailRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("email is required"),
		validation.Length(5, 254),
		is.Email.Error("invalid email format"),
	}
}

// ========================================
// AUTH DTOs
// ========================================

// SignupRequest creates an account (or re-issues a confirmation code for an
// existing one).
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (r SignupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, usernameRules()...),
		validation.Field(&r.Email, emailRules()...),
	)
}

// TokenRequest exchanges a confirmation code for an access token.
type TokenRequest struct {
	Username         string `json:"username"`
	ConfirmationCode string `json:"confirmation_code"`
}

func (r TokenRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, usernameRules()...),
		validation.Field(&r.ConfirmationCode, validation.Required.Error("confirmation_code is required")),
	)
}

// TokenResponse is the body returned by POST /auth/token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ========================================
// ADMIN / PROFILE DTOs
// ========================================

// CreateUserRequest is the admin-side user creation body.
type CreateUserRequest struct {
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Bio       *string `json:"bio"`
	Role      Role    `json:"role"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, usernameRules()...),
		validation.Field(&r.Email, emailRules()...),
		validation.Field(&r.Role, validation.In(RoleUser, RoleModerator, RoleAdmin).Error("unknown role")),
	)
}

// UpdateUserRequest is the admin-side partial update body. Nil fields are
// left unchanged.
type UpdateUserRequest struct {
	Username  *string `json:"username"`
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Bio       *string `json:"bio"`
	Role      *Role   `json:"role"`
}

func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.NilOrNotEmpty,
			validation.Length(1, 150),
			validation.Match(usernameRegex).Error("username may only contain letters, digits and @/./+/-/_"),
			validation.By(func(v interface{}) error {
				if p, _ := v.(*string); p != nil {
					return usernameNotMe(*p)
				}
				return nil
			})),
		validation.Field(&r.Email, validation.NilOrNotEmpty, validation.Length(5, 254), is.Email),
		validation.Field(&r.Role, validation.By(func(v interface{}) error {
			if p, _ := v.(*Role); p != nil && !p.Valid() {
				return validation.NewError("validation_role", "unknown role")
			}
			return nil
		})),
	)
}

// UpdateProfileRequest is the self-service body for PATCH /users/me.
// Role is deliberately absent: it is immutable via this path.
type UpdateProfileRequest struct {
	Username  *string `json:"username"`
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Bio       *string `json:"bio"`
}

func (r UpdateProfileRequest) Validate() error {
	return UpdateUserRequest{
		Username:  r.Username,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Bio:       r.Bio,
	}.Validate()
}

// SignupResponse echoes the identity the code was issued for.
type SignupResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
