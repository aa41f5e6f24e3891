package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignupRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     SignupRequest
		wantErr bool
	}{
		{"valid", SignupRequest{Username: "alice", Email: "alice@example.com"}, false},
		{"valid with symbols", SignupRequest{Username: "a.b@c+d-e_f", Email: "x@example.com"}, false},
		{"missing username", SignupRequest{Email: "alice@example.com"}, true},
		{"missing email", SignupRequest{Username: "alice"}, true},
		{"bad email", SignupRequest{Username: "alice", Email: "not-an-email"}, true},
		{"username with space", SignupRequest{Username: "al ice", Email: "alice@example.com"}, true},
		{"reserved me", SignupRequest{Username: "me", Email: "me@example.com"}, true},
		{"reserved ME uppercase", SignupRequest{Username: "ME", Email: "me@example.com"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTokenRequestValidate(t *testing.T) {
	assert.NoError(t, TokenRequest{Username: "alice", ConfirmationCode: "abc"}.Validate())
	assert.Error(t, TokenRequest{Username: "alice"}.Validate())
	assert.Error(t, TokenRequest{ConfirmationCode: "abc"}.Validate())
}

func TestCreateUserRequestValidate(t *testing.T) {
	valid := CreateUserRequest{Username: "bob", Email: "bob@example.com", Role: RoleModerator}
	assert.NoError(t, valid.Validate())

	// Empty role is allowed, the service defaults it.
	noRole := CreateUserRequest{Username: "bob", Email: "bob@example.com"}
	assert.NoError(t, noRole.Validate())

	badRole := CreateUserRequest{Username: "bob", Email: "bob@example.com", Role: "owner"}
	assert.Error(t, badRole.Validate())
}

func TestUpdateUserRequestValidate(t *testing.T) {
	name := "bob"
	assert.NoError(t, UpdateUserRequest{Username: &name}.Validate())

	empty := ""
	assert.Error(t, UpdateUserRequest{Username: &empty}.Validate())

	me := "Me"
	assert.Error(t, UpdateUserRequest{Username: &me}.Validate())

	badRole := Role("owner")
	assert.Error(t, UpdateUserRequest{Role: &badRole}.Validate())

	goodRole := RoleAdmin
	assert.NoError(t, UpdateUserRequest{Role: &goodRole}.Validate())

	// No fields at all is a valid empty patch.
	assert.NoError(t, UpdateUserRequest{}.Validate())
}
