package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediadb-backend/internal/domains/user/model"
	"mediadb-backend/pkg/hash"
	"mediadb-backend/pkg/token"
)

// fakeUserRepo is an in-memory UserRepository keyed by id.
type fakeUserRepo struct {
	users  map[int64]*model.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*model.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range f.users {
		if u.Username == user.Username {
			return model.ErrUsernameTaken
		}
		if u.Email == user.Email {
			return model.ErrEmailTaken
		}
	}
	user.ID = f.nextID
	f.nextID++
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (f *fakeUserRepo) List(_ context.Context, limit, offset int) ([]*model.User, int, error) {
	var out []*model.User
	for _, u := range f.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, len(f.users), nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *model.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return model.ErrUserNotFound
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) UpdateConfirmationCode(_ context.Context, id int64, hashedCode string) error {
	u, ok := f.users[id]
	if !ok {
		return model.ErrUserNotFound
	}
	u.ConfirmationCode = hashedCode
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return model.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

// fakeSender records each dispatched code.
type fakeSender struct {
	sent []struct{ to, code string }
}

func (f *fakeSender) SendConfirmationCode(_ context.Context, to, code string) error {
	f.sent = append(f.sent, struct{ to, code string }{to, code})
	return nil
}

func newTestService() (UserService, *fakeUserRepo, *fakeSender) {
	repo := newFakeUserRepo()
	sender := &fakeSender{}
	tokens := token.NewManager(token.Config{Secret: "test-secret", TTL: time.Hour})
	return NewUserService(repo, tokens, sender), repo, sender
}

func TestSignupCreatesUserAndSendsCode(t *testing.T) {
	svc, repo, sender := newTestService()

	resp, err := svc.Signup(context.Background(), model.SignupRequest{
		Username: "alice",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "alice@example.com", resp.Email)

	user, err := repo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, user.Role)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "alice@example.com", sender.sent[0].to)

	// The stored digest must match the dispatched code.
	assert.True(t, hash.VerifyCode(sender.sent[0].code, user.ConfirmationCode))
}

func TestSignupSameAccountRotatesCode(t *testing.T) {
	svc, repo, sender := newTestService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, model.SignupRequest{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)
	first, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, model.SignupRequest{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)
	second, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.NotEqual(t, first.ConfirmationCode, second.ConfirmationCode)
	require.Len(t, sender.sent, 2)
	assert.True(t, hash.VerifyCode(sender.sent[1].code, second.ConfirmationCode))
}

func TestSignupConflicts(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, model.SignupRequest{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, model.SignupRequest{Username: "alice", Email: "other@example.com"})
	assert.ErrorIs(t, err, model.ErrUsernameTaken)

	_, err = svc.Signup(ctx, model.SignupRequest{Username: "bob", Email: "alice@example.com"})
	assert.ErrorIs(t, err, model.ErrEmailTaken)
}

func TestIssueToken(t *testing.T) {
	svc, _, sender := newTestService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, model.SignupRequest{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	resp, err := svc.IssueToken(ctx, model.TokenRequest{
		Username:         "alice",
		ConfirmationCode: sender.sent[0].code,
	})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestIssueTokenRejectsBadCode(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, model.SignupRequest{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)

	_, err = svc.IssueToken(ctx, model.TokenRequest{
		Username:         "alice",
		ConfirmationCode: "wrong-code",
	})
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestIssueTokenUnknownUser(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.IssueToken(context.Background(), model.TokenRequest{
		Username:         "nobody",
		ConfirmationCode: "whatever",
	})
	// Unknown usernames look like bad credentials, not like a 404 probe.
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestCreateDefaultsRole(t *testing.T) {
	svc, _, _ := newTestService()

	user, err := svc.Create(context.Background(), model.CreateUserRequest{
		Username: "bob",
		Email:    "bob@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, user.Role)
}

func TestUpdateProfileIgnoresRole(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, model.CreateUserRequest{
		Username: "bob",
		Email:    "bob@example.com",
	})
	require.NoError(t, err)

	bio := "hello"
	_, err = svc.UpdateProfile(ctx, created.ID, model.UpdateProfileRequest{Bio: &bio})
	require.NoError(t, err)

	user, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, user.Bio)
	assert.Equal(t, "hello", *user.Bio)
	assert.Equal(t, model.RoleUser, user.Role)
}

func TestDeleteByUsername(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, model.CreateUserRequest{
		Username: "bob",
		Email:    "bob@example.com",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "bob"))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, model.ErrUserNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, "bob"), model.ErrUserNotFound)
}
