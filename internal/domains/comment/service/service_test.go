package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediadb-backend/internal/domains/comment/model"
	reviewmodel "mediadb-backend/internal/domains/review/model"
	usermodel "mediadb-backend/internal/domains/user/model"
)

type fakeCommentRepo struct {
	comments map[int64]*model.Comment
	nextID   int64
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[int64]*model.Comment{}, nextID: 1}
}

func (f *fakeCommentRepo) Create(_ context.Context, comment *model.Comment) error {
	comment.ID = f.nextID
	f.nextID++
	comment.PubDate = time.Now()
	clone := *comment
	f.comments[comment.ID] = &clone
	return nil
}

func (f *fakeCommentRepo) GetByID(_ context.Context, id int64) (*model.Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, model.ErrCommentNotFound
	}
	clone := *c
	return &clone, nil
}

func (f *fakeCommentRepo) ListByReview(_ context.Context, reviewID int64, _, _ int) ([]*model.Comment, int, error) {
	var out []*model.Comment
	for _, c := range f.comments {
		if c.ReviewID == reviewID {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, len(out), nil
}

func (f *fakeCommentRepo) Update(_ context.Context, comment *model.Comment) error {
	if _, ok := f.comments[comment.ID]; !ok {
		return model.ErrCommentNotFound
	}
	clone := *comment
	f.comments[comment.ID] = &clone
	return nil
}

func (f *fakeCommentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.comments[id]; !ok {
		return model.ErrCommentNotFound
	}
	delete(f.comments, id)
	return nil
}

// fakeReviewRepo serves one fixed review: id 10 on title 1.
type fakeReviewRepo struct{}

func (f *fakeReviewRepo) Create(_ context.Context, _ *reviewmodel.Review) error { return nil }

func (f *fakeReviewRepo) GetByID(_ context.Context, id int64) (*reviewmodel.Review, error) {
	if id != 10 {
		return nil, reviewmodel.ErrReviewNotFound
	}
	return &reviewmodel.Review{ID: 10, TitleID: 1, Author: "alice", AuthorID: 7}, nil
}

func (f *fakeReviewRepo) ListByTitle(_ context.Context, _ int64, _, _ int) ([]*reviewmodel.Review, int, error) {
	return nil, 0, nil
}

func (f *fakeReviewRepo) Exists(_ context.Context, _, _ int64) (bool, error) { return false, nil }

func (f *fakeReviewRepo) Update(_ context.Context, _ *reviewmodel.Review) error { return nil }

func (f *fakeReviewRepo) Delete(_ context.Context, _ int64) error { return nil }

func newTestService() (CommentService, *fakeCommentRepo) {
	repo := newFakeCommentRepo()
	return NewCommentService(repo, &fakeReviewRepo{}), repo
}

func commenter() *usermodel.User {
	return &usermodel.User{ID: 3, Username: "bob", Role: usermodel.RoleUser}
}

func TestCreateComment(t *testing.T) {
	svc, _ := newTestService()

	comment, err := svc.Create(context.Background(), 1, 10, commenter(), &model.CreateCommentRequest{Text: "agreed"})
	require.NoError(t, err)
	assert.Equal(t, "bob", comment.Author)
	assert.Equal(t, int64(10), comment.ReviewID)
	assert.False(t, comment.PubDate.IsZero())
}

func TestCreateCommentUnknownReview(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), 1, 99, commenter(), &model.CreateCommentRequest{Text: "agreed"})
	assert.ErrorIs(t, err, reviewmodel.ErrReviewNotFound)
}

func TestCreateCommentWrongTitle(t *testing.T) {
	svc, _ := newTestService()

	// Review 10 belongs to title 1, not title 2.
	_, err := svc.Create(context.Background(), 2, 10, commenter(), &model.CreateCommentRequest{Text: "agreed"})
	assert.ErrorIs(t, err, reviewmodel.ErrReviewNotFound)
}

func TestGetCommentScopedToReview(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, 10, commenter(), &model.CreateCommentRequest{Text: "agreed"})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, 1, 10, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	// A comment hanging off another review is not found through this one.
	stray := &model.Comment{Text: "x", AuthorID: 4, ReviewID: 11}
	require.NoError(t, repo.Create(ctx, stray))
	_, err = svc.GetByID(ctx, 1, 10, stray.ID)
	assert.ErrorIs(t, err, model.ErrCommentNotFound)
}

func TestUpdateComment(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, 10, commenter(), &model.CreateCommentRequest{Text: "agreed"})
	require.NoError(t, err)

	text := "changed my mind"
	updated, err := svc.Update(ctx, 1, 10, created.ID, &model.UpdateCommentRequest{Text: &text})
	require.NoError(t, err)
	assert.Equal(t, "changed my mind", updated.Text)
}

func TestDeleteComment(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, 10, commenter(), &model.CreateCommentRequest{Text: "agreed"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, 1, 10, created.ID))
	_, err = svc.GetByID(ctx, 1, 10, created.ID)
	assert.ErrorIs(t, err, model.ErrCommentNotFound)
}
