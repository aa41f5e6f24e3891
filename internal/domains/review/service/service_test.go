package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediadb-backend/internal/domains/review/model"
	titlemodel "mediadb-backend/internal/domains/title/model"
	usermodel "mediadb-backend/internal/domains/user/model"
)

// =====================================================
// FAKES
// =====================================================

type fakeReviewRepo struct {
	reviews map[int64]*model.Review
	nextID  int64
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[int64]*model.Review{}, nextID: 1}
}

func (f *fakeReviewRepo) Create(_ context.Context, review *model.Review) error {
	for _, r := range f.reviews {
		if r.AuthorID == review.AuthorID && r.TitleID == review.TitleID {
			return model.ErrAlreadyReviewed
		}
	}
	review.ID = f.nextID
	f.nextID++
	review.PubDate = time.Now()
	clone := *review
	f.reviews[review.ID] = &clone
	return nil
}

func (f *fakeReviewRepo) GetByID(_ context.Context, id int64) (*model.Review, error) {
	r, ok := f.reviews[id]
	if !ok {
		return nil, model.ErrReviewNotFound
	}
	clone := *r
	return &clone, nil
}

func (f *fakeReviewRepo) ListByTitle(_ context.Context, titleID int64, _, _ int) ([]*model.Review, int, error) {
	var out []*model.Review
	for _, r := range f.reviews {
		if r.TitleID == titleID {
			clone := *r
			out = append(out, &clone)
		}
	}
	return out, len(out), nil
}

func (f *fakeReviewRepo) Exists(_ context.Context, authorID, titleID int64) (bool, error) {
	for _, r := range f.reviews {
		if r.AuthorID == authorID && r.TitleID == titleID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReviewRepo) Update(_ context.Context, review *model.Review) error {
	if _, ok := f.reviews[review.ID]; !ok {
		return model.ErrReviewNotFound
	}
	clone := *review
	f.reviews[review.ID] = &clone
	return nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.reviews[id]; !ok {
		return model.ErrReviewNotFound
	}
	delete(f.reviews, id)
	return nil
}

type fakeTitleRepo struct {
	titles map[int64]*titlemodel.Title
}

func (f *fakeTitleRepo) Create(_ context.Context, _ *titlemodel.Title, _ []int64) error { return nil }

func (f *fakeTitleRepo) GetByID(_ context.Context, id int64) (*titlemodel.Title, error) {
	t, ok := f.titles[id]
	if !ok {
		return nil, titlemodel.ErrTitleNotFound
	}
	return t, nil
}

func (f *fakeTitleRepo) List(_ context.Context, _ titlemodel.Filter, _, _ int) ([]*titlemodel.Title, int, error) {
	return nil, 0, nil
}

func (f *fakeTitleRepo) Update(_ context.Context, _ *titlemodel.Title, _ []int64, _ bool) error {
	return nil
}

func (f *fakeTitleRepo) Delete(_ context.Context, _ int64) error { return nil }

// memoryCache tracks keys so invalidation can be asserted.
type memoryCache struct {
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = raw
	return nil
}

func (m *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(m.entries, key)
	}
	return nil
}

func (m *memoryCache) Ping(_ context.Context) error { return nil }

func newTestService(c *memoryCache) (ReviewService, *fakeReviewRepo) {
	repo := newFakeReviewRepo()
	titles := &fakeTitleRepo{titles: map[int64]*titlemodel.Title{
		1: {ID: 1, Name: "Some Film", Year: 2000},
	}}

	var svc ReviewService
	if c != nil {
		svc = NewReviewService(repo, titles, c)
	} else {
		svc = NewReviewService(repo, titles, nil)
	}
	return svc, repo
}

func author() *usermodel.User {
	return &usermodel.User{ID: 7, Username: "alice", Role: usermodel.RoleUser}
}

// =====================================================
// TESTS
// =====================================================

func TestCreateReview(t *testing.T) {
	svc, _ := newTestService(nil)

	review, err := svc.Create(context.Background(), 1, author(), &model.CreateReviewRequest{
		Text:  "great",
		Score: 9,
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", review.Author)
	assert.Equal(t, int64(1), review.TitleID)
	assert.False(t, review.PubDate.IsZero())
}

func TestCreateReviewUnknownTitle(t *testing.T) {
	svc, _ := newTestService(nil)

	_, err := svc.Create(context.Background(), 99, author(), &model.CreateReviewRequest{
		Text:  "great",
		Score: 9,
	})
	assert.ErrorIs(t, err, titlemodel.ErrTitleNotFound)
}

func TestCreateReviewTwiceConflicts(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, author(), &model.CreateReviewRequest{Text: "great", Score: 9})
	require.NoError(t, err)

	_, err = svc.Create(ctx, 1, author(), &model.CreateReviewRequest{Text: "again", Score: 5})
	assert.ErrorIs(t, err, model.ErrAlreadyReviewed)
}

func TestCreateReviewInvalidatesRating(t *testing.T) {
	c := newMemoryCache()
	svc, _ := newTestService(c)
	ctx := context.Background()

	key := titlemodel.CacheKey(1)
	require.NoError(t, c.Set(ctx, key, titlemodel.Title{ID: 1}, time.Minute))

	_, err := svc.Create(ctx, 1, author(), &model.CreateReviewRequest{Text: "great", Score: 9})
	require.NoError(t, err)
	assert.NotContains(t, c.entries, key)
}

func TestGetReviewScopedToTitle(t *testing.T) {
	svc, repo := newTestService(nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, author(), &model.CreateReviewRequest{Text: "great", Score: 9})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, 1, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	// The same review addressed through another title is not found.
	stray := &model.Review{Text: "x", Score: 1, AuthorID: 8, TitleID: 2}
	require.NoError(t, repo.Create(ctx, stray))
	_, err = svc.GetByID(ctx, 1, stray.ID)
	assert.ErrorIs(t, err, model.ErrReviewNotFound)
}

func TestUpdateReview(t *testing.T) {
	c := newMemoryCache()
	svc, _ := newTestService(c)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, author(), &model.CreateReviewRequest{Text: "great", Score: 9})
	require.NoError(t, err)

	key := titlemodel.CacheKey(1)
	require.NoError(t, c.Set(ctx, key, titlemodel.Title{ID: 1}, time.Minute))

	score := 4
	updated, err := svc.Update(ctx, 1, created.ID, &model.UpdateReviewRequest{Score: &score})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Score)
	assert.Equal(t, "great", updated.Text)
	assert.NotContains(t, c.entries, key)
}

func TestDeleteReview(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, author(), &model.CreateReviewRequest{Text: "great", Score: 9})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, 1, created.ID))

	_, err = svc.GetByID(ctx, 1, created.ID)
	assert.ErrorIs(t, err, model.ErrReviewNotFound)
}
