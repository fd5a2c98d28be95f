package service

import (
	"MovieDiary/internal/model"
	"MovieDiary/internal/repo"
	"context"

	"github.com/stretchr/testify/mock"
)

// Minimal mocks

type mockMovieRepo struct{ mock.Mock }

func (m *mockMovieRepo) GetByID(ctx context.Context, id int64) (*model.Movie, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Movie); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockMovieRepo) ListAll(ctx context.Context) ([]model.Movie, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Movie); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockMovieRepo) Search(ctx context.Context, query string) ([]model.Movie, error) {
	args := m.Called(ctx, query)
	if v, ok := args.Get(0).([]model.Movie); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockMovieRepo) AverageRating(ctx context.Context, movieID int64) (float64, error) {
	args := m.Called(ctx, movieID)
	return args.Get(0).(float64), args.Error(1)
}
func (m *mockMovieRepo) TopRated(ctx context.Context, limit int) ([]repo.RatedMovie, error) {
	args := m.Called(ctx, limit)
	if v, ok := args.Get(0).([]repo.RatedMovie); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockMovieRepo) Save(ctx context.Context, movie *model.Movie) error {
	return m.Called(ctx, movie).Error(0)
}

var _ repo.MovieRepository = (*mockMovieRepo)(nil)

type mockRatingRepo struct{ mock.Mock }

func (m *mockRatingRepo) Upsert(ctx context.Context, userID, movieID int64, value int) error {
	return m.Called(ctx, userID, movieID, value).Error(0)
}
func (m *mockRatingRepo) ListByUser(ctx context.Context, userID int64) ([]model.Rating, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.Rating); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockRatingRepo) GetValue(ctx context.Context, userID, movieID int64) (int, error) {
	args := m.Called(ctx, userID, movieID)
	return args.Int(0), args.Error(1)
}

var _ repo.RatingRepository = (*mockRatingRepo)(nil)

type mockStarRepo struct{ mock.Mock }

func (m *mockStarRepo) Create(ctx context.Context, s *model.Star) error {
	return m.Called(ctx, s).Error(0)
}

var _ repo.StarRepository = (*mockStarRepo)(nil)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	args := m.Called(ctx, login)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockMemoryRepo struct{ mock.Mock }

func (m *mockMemoryRepo) Create(ctx context.Context, mem *model.Memory) error {
	return m.Called(ctx, mem).Error(0)
}
func (m *mockMemoryRepo) GetByID(ctx context.Context, id int64) (*model.Memory, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Memory); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockMemoryRepo) ListByUser(ctx context.Context, userID int64) ([]model.Memory, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.Memory); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockMemoryRepo) ListAllStories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]string); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockMemoryRepo) Update(ctx context.Context, mem *model.Memory) error {
	return m.Called(ctx, mem).Error(0)
}
func (m *mockMemoryRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.MemoryRepository = (*mockMemoryRepo)(nil)

type mockPhotoRepo struct{ mock.Mock }

func (m *mockPhotoRepo) Create(ctx context.Context, p *model.Photo) error {
	return m.Called(ctx, p).Error(0)
}
func (m *mockPhotoRepo) ListByMemory(ctx context.Context, memoryID int64) ([]model.Photo, error) {
	args := m.Called(ctx, memoryID)
	if v, ok := args.Get(0).([]model.Photo); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.PhotoRepository = (*mockPhotoRepo)(nil)
