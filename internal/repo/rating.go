package repo

import (
	"MovieDiary/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RatingRepository — контракт доступа к Rating.
type RatingRepository interface {
	// Upsert вставляет оценку или заменяет значение существующей
	// для пары (user_id, movie_id). Атомарность обеспечивает
	// уникальный индекс uniq_user_movie плюс ON CONFLICT DO UPDATE.
	Upsert(ctx context.Context, userID, movieID int64, value int) error

	// ListByUser возвращает оценки пользователя в порядке их id.
	ListByUser(ctx context.Context, userID int64) ([]model.Rating, error)

	// GetValue возвращает оценку пользователя для фильма,
	// gorm.ErrRecordNotFound — если её нет.
	GetValue(ctx context.Context, userID, movieID int64) (int, error)
}

type ratingRepo struct {
	db *gorm.DB
}

// NewRatingRepository создаёт реализацию репозитория для Rating.
func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepo{db: db}
}

func (r *ratingRepo) Upsert(ctx context.Context, userID, movieID int64, value int) error {
	rating := &model.Rating{UserID: userID, MovieID: movieID, Value: value}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "movie_id"}},
		DoUpdates: clause.Assignments(map[string]any{"value": value}),
	}).Create(rating).Error
}

func (r *ratingRepo) ListByUser(ctx context.Context, userID int64) ([]model.Rating, error) {
	var ratings []model.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *ratingRepo) GetValue(ctx context.Context, userID, movieID int64) (int, error) {
	var rating model.Rating
	err := r.db.WithContext(ctx).
		First(&rating, "user_id = ? AND movie_id = ?", userID, movieID).Error
	if err != nil {
		return 0, err
	}
	return rating.Value, nil
}
