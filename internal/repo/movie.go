package repo

import (
	"MovieDiary/internal/model"
	"context"

	"gorm.io/gorm"
)

// RatedMovie — фильм вместе со средней оценкой, результат агрегатных выборок.
type RatedMovie struct {
	model.Movie
	Average float64
}

// MovieRepository — контракт доступа к Movie.
type MovieRepository interface {
	// GetByID возвращает gorm.ErrRecordNotFound, если фильма нет.
	GetByID(ctx context.Context, id int64) (*model.Movie, error)

	ListAll(ctx context.Context) ([]model.Movie, error)

	// Search ищет подстроку без учёта регистра в name или description.
	Search(ctx context.Context, query string) ([]model.Movie, error)

	// AverageRating возвращает среднее по колонке value, 0 при отсутствии оценок.
	AverageRating(ctx context.Context, movieID int64) (float64, error)

	// TopRated возвращает не более limit фильмов по убыванию средней оценки.
	// При равных средних порядок детерминирован: по возрастанию id.
	TopRated(ctx context.Context, limit int) ([]RatedMovie, error)

	// Save атомарно вставляет или заменяет фильм по его id.
	Save(ctx context.Context, movie *model.Movie) error
}

type movieRepo struct {
	db *gorm.DB
}

// NewMovieRepository создаёт реализацию репозитория для Movie.
func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepo{db: db}
}

func (r *movieRepo) GetByID(ctx context.Context, id int64) (*model.Movie, error) {
	var m model.Movie
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *movieRepo) ListAll(ctx context.Context) ([]model.Movie, error) {
	var movies []model.Movie
	if err := r.db.WithContext(ctx).Order("id").Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *movieRepo) Search(ctx context.Context, query string) ([]model.Movie, error) {
	var movies []model.Movie
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern).
		Order("id").
		Find(&movies).Error
	if err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *movieRepo) AverageRating(ctx context.Context, movieID int64) (float64, error) {
	var avg float64
	err := r.db.WithContext(ctx).Model(&model.Rating{}).
		Where("movie_id = ?", movieID).
		Select("COALESCE(AVG(value), 0)").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	return avg, nil
}

func (r *movieRepo) TopRated(ctx context.Context, limit int) ([]RatedMovie, error) {
	var rows []RatedMovie
	err := r.db.WithContext(ctx).Model(&model.Movie{}).
		Select("movies.*, COALESCE(AVG(ratings.value), 0) AS average").
		Joins("LEFT JOIN ratings ON ratings.movie_id = movies.id").
		Group("movies.id").
		Order("average DESC, movies.id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *movieRepo) Save(ctx context.Context, movie *model.Movie) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Save(movie).Error
	})
}
