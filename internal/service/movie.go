package service

import (
	"MovieDiary/internal/model"
	"MovieDiary/internal/repo"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// topRatedLimit — сколько фильмов отдаёт подборка top-rated.
const topRatedLimit = 5

// MovieService — выборки фильмов, агрегаты по оценкам, приём оценок.
type MovieService struct {
	movies  repo.MovieRepository
	ratings repo.RatingRepository
	stars   repo.StarRepository
	logger  *zap.SugaredLogger
}

func NewMovieService(movies repo.MovieRepository, ratings repo.RatingRepository, stars repo.StarRepository, logger *zap.SugaredLogger) *MovieService {
	return &MovieService{movies: movies, ratings: ratings, stars: stars, logger: logger}
}

// MovieDetail — фильм со средней и собственной оценками.
type MovieDetail struct {
	Movie      model.Movie
	Average    float64
	YourRating int
}

// Comparison — строка ответа compare: оценка пользователя против средней.
type Comparison struct {
	MovieID         int64
	Name            string
	Rating          int
	IsUserRatingMax bool
}

// List возвращает все фильмы со средними оценками.
func (s *MovieService) List(ctx context.Context) ([]repo.RatedMovie, error) {
	movies, err := s.movies.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return s.withAverages(ctx, movies)
}

// Search возвращает фильмы с подстрокой query в названии или описании.
func (s *MovieService) Search(ctx context.Context, query string) ([]repo.RatedMovie, error) {
	movies, err := s.movies.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search movies: %w", err)
	}
	return s.withAverages(ctx, movies)
}

func (s *MovieService) withAverages(ctx context.Context, movies []model.Movie) ([]repo.RatedMovie, error) {
	rated := make([]repo.RatedMovie, 0, len(movies))
	for _, m := range movies {
		avg, err := s.movies.AverageRating(ctx, m.ID)
		if err != nil {
			return nil, fmt.Errorf("average rating for movie %d: %w", m.ID, err)
		}
		rated = append(rated, repo.RatedMovie{Movie: m, Average: avg})
	}
	return rated, nil
}

// Detail возвращает карточку фильма. Неизвестный id — ErrNotFound.
// YourRating равен 0, если пользователь фильм не оценивал.
func (s *MovieService) Detail(ctx context.Context, movieID, userID int64) (*MovieDetail, error) {
	m, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("movie detail: %w", err)
	}

	avg, err := s.movies.AverageRating(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("movie detail: average: %w", err)
	}

	yourRating, err := s.ratings.GetValue(ctx, userID, movieID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("movie detail: own rating: %w", err)
	}

	return &MovieDetail{Movie: *m, Average: avg, YourRating: yourRating}, nil
}

// TopRated возвращает не более пяти фильмов по убыванию средней оценки.
func (s *MovieService) TopRated(ctx context.Context) ([]repo.RatedMovie, error) {
	rows, err := s.movies.TopRated(ctx, topRatedLimit)
	if err != nil {
		return nil, fmt.Errorf("top rated: %w", err)
	}
	return rows, nil
}

// Rate валидирует и сохраняет оценку: значение вне [1,10] — ErrInvalidRating,
// неизвестный фильм — ErrNotFound, иначе атомарный upsert по (user, movie).
func (s *MovieService) Rate(ctx context.Context, userID, movieID int64, value int) error {
	if value < 1 || value > 10 {
		return ErrInvalidRating
	}
	if _, err := s.movies.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("rate: lookup movie: %w", err)
	}
	if err := s.ratings.Upsert(ctx, userID, movieID, value); err != nil {
		return fmt.Errorf("rate: upsert: %w", err)
	}
	return nil
}

// AddStar сохраняет «звёздочки» — без проверки диапазона, в отличие от Rate.
func (s *MovieService) AddStar(ctx context.Context, userID, movieID int64, stars int) error {
	if _, err := s.movies.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("star: lookup movie: %w", err)
	}
	if err := s.stars.Create(ctx, &model.Star{UserID: userID, MovieID: movieID, Stars: stars}); err != nil {
		return fmt.Errorf("star: create: %w", err)
	}
	return nil
}

// Compare сравнивает каждую оценку пользователя со средней по фильму.
// Фильм без средней сравнивается с 0.
func (s *MovieService) Compare(ctx context.Context, userID int64) ([]Comparison, error) {
	ratings, err := s.ratings.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("compare: list ratings: %w", err)
	}

	result := make([]Comparison, 0, len(ratings))
	for _, r := range ratings {
		m, err := s.movies.GetByID(ctx, r.MovieID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				s.logger.Warnw("compare: rated movie disappeared", "movie_id", r.MovieID)
				continue
			}
			return nil, fmt.Errorf("compare: lookup movie %d: %w", r.MovieID, err)
		}
		avg, err := s.movies.AverageRating(ctx, r.MovieID)
		if err != nil {
			return nil, fmt.Errorf("compare: average for movie %d: %w", r.MovieID, err)
		}
		result = append(result, Comparison{
			MovieID:         m.ID,
			Name:            m.Name,
			Rating:          r.Value,
			IsUserRatingMax: float64(r.Value) >= avg,
		})
	}
	return result, nil
}
