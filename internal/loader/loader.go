package loader

import (
	"MovieDiary/internal/model"
	"MovieDiary/internal/repo"
	"MovieDiary/internal/validate"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

// PartialMovie — частичная запись фильма из входного файла.
// Все поля опциональны, обязателен только id.
type PartialMovie struct {
	ID          *int64   `json:"id"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	ReleaseDate *string  `json:"release_date"`
	MainCast    *string  `json:"main_cast"`
	Director    *string  `json:"director"`
	Budget      *float64 `json:"budget"`
}

// Loader — батч-загрузка фильмов: файл → обогащение → merge → валидация
// → атомарная запись. Каждая запись независима, ошибка одной не
// останавливает остальные.
type Loader struct {
	movies repo.MovieRepository
	client *Client
	logger *zap.SugaredLogger
}

func New(movies repo.MovieRepository, client *Client, logger *zap.SugaredLogger) *Loader {
	return &Loader{movies: movies, client: client, logger: logger}
}

// Summary — итог прохода по батчу.
type Summary struct {
	Loaded  int
	Skipped int
}

// LoadFile читает JSON-массив частичных записей и загружает их по одной.
// Ошибка возвращается только на уровне файла; пофайловые записи
// складываются в Summary.
func (l *Loader) LoadFile(ctx context.Context, path string) (Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Summary{}, fmt.Errorf("read input file: %w", err)
	}
	var records []PartialMovie
	if err := json.Unmarshal(data, &records); err != nil {
		return Summary{}, fmt.Errorf("parse input file: %w", err)
	}
	return l.Load(ctx, records), nil
}

// Load прогоняет записи по одной. Partial success — нормальный исход.
func (l *Loader) Load(ctx context.Context, records []PartialMovie) Summary {
	var s Summary
	for i, rec := range records {
		if rec.ID == nil {
			l.logger.Warnw("skipping movie entry: missing id", "index", i)
			s.Skipped++
			continue
		}
		if err := l.loadOne(ctx, rec); err != nil {
			l.logger.Errorw("failed to load movie", "movie_id", *rec.ID, "error", err)
			s.Skipped++
			continue
		}
		s.Loaded++
	}
	return s
}

func (l *Loader) loadOne(ctx context.Context, rec PartialMovie) error {
	enr, err := l.client.FetchMovie(ctx, *rec.ID)
	if err != nil {
		return fmt.Errorf("fetch enrichment: %w", err)
	}

	merged := merge(rec, enr)
	movie, err := merged.toMovie()
	if err != nil {
		return err
	}
	if errs := validate.Struct(movie); errs != nil {
		return fmt.Errorf("validation failed: %s", validate.Format(errs))
	}

	// Save оборачивает вставку в транзакцию одной записи
	if err := l.movies.Save(ctx, movie); err != nil {
		return fmt.Errorf("persist: %w", err)
	}
	return nil
}

// merge совмещает запись из файла с данными обогащения,
// при совпадении ключей поля обогащения имеют приоритет.
func merge(rec PartialMovie, enr *Enrichment) PartialMovie {
	out := rec
	if enr.Name != nil {
		out.Name = enr.Name
	}
	if enr.Description != nil {
		out.Description = enr.Description
	}
	if enr.ReleaseDate != "" {
		out.ReleaseDate = &enr.ReleaseDate
	}
	if enr.MainCast != nil {
		cast := strings.Join(enr.MainCast, ", ")
		out.MainCast = &cast
	}
	if enr.Director != nil {
		out.Director = enr.Director
	}
	if enr.Budget != nil {
		out.Budget = enr.Budget
	}
	return out
}

// toMovie собирает модель из заполненных полей.
func (p PartialMovie) toMovie() (*model.Movie, error) {
	m := &model.Movie{ID: *p.ID}
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.ReleaseDate != nil && *p.ReleaseDate != "" {
		d, err := time.Parse(time.DateOnly, *p.ReleaseDate)
		if err != nil {
			return nil, fmt.Errorf("parse release_date %q: %w", *p.ReleaseDate, err)
		}
		m.ReleaseDate = &d
	}
	m.MainCast = p.MainCast
	m.Director = p.Director
	m.Budget = p.Budget
	return m, nil
}
