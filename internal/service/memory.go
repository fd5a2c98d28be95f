package service

import (
	"MovieDiary/internal/model"
	"MovieDiary/internal/repo"
	"MovieDiary/internal/textutil"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// topWordsLimit — сколько слов отдаёт top-words.
const topWordsLimit = 10

// MemoryService — записи-воспоминания, их фотографии и текстовая аналитика.
type MemoryService struct {
	memories repo.MemoryRepository
	photos   repo.PhotoRepository
	mediaDir string
	logger   *zap.SugaredLogger
}

func NewMemoryService(memories repo.MemoryRepository, photos repo.PhotoRepository, mediaDir string, logger *zap.SugaredLogger) *MemoryService {
	return &MemoryService{memories: memories, photos: photos, mediaDir: mediaDir, logger: logger}
}

// Create сохраняет новую запись от имени userID.
func (s *MemoryService) Create(ctx context.Context, userID int64, movieID int64, title string, date time.Time, story string) (*model.Memory, error) {
	m := &model.Memory{UserID: userID, MovieID: movieID, Title: title, Date: date, Story: story}
	if err := s.memories.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("create memory: %w", err)
	}
	return m, nil
}

// ListByUser возвращает записи пользователя.
func (s *MemoryService) ListByUser(ctx context.Context, userID int64) ([]model.Memory, error) {
	memories, err := s.memories.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list memories: %w", err)
	}
	return memories, nil
}

// Get возвращает запись по id; отсутствующая — ErrNotFound.
// Чтение не ограничено владельцем, владелец проверяется только на запись.
func (s *MemoryService) Get(ctx context.Context, id int64) (*model.Memory, error) {
	return s.getByID(ctx, id)
}

// Update перезаписывает поля записи. Чужая или отсутствующая — ErrNotFound.
func (s *MemoryService) Update(ctx context.Context, userID, id int64, movieID int64, title string, date time.Time, story string) (*model.Memory, error) {
	m, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	m.MovieID = movieID
	m.Title = title
	m.Date = date
	m.Story = story
	if err := s.memories.Update(ctx, m); err != nil {
		return nil, fmt.Errorf("update memory: %w", err)
	}
	return m, nil
}

// Delete удаляет запись жёстко, фотографии уходят каскадом.
func (s *MemoryService) Delete(ctx context.Context, userID, id int64) error {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.memories.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete memory: %w", err)
	}
	return nil
}

// Photos возвращает фотографии записи.
func (s *MemoryService) Photos(ctx context.Context, memoryID int64) ([]model.Photo, error) {
	if _, err := s.getByID(ctx, memoryID); err != nil {
		return nil, err
	}
	photos, err := s.photos.ListByMemory(ctx, memoryID)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	return photos, nil
}

// AddPhoto кладёт файл в mediaDir под uuid-именем и создаёт строку Photo.
func (s *MemoryService) AddPhoto(ctx context.Context, userID, memoryID int64, data []byte, ext string) (*model.Photo, error) {
	if _, err := s.getOwned(ctx, userID, memoryID); err != nil {
		return nil, err
	}

	name := uuid.NewString() + ext
	if err := os.MkdirAll(s.mediaDir, 0o755); err != nil {
		return nil, fmt.Errorf("add photo: media dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.mediaDir, name), data, 0o644); err != nil {
		return nil, fmt.Errorf("add photo: write file: %w", err)
	}

	p := &model.Photo{MemoryID: memoryID, FileName: name}
	if err := s.photos.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("add photo: create row: %w", err)
	}
	return p, nil
}

// TopWords — самые частые слова по всем story. Полный проход по корпусу
// на каждый вызов, индекса нет.
func (s *MemoryService) TopWords(ctx context.Context) ([]textutil.WordCount, error) {
	stories, err := s.memories.ListAllStories(ctx)
	if err != nil {
		return nil, fmt.Errorf("top words: %w", err)
	}
	return textutil.TopWords(stories, topWordsLimit), nil
}

// ExtractURLs возвращает все ссылки из story одной записи.
func (s *MemoryService) ExtractURLs(ctx context.Context, memoryID int64) ([]string, error) {
	m, err := s.getByID(ctx, memoryID)
	if err != nil {
		return nil, err
	}
	return textutil.ExtractURLs(m.Story), nil
}

func (s *MemoryService) getByID(ctx context.Context, id int64) (*model.Memory, error) {
	m, err := s.memories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get memory: %w", err)
	}
	return m, nil
}

// getOwned достаёт запись и скрывает чужие за ErrNotFound.
func (s *MemoryService) getOwned(ctx context.Context, userID, id int64) (*model.Memory, error) {
	m, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.UserID != userID {
		return nil, ErrNotFound
	}
	return m, nil
}
