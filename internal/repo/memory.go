package repo

import (
	"MovieDiary/internal/model"
	"context"

	"gorm.io/gorm"
)

// MemoryRepository — контракт доступа к Memory.
type MemoryRepository interface {
	Create(ctx context.Context, m *model.Memory) error

	// GetByID возвращает gorm.ErrRecordNotFound, если записи нет.
	GetByID(ctx context.Context, id int64) (*model.Memory, error)

	ListByUser(ctx context.Context, userID int64) ([]model.Memory, error)

	// ListAllStories возвращает тексты story всех записей (для top-words).
	ListAllStories(ctx context.Context) ([]string, error)

	Update(ctx context.Context, m *model.Memory) error

	// Delete удаляет запись жёстко; фотографии уходят каскадом.
	Delete(ctx context.Context, id int64) error
}

type memoryRepo struct {
	db *gorm.DB
}

// NewMemoryRepository создаёт реализацию репозитория для Memory.
func NewMemoryRepository(db *gorm.DB) MemoryRepository {
	return &memoryRepo{db: db}
}

func (r *memoryRepo) Create(ctx context.Context, m *model.Memory) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *memoryRepo) GetByID(ctx context.Context, id int64) (*model.Memory, error) {
	var m model.Memory
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *memoryRepo) ListByUser(ctx context.Context, userID int64) ([]model.Memory, error) {
	var memories []model.Memory
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&memories).Error
	if err != nil {
		return nil, err
	}
	return memories, nil
}

func (r *memoryRepo) ListAllStories(ctx context.Context) ([]string, error) {
	var stories []string
	err := r.db.WithContext(ctx).Model(&model.Memory{}).
		Order("id").
		Pluck("story", &stories).Error
	if err != nil {
		return nil, err
	}
	return stories, nil
}

func (r *memoryRepo) Update(ctx context.Context, m *model.Memory) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *memoryRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Select("Photos").Delete(&model.Memory{ID: id}).Error
}
