package repo

import (
	"MovieDiary/internal/model"
	"context"

	"gorm.io/gorm"
)

// PhotoRepository — контракт доступа к Photo.
type PhotoRepository interface {
	Create(ctx context.Context, p *model.Photo) error
	ListByMemory(ctx context.Context, memoryID int64) ([]model.Photo, error)
}

type photoRepo struct {
	db *gorm.DB
}

// NewPhotoRepository создаёт реализацию репозитория для Photo.
func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepo{db: db}
}

func (r *photoRepo) Create(ctx context.Context, p *model.Photo) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *photoRepo) ListByMemory(ctx context.Context, memoryID int64) ([]model.Photo, error) {
	var photos []model.Photo
	err := r.db.WithContext(ctx).
		Where("memory_id = ?", memoryID).
		Order("id").
		Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}
