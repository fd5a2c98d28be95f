package repo

import (
	"MovieDiary/internal/model"
	"context"

	"gorm.io/gorm"
)

// StarRepository — контракт доступа к Star.
type StarRepository interface {
	Create(ctx context.Context, s *model.Star) error
}

type starRepo struct {
	db *gorm.DB
}

// NewStarRepository создаёт реализацию репозитория для Star.
func NewStarRepository(db *gorm.DB) StarRepository {
	return &starRepo{db: db}
}

func (r *starRepo) Create(ctx context.Context, s *model.Star) error {
	return r.db.WithContext(ctx).Create(s).Error
}
