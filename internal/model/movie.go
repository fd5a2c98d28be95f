package model

import "time"

// Movie — карточка фильма. Опциональные поля заполняются загрузчиком
// из внешнего API и могут отсутствовать.
type Movie struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null;size:255" json:"name" validate:"required,max=255"`
	Description string `gorm:"not null;type:text" json:"description" validate:"required"`

	ReleaseDate *time.Time `json:"release_date,omitempty"`
	MainCast    *string    `gorm:"size:255" json:"main_cast,omitempty" validate:"omitempty,max=255"`
	Director    *string    `gorm:"size:255" json:"director,omitempty" validate:"omitempty,max=255"`
	Budget      *float64   `json:"budget,omitempty" validate:"omitempty,gte=0"`
}
