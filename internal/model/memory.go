package model

import "time"

// Memory — дневниковая запись пользователя о фильме.
// Удаление жёсткое; фотографии удаляются каскадом.
type Memory struct {
	ID      int64  `gorm:"primaryKey" json:"id"`
	UserID  int64  `gorm:"not null;index" json:"-"`
	User    *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MovieID int64  `gorm:"not null;index" json:"movie_id" validate:"required"`
	Movie   *Movie `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Title string    `gorm:"not null;size:255" json:"title" validate:"required,max=255"`
	Date  time.Time `gorm:"not null" json:"date"`
	Story string    `gorm:"type:text" json:"story"`

	Photos []Photo `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"photos,omitempty"`
}
