package model

// Star — параллельный Rating механизм «звёздочек» без валидации диапазона.
type Star struct {
	ID      int64  `gorm:"primaryKey"`
	UserID  int64  `gorm:"not null;index"`
	User    *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	MovieID int64  `gorm:"not null;index"`
	Movie   *Movie `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Stars int `gorm:"not null"`
}
