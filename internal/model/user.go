package model

import "time"

// User — учётная запись. Password хранится как bcrypt-хеш.
type User struct {
	ID       int64  `gorm:"primaryKey"`
	Login    string `gorm:"not null;uniqueIndex"`
	Password string `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
