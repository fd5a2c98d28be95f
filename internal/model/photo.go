package model

// Photo — фотография, привязанная к записи Memory.
// FileName — ключ объекта в каталоге MediaDir.
type Photo struct {
	ID       int64   `gorm:"primaryKey" json:"id"`
	MemoryID int64   `gorm:"not null;index" json:"memory_id"`
	Memory   *Memory `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	FileName string `gorm:"not null;size:255" json:"file_name"`
}
