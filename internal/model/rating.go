package model

// Rating — оценка фильма пользователем, целое в [1,10].
// Уникальный индекс (user_id, movie_id) гарантирует не более одной
// строки на пару и делает upsert атомарным.
type Rating struct {
	ID      int64  `gorm:"primaryKey"`
	UserID  int64  `gorm:"not null;uniqueIndex:uniq_user_movie"`
	User    *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	MovieID int64  `gorm:"not null;uniqueIndex:uniq_user_movie"`
	Movie   *Movie `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	// Каноническая колонка значения — value; в JSON поле называется rating.
	Value int `gorm:"not null;check:value >= 1 AND value <= 10"`
}
