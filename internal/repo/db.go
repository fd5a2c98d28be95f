package repo

import (
	"MovieDiary/internal/model"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// InitDB открывает соединение с БД и прогоняет миграции.
// Пустой DSN — локальный запуск на SQLite (modernc, без cgo).
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	if dsn == "" {
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: "file:moviediary.db?cache=shared"}
	} else {
		dial = postgres.Open(dsn)
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Movie{},
		&model.Rating{},
		&model.Memory{},
		&model.Photo{},
		&model.Star{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
