package main

import (
	"MovieDiary/internal/config"
	"MovieDiary/internal/loader"
	"MovieDiary/internal/repo"
	"context"
	"flag"
	"os"

	"go.uber.org/zap"
)

// Загрузчик фильмов: единственный позиционный аргумент — путь к JSON-файлу
// с массивом частичных записей.
func main() {
	cfg := config.NewConfig()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	defer func() { _ = logger.Sync() }()

	if flag.NArg() < 1 {
		sugar.Error("usage: loader <movies.json>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	movieRepo := repo.NewMovieRepository(gormDB)
	client := loader.NewClient(cfg.EnrichAPIURL, cfg.EnrichTimeout)
	l := loader.New(movieRepo, client, sugar)

	summary, err := l.LoadFile(context.Background(), path)
	if err != nil {
		sugar.Fatalw("bulk load failed", "error", err)
	}
	sugar.Infow("bulk load finished", "loaded", summary.Loaded, "skipped", summary.Skipped)
}
