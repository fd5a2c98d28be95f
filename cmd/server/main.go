package main

import (
	"MovieDiary/internal/config"
	"MovieDiary/internal/handlers"
	"MovieDiary/internal/middleware"
	"MovieDiary/internal/repo"
	"MovieDiary/internal/service"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	movieRepo := repo.NewMovieRepository(gormDB)
	ratingRepo := repo.NewRatingRepository(gormDB)
	starRepo := repo.NewStarRepository(gormDB)
	memoryRepo := repo.NewMemoryRepository(gormDB)
	photoRepo := repo.NewPhotoRepository(gormDB)

	userService := service.NewUserService(userRepo)
	movieService := service.NewMovieService(movieRepo, ratingRepo, starRepo, sugar)
	memoryService := service.NewMemoryService(memoryRepo, photoRepo, cfg.MediaDir, sugar)

	h := handlers.NewHandler(userService, movieService, memoryService, sugar, cfg)

	sugar.Infow(
		"Starting server",
		"addr", cfg.RunAddr,
	)

	sugar.Infow("Config",
		"RunAddr", cfg.RunAddr,
		"DatabaseDSN", cfg.DatabaseDSN,
		"MediaDir", cfg.MediaDir,
	)

	if err := http.ListenAndServe(cfg.RunAddr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
