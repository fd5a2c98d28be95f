package handlers

import (
	"MovieDiary/internal/config"
	"MovieDiary/internal/middleware"
	"MovieDiary/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	movieService *service.MovieService,
	memoryService *service.MemoryService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	movieHandler := NewMovieHandler(movieService, logger)
	memoryHandler := NewMemoryHandler(memoryService, logger)

	// User routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)

	// Movie routes
	r.Get("/api/movies", movieHandler.List)
	r.Get("/api/movies/top", movieHandler.TopRated)
	r.Get("/api/movies/search", movieHandler.Search)
	r.Get("/api/movies/compare", movieHandler.Compare)
	r.Get("/api/movies/{movieID}", movieHandler.Detail)
	r.Post("/api/movies/{movieID}/rate", movieHandler.Rate)
	r.Post("/api/movies/{movieID}/star", movieHandler.Star)

	// Memory routes
	r.Get("/api/memories", memoryHandler.List)
	r.Post("/api/memories", memoryHandler.Create)
	r.Get("/api/memories/top-words", memoryHandler.TopWords)
	r.Get("/api/memories/{memoryID}", memoryHandler.Detail)
	r.Put("/api/memories/{memoryID}", memoryHandler.Update)
	r.Delete("/api/memories/{memoryID}", memoryHandler.Delete)
	r.Get("/api/memories/{memoryID}/photos", memoryHandler.Photos)
	r.Post("/api/memories/{memoryID}/photos", memoryHandler.UploadPhoto)
	r.Get("/api/memories/{memoryID}/urls", memoryHandler.ExtractURLs)

	return &Handler{Router: r}
}
