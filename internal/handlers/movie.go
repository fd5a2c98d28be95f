package handlers

import (
	"MovieDiary/internal/repo"
	"MovieDiary/internal/service"
	"MovieDiary/internal/textutil"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// MovieHandler — выборки фильмов и приём оценок.
type MovieHandler struct {
	MovieService *service.MovieService
	Logger       *zap.SugaredLogger
}

func NewMovieHandler(movieService *service.MovieService, logger *zap.SugaredLogger) *MovieHandler {
	return &MovieHandler{MovieService: movieService, Logger: logger}
}

// movieListItem — элемент списков фильмов: описание обрезано по
// границе слова, средняя оценка — сырое частное без округления.
type movieListItem struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	AverageRating float64 `json:"average_rating"`
}

type movieDetailResponse struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	ReleaseDate     *string  `json:"release_date"`
	MainCast        *string  `json:"main_cast"`
	Director        *string  `json:"director"`
	Budget          *float64 `json:"budget"`
	BudgetInEnglish string   `json:"budget_in_english"`
	AverageRating   float64  `json:"average_rating"`
	YourRating      int      `json:"your_rating"`
}

func toListItems(movies []repo.RatedMovie) []movieListItem {
	items := make([]movieListItem, 0, len(movies))
	for _, m := range movies {
		items = append(items, movieListItem{
			ID:            m.ID,
			Name:          m.Name,
			Description:   textutil.Truncate(m.Description, descriptionLimit),
			AverageRating: m.Average,
		})
	}
	return items
}

// List отдаёт все фильмы со средними оценками.
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := userID(r); !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	movies, err := h.MovieService.List(r.Context())
	if err != nil {
		h.Logger.Errorw("List: service error", "error", err)
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, toListItems(movies))
}

// Search ищет подстроку в названии или описании.
func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	if _, ok := userID(r); !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	query := r.URL.Query().Get("q")
	if query == "" {
		errorJSON(w, http.StatusBadRequest, "please provide a search parameter")
		return
	}
	movies, err := h.MovieService.Search(r.Context(), query)
	if err != nil {
		h.Logger.Errorw("Search: service error", "query", query, "error", err)
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, toListItems(movies))
}

// TopRated отдаёт пять фильмов с наибольшей средней оценкой.
func (h *MovieHandler) TopRated(w http.ResponseWriter, r *http.Request) {
	if _, ok := userID(r); !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	movies, err := h.MovieService.TopRated(r.Context())
	if err != nil {
		h.Logger.Errorw("TopRated: service error", "error", err)
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, toListItems(movies))
}

// Detail отдаёт карточку фильма с бюджетом прописью и собственной оценкой.
func (h *MovieHandler) Detail(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	movieID, err := strconv.ParseInt(chi.URLParam(r, "movieID"), 10, 64)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid movie id")
		return
	}

	d, err := h.MovieService.Detail(r.Context(), movieID, uid)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			errorJSON(w, http.StatusNotFound, "movie not found")
			return
		}
		h.Logger.Errorw("Detail: service error", "movie_id", movieID, "error", err)
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}

	var releaseDate *string
	if d.Movie.ReleaseDate != nil {
		s := d.Movie.ReleaseDate.Format(time.DateOnly)
		releaseDate = &s
	}
	writeJSON(w, http.StatusOK, movieDetailResponse{
		ID:              d.Movie.ID,
		Name:            d.Movie.Name,
		Description:     d.Movie.Description,
		ReleaseDate:     releaseDate,
		MainCast:        d.Movie.MainCast,
		Director:        d.Movie.Director,
		Budget:          d.Movie.Budget,
		BudgetInEnglish: formatBudget(d.Movie.Budget),
		AverageRating:   d.Average,
		YourRating:      d.YourRating,
	})
}

type rateRequest struct {
	Rating int `json:"rating"`
}

// Rate принимает оценку фильма: 400 вне [1,10], 404 без фильма, 201 при upsert.
func (h *MovieHandler) Rate(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	movieID, err := strconv.ParseInt(chi.URLParam(r, "movieID"), 10, 64)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid movie id")
		return
	}
	var req rateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := h.MovieService.Rate(r.Context(), uid, movieID, req.Rating); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRating):
			errorJSON(w, http.StatusBadRequest, "invalid rating value, rating must be between 1 and 10")
		case errors.Is(err, service.ErrNotFound):
			errorJSON(w, http.StatusNotFound, "movie not found")
		default:
			h.Logger.Errorw("Rate: service error", "movie_id", movieID, "error", err)
			errorJSON(w, http.StatusInternalServerError, "internal error")
		}
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "movie rated successfully"})
}

type starRequest struct {
	Stars int `json:"stars"`
}

// Star принимает «звёздочки» — диапазон не проверяется в отличие от Rate.
func (h *MovieHandler) Star(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	movieID, err := strconv.ParseInt(chi.URLParam(r, "movieID"), 10, 64)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid movie id")
		return
	}
	var req starRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := h.MovieService.AddStar(r.Context(), uid, movieID, req.Stars); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			errorJSON(w, http.StatusNotFound, "movie not found")
			return
		}
		h.Logger.Errorw("Star: service error", "movie_id", movieID, "error", err)
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "stars saved"})
}

type comparisonItem struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Rating          int    `json:"rating"`
	IsUserRatingMax bool   `json:"is_user_rating_max"`
}

// Compare сравнивает оценки пользователя со средними по каждому фильму.
func (h *MovieHandler) Compare(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	rows, err := h.MovieService.Compare(r.Context(), uid)
	if err != nil {
		h.Logger.Errorw("Compare: service error", "user_id", uid, "error", err)
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}
	items := make([]comparisonItem, 0, len(rows))
	for _, c := range rows {
		items = append(items, comparisonItem{
			ID:              c.MovieID,
			Name:            c.Name,
			Rating:          c.Rating,
			IsUserRatingMax: c.IsUserRatingMax,
		})
	}
	writeJSON(w, http.StatusOK, items)
}
