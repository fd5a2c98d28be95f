package handlers

import (
	"MovieDiary/internal/model"
	"MovieDiary/internal/service"
	"MovieDiary/internal/validate"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxPhotoSize — предел одного загружаемого файла.
const maxPhotoSize = 10 << 20

// MemoryHandler — записи-воспоминания, фотографии, текстовая аналитика.
type MemoryHandler struct {
	MemoryService *service.MemoryService
	Logger        *zap.SugaredLogger
}

func NewMemoryHandler(memoryService *service.MemoryService, logger *zap.SugaredLogger) *MemoryHandler {
	return &MemoryHandler{MemoryService: memoryService, Logger: logger}
}

type memoryRequest struct {
	MovieID int64  `json:"movie_id" validate:"required"`
	Title   string `json:"title" validate:"required,max=255"`
	Date    string `json:"date" validate:"required"`
	Story   string `json:"story"`
}

type memoryResponse struct {
	ID      int64  `json:"id"`
	MovieID int64  `json:"movie_id"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Story   string `json:"story"`
}

func toMemoryResponse(m *model.Memory) memoryResponse {
	return memoryResponse{
		ID:      m.ID,
		MovieID: m.MovieID,
		Title:   m.Title,
		Date:    m.Date.Format(time.DateOnly),
		Story:   m.Story,
	}
}

func (h *MemoryHandler) decodeMemory(w http.ResponseWriter, r *http.Request) (*memoryRequest, time.Time, bool) {
	var req memoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request")
		return nil, time.Time{}, false
	}
	if errs := validate.Struct(req); errs != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
		return nil, time.Time{}, false
	}
	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return nil, time.Time{}, false
	}
	return &req, date, true
}

// Create сохраняет новую запись текущего пользователя.
func (h *MemoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	req, date, ok := h.decodeMemory(w, r)
	if !ok {
		return
	}

	m, err := h.MemoryService.Create(r.Context(), uid, req.MovieID, req.Title, date, req.Story)
	if err != nil {
		h.Logger.Errorw("CreateMemory: service error", "error", err)
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, toMemoryResponse(m))
}

// List отдаёт записи текущего пользователя.
func (h *MemoryHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	memories, err := h.MemoryService.ListByUser(r.Context(), uid)
	if err != nil {
		h.Logger.Errorw("ListMemories: service error", "user_id", uid, "error", err)
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}
	items := make([]memoryResponse, 0, len(memories))
	for i := range memories {
		items = append(items, toMemoryResponse(&memories[i]))
	}
	writeJSON(w, http.StatusOK, items)
}

func memoryIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "memoryID"), 10, 64)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid memory id")
		return 0, false
	}
	return id, true
}

// Detail отдаёт одну запись по id.
func (h *MemoryHandler) Detail(w http.ResponseWriter, r *http.Request) {
	if _, ok := userID(r); !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, ok := memoryIDParam(w, r)
	if !ok {
		return
	}
	m, err := h.MemoryService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			errorJSON(w, http.StatusNotFound, "memory not found")
			return
		}
		h.Logger.Errorw("MemoryDetail: service error", "memory_id", id, "error", err)
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, toMemoryResponse(m))
}

// Update перезаписывает запись; чужая запись скрыта за 404.
func (h *MemoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, ok := memoryIDParam(w, r)
	if !ok {
		return
	}
	req, date, ok := h.decodeMemory(w, r)
	if !ok {
		return
	}

	m, err := h.MemoryService.Update(r.Context(), uid, id, req.MovieID, req.Title, date, req.Story)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			errorJSON(w, http.StatusNotFound, "memory not found")
			return
		}
		h.Logger.Errorw("UpdateMemory: service error", "memory_id", id, "error", err)
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, toMemoryResponse(m))
}

// Delete удаляет запись жёстко, фотографии уходят каскадом.
func (h *MemoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, ok := memoryIDParam(w, r)
	if !ok {
		return
	}
	if err := h.MemoryService.Delete(r.Context(), uid, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			errorJSON(w, http.StatusNotFound, "memory not found")
			return
		}
		h.Logger.Errorw("DeleteMemory: service error", "memory_id", id, "error", err)
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Photos отдаёт фотографии записи.
func (h *MemoryHandler) Photos(w http.ResponseWriter, r *http.Request) {
	if _, ok := userID(r); !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, ok := memoryIDParam(w, r)
	if !ok {
		return
	}
	photos, err := h.MemoryService.Photos(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			errorJSON(w, http.StatusNotFound, "memory not found")
			return
		}
		h.Logger.Errorw("Photos: service error", "memory_id", id, "error", err)
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, photos)
}

// UploadPhoto принимает multipart-файл и привязывает его к записи.
func (h *MemoryHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, ok := memoryIDParam(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoSize+1<<20)
	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("photo")
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "missing photo file")
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "failed to read photo")
		return
	}

	p, err := h.MemoryService.AddPhoto(r.Context(), uid, id, data, filepath.Ext(header.Filename))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			errorJSON(w, http.StatusNotFound, "memory not found")
			return
		}
		h.Logger.Errorw("UploadPhoto: service error", "memory_id", id, "error", err)
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// TopWords — десять самых частых слов по всем story.
func (h *MemoryHandler) TopWords(w http.ResponseWriter, r *http.Request) {
	if _, ok := userID(r); !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	top, err := h.MemoryService.TopWords(r.Context())
	if err != nil {
		h.Logger.Errorw("TopWords: service error", "error", err)
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"top_words": top})
}

// ExtractURLs — все ссылки из story одной записи.
func (h *MemoryHandler) ExtractURLs(w http.ResponseWriter, r *http.Request) {
	if _, ok := userID(r); !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, ok := memoryIDParam(w, r)
	if !ok {
		return
	}
	urls, err := h.MemoryService.ExtractURLs(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			errorJSON(w, http.StatusNotFound, "memory not found")
			return
		}
		h.Logger.Errorw("ExtractURLs: service error", "memory_id", id, "error", err)
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"urls": urls})
}
