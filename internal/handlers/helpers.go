package handlers

import (
	"MovieDiary/internal/middleware"
	"encoding/json"
	"net/http"

	"github.com/dustin/go-humanize"
)

// descriptionLimit — предел длины описания в списках, дальше обрезаем
// по границе слова.
const descriptionLimit = 100

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func errorJSON(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// userID достаёт идентификатор из контекста; false — запрос анонимный.
func userID(r *http.Request) (int64, bool) {
	return middleware.GetUserIDFromContext(r.Context())
}

// formatBudget возвращает бюджет с разделителями тысяч, "Unknown" при nil.
func formatBudget(budget *float64) string {
	if budget == nil {
		return "Unknown"
	}
	return humanize.CommafWithDigits(*budget, 2)
}
