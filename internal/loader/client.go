package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Enrichment — ответ внешнего API по одному фильму.
type Enrichment struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	ReleaseDate string   `json:"release_date"`
	MainCast    []string `json:"main_cast"`
	Director    *string  `json:"director"`
	Budget      *float64 `json:"budget"`
}

// Client ходит во внешний API обогащения с явным таймаутом на запрос.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// FetchMovie запрашивает данные фильма по id. Любая транспортная ошибка
// или не-2xx статус — ошибка записи, batch её только логирует.
func (c *Client) FetchMovie(ctx context.Context, id int64) (*Enrichment, error) {
	url := fmt.Sprintf("%s/movie/%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("enrichment API returned status %d", resp.StatusCode)
	}

	var e Enrichment
	if err := json.NewDecoder(resp.Body).Decode(&e); err != nil {
		return nil, fmt.Errorf("decode enrichment response: %w", err)
	}
	return &e, nil
}
