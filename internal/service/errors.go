package service

import "errors"

// Сентинельные ошибки сервисного слоя. Хендлеры переводят их в коды ответа.
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidRating  = errors.New("rating must be between 1 and 10")
	ErrLoginTaken     = errors.New("login already taken")
	ErrBadCredentials = errors.New("invalid credentials")
)
