package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server settings
	RunAddr     string `env:"RUN_ADDRESS"`
	DatabaseDSN string `env:"DATABASE_URI"`
	AuthSecret  string `env:"AUTH_SECRET"`
	MediaDir    string `env:"MEDIA_DIR"`

	// Bulk loader settings
	EnrichAPIURL  string        `env:"ENRICH_API_URL"`
	EnrichTimeout time.Duration `env:"ENRICH_TIMEOUT"`
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// флаги работают ТОЛЬКО если переменные из env не заданы
	flag.StringVar(&cfg.RunAddr, "a", cfg.RunAddr, "адрес и порт запуска сервера")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.StringVar(&cfg.MediaDir, "media-dir", cfg.MediaDir, "каталог для загруженных фотографий")
	flag.StringVar(&cfg.EnrichAPIURL, "enrich-url", cfg.EnrichAPIURL, "базовый URL внешнего API обогащения фильмов")
	flag.DurationVar(&cfg.EnrichTimeout, "enrich-timeout", cfg.EnrichTimeout, "таймаут одного запроса к API обогащения")
	flag.Parse()

	// Defaults
	if cfg.RunAddr == "" {
		cfg.RunAddr = "localhost:8080"
	}
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	if cfg.MediaDir == "" {
		cfg.MediaDir = "./media"
	}
	if cfg.EnrichAPIURL == "" {
		cfg.EnrichAPIURL = "https://cinema.stag.rihal.tech/api"
	}
	if cfg.EnrichTimeout <= 0 {
		cfg.EnrichTimeout = 10 * time.Second
	}

	return cfg
}
