package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Server holds the gateway configuration.
type Server struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	HTTP struct {
		Port           int      `env:"PORT" envDefault:"3001" validate:"min=1,max=65535"`
		AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*" validate:"min=1"`
		SwaggerEnabled bool     `env:"SWAGGER_ENABLED" envDefault:"false"`

		// Ограничение входящих запросов, 0 отключает лимитер
		RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"0" validate:"gte=0"`
		RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"10" validate:"gte=1"`
	}

	Upstream struct {
		URL string `env:"UPSTREAM_URL,required" validate:"required,url"`
		// 0 leaves the deadline to the transport.
		Timeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"0s" validate:"gte=0"`
	}
}

// Tracker holds the consumer CLI configuration.
type Tracker struct {
	Debug      bool   `env:"DEBUG" envDefault:"false"`
	BackendURL string `env:"BACKEND_URL" validate:"omitempty,url"`
}

// LoadServer reads the gateway configuration from the environment and an optional .env file.
func LoadServer() (*Server, error) {
	cfg := &Server{}
	if err := load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadTracker reads the consumer configuration. BackendURL may still be empty
// here; the CLI flag can supply it.
func LoadTracker() (*Tracker, error) {
	cfg := &Tracker{}
	if err := load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func load(cfg any) error {
	// .env отсутствует в production, переменные приходят из окружения
	_ = godotenv.Load()

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}
