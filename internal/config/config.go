// Package config загружает настройки приложения: значения по умолчанию,
// необязательный YAML-файл и переопределения из переменных окружения.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultBaseURL — адрес публичного API с пользователями.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com/"

// ErrInvalidConfig возвращается при некорректных значениях настроек.
var ErrInvalidConfig = errors.New("invalid config")

// Config описывает настройки приложения.
type Config struct {
	BaseURL        string        `yaml:"base_url"`
	HTTPAddr       string        `yaml:"http_addr"`
	FetchTimeout   time.Duration `yaml:"fetch_timeout"`
	LogLevel       string        `yaml:"log_level"`
	AllowedOrigins []string      `yaml:"cors_allowed_origins"`
	ConsoleRender  bool          `yaml:"console_render"`
}

// Default возвращает настройки по умолчанию.
func Default() Config {
	return Config{
		BaseURL:        DefaultBaseURL,
		HTTPAddr:       ":8080",
		LogLevel:       "info",
		AllowedOrigins: []string{"*"},
		ConsoleRender:  true,
	}
}

// Load читает настройки. Пустой path означает, что файла нет.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("USERS_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("FETCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: FETCH_TIMEOUT: %v", ErrInvalidConfig, err)
		}
		cfg.FetchTimeout = d
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.AllowedOrigins = origins
	}
	if v := os.Getenv("CONSOLE_RENDER"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: CONSOLE_RENDER: %v", ErrInvalidConfig, err)
		}
		cfg.ConsoleRender = b
	}
	return nil
}

// Validate проверяет обязательные поля.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("%w: base_url is required", ErrInvalidConfig)
	}
	if c.HTTPAddr == "" {
		return fmt.Errorf("%w: http_addr is required", ErrInvalidConfig)
	}
	if c.FetchTimeout < 0 {
		return fmt.Errorf("%w: fetch_timeout must not be negative", ErrInvalidConfig)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level переводит LogLevel в уровень slog.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}
	return lvl, nil
}
