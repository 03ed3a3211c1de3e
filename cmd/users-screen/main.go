// Package main запускает экран пользователей: загрузку списка и его HTTP- и консольную отрисовку.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"users-screen/internal/app"
	"users-screen/internal/config"
)

func main() {
	// Отмена контекста по сигналу уничтожает экран и останавливает сервер
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Чтение конфигурации из файла и ENV
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Инициализация логгера (JSON)
	level, err := cfg.Level()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	application, err := app.New(cfg, logger, os.Stderr)
	if err != nil {
		log.Fatalf("failed to init app: %v", err)
	}

	if err := application.Run(ctx); err != nil {
		logger.Error("app stopped with error", slog.Any("err", err))
		os.Exit(1)
	}
}
