// Package app собирает экран пользователей из конфигурации и управляет его жизненным циклом.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"users-screen/internal/config"
	httpapi "users-screen/internal/http"
	"users-screen/internal/render"
	"users-screen/internal/repository"
	"users-screen/internal/service"
)

const shutdownTimeout = 5 * time.Second

// App связывает HTTP-клиент, контроллер экрана и его отрисовку.
type App struct {
	cfg     config.Config
	log     *slog.Logger
	screen  *service.UsersScreen
	console *render.Console
	server  *http.Server
}

// New создаёт общий HTTP-клиент и все зависимости экрана.
// console может быть nil, если консольная отрисовка не нужна.
func New(cfg config.Config, log *slog.Logger, console io.Writer) (*App, error) {
	api, err := repository.NewClient(cfg.BaseURL, cfg.FetchTimeout)
	if err != nil {
		return nil, fmt.Errorf("init api client: %w", err)
	}

	userRepo := repository.NewUserRepo(api)
	screen := service.NewUsersScreen(userRepo, log)
	handler := httpapi.NewHandler(screen, cfg.AllowedOrigins, log)

	a := &App{
		cfg:    cfg,
		log:    log,
		screen: screen,
		server: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           handler.Router(),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
	if cfg.ConsoleRender && console != nil {
		a.console = render.NewConsole(console, log)
	}
	return a, nil
}

// Screen возвращает контроллер экрана.
func (a *App) Screen() *service.UsersScreen {
	return a.screen
}

// Handler возвращает HTTP-обработчик экрана.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run активирует экран и обслуживает HTTP до отмены ctx.
// Отмена ctx уничтожает экран: незавершённая загрузка отменяется.
func (a *App) Run(ctx context.Context) error {
	if a.console != nil {
		a.console.Placeholder()
		a.screen.Subscribe(a.console.Observe)
	}
	a.screen.Activate(ctx)
	defer a.screen.Close()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.Info("starting http server", slog.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.log.Info("shutting down server")

		ctxShutdown, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := a.server.Shutdown(ctxShutdown); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	})

	err := g.Wait()
	a.log.Info("server stopped")
	return err
}
