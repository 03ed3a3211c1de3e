package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/goccy/go-json"

	"users-screen/internal/model"
	"users-screen/internal/service"
)

// UsersScreen описывает то, что слой отрисовки читает у контроллера экрана.
type UsersScreen interface {
	CurrentUsers() ([]model.User, bool)
}

type Handler struct {
	Screen         UsersScreen
	AllowedOrigins []string
	Log            *slog.Logger
}

func NewHandler(screen UsersScreen, allowedOrigins []string, log *slog.Logger) *Handler {
	return &Handler{
		Screen:         screen,
		AllowedOrigins: allowedOrigins,
		Log:            log,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, r, "not_found", service.ErrNotFound("route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, r, "method_not_allowed", service.ErrMethodNotAllowed("method not allowed"))
	})

	r.Get("/health", h.handleHealth)
	r.Get("/", h.handleScreen)
	r.Get("/users", h.handleUsers)

	return r
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, handlerName string, err error) {
	appErr, ok := err.(*service.AppError)
	if !ok {
		appErr = service.ErrInternal("internal error", err)
	}

	h.Log.Error("handler error",
		slog.String("handler", handlerName),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)

	resp := errorResponse{}
	resp.Error.Code = appErr.Code
	resp.Error.Message = appErr.Message
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
