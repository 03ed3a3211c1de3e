package http

import (
	"bytes"
	"net/http"

	"github.com/goccy/go-json"

	"users-screen/internal/render"
	"users-screen/internal/service"
)

func (h *Handler) handleScreen(w http.ResponseWriter, r *http.Request) {
	const handlerName = "users_screen"

	users, loaded := h.Screen.CurrentUsers()

	var buf bytes.Buffer
	if err := render.HTML(&buf, render.Build(users, loaded)); err != nil {
		h.writeError(w, r, handlerName, service.ErrInternal("failed to render screen", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (h *Handler) handleUsers(w http.ResponseWriter, r *http.Request) {
	users, loaded := h.Screen.CurrentUsers()

	resp := usersResponse{State: service.StateAbsent.String()}
	if loaded {
		resp.State = service.StateLoaded.String()
		resp.Users = users
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
