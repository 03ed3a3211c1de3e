package repository

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"users-screen/internal/model"
)

const usersPath = "users"

// UserRepo загружает пользователей с удалённого REST API.
type UserRepo struct {
	api *Client
}

// NewUserRepo создаёт новый экземпляр UserRepo поверх общего клиента.
func NewUserRepo(api *Client) *UserRepo {
	return &UserRepo{api: api}
}

// FetchUsers выполняет один GET <base>/users и возвращает пользователей в порядке сервера.
// Любая ошибка возвращается как *FetchError; повторов нет.
func (r *UserRepo) FetchUsers(ctx context.Context) ([]model.User, error) {
	const op = "fetch users"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.api.Endpoint(usersPath), nil)
	if err != nil {
		return nil, &FetchError{Op: op, Kind: ErrNetwork, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.api.HTTP.Do(req)
	if err != nil {
		return nil, &FetchError{Op: op, Kind: ErrNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{Op: op, Kind: ErrNetwork, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Op: op, Kind: ErrNetwork, Err: fmt.Errorf("read body: %w", err)}
	}

	users, err := model.DecodeUsers(body)
	if err != nil {
		return nil, &FetchError{Op: op, Kind: ErrDecode, Err: err}
	}
	return users, nil
}
