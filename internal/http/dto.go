// Package http реализует HTTP-представление экрана пользователей поверх контроллера.
package http

import "users-screen/internal/model"

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// usersResponse: users равен null, пока список не загружен, и [] для пустого списка.
type usersResponse struct {
	State string       `json:"state"`
	Users []model.User `json:"users"`
}
