package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork возвращается при сбое соединения или ответе с кодом вне 2xx.
	ErrNetwork = errors.New("network error")

	// ErrDecode возвращается, если тело ответа не удалось разобрать в список пользователей.
	ErrDecode = errors.New("decode error")
)

// FetchError описывает неудачную загрузку: вид сбоя (ErrNetwork или ErrDecode)
// и исходную причину. errors.Is находит и вид, и причину.
type FetchError struct {
	Op   string
	Kind error
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
