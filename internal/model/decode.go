package model

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

var (
	// ErrMalformedPayload возвращается, если тело ответа не является JSON-массивом.
	ErrMalformedPayload = errors.New("malformed users payload")

	// ErrInvalidUser возвращается, если объект пользователя неполон или содержит поле неверного типа.
	ErrInvalidUser = errors.New("invalid user record")
)

// DecodeUsers декодирует JSON-массив пользователей с сохранением порядка.
// Ошибка в любой записи отменяет весь результат: частичный список не возвращается.
func DecodeUsers(data []byte) ([]User, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return nil, fmt.Errorf("%w: expected JSON array", ErrMalformedPayload)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	users := make([]User, 0, len(items))
	for i, item := range items {
		var u User
		if err := u.UnmarshalJSON(item); err != nil {
			return nil, fmt.Errorf("user[%d]: %w", i, err)
		}
		users = append(users, u)
	}
	return users, nil
}

// UnmarshalJSON заполняет User только целиком: все поля, кроме surname, обязательны.
func (u *User) UnmarshalJSON(data []byte) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil || obj == nil {
		return fmt.Errorf("%w: expected JSON object", ErrInvalidUser)
	}

	var (
		v   User
		err error
	)
	if v.ID, err = intField(obj, "id"); err != nil {
		return err
	}
	if v.Name, err = stringField(obj, "name"); err != nil {
		return err
	}
	if v.Username, err = stringField(obj, "username"); err != nil {
		return err
	}
	if v.Email, err = stringField(obj, "email"); err != nil {
		return err
	}
	if v.Address, err = mapField(obj, "address"); err != nil {
		return err
	}
	if v.Phone, err = stringField(obj, "phone"); err != nil {
		return err
	}
	if v.Website, err = stringField(obj, "website"); err != nil {
		return err
	}
	if v.Company, err = mapField(obj, "company"); err != nil {
		return err
	}

	if raw, ok := present(obj, "surname"); ok {
		if err := json.Unmarshal(raw, &v.Surname); err != nil || raw[0] != '"' {
			return fieldError("surname", "must be a string")
		}
	}

	*u = v
	return nil
}

func fieldError(name, reason string) error {
	return fmt.Errorf("%w: field %q %s", ErrInvalidUser, name, reason)
}

// present возвращает значение поля, считая null отсутствующим значением.
func present(obj map[string]json.RawMessage, name string) (json.RawMessage, bool) {
	raw, ok := obj[name]
	if !ok {
		return nil, false
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, false
	}
	return raw, true
}

func intField(obj map[string]json.RawMessage, name string) (int, error) {
	raw, ok := present(obj, name)
	if !ok {
		return 0, fieldError(name, "is required")
	}
	// Ведущие нули недопустимы в JSON, но go-json их пропускает.
	digits := bytes.TrimPrefix(raw, []byte("-"))
	if len(digits) > 1 && digits[0] == '0' {
		return 0, fieldError(name, "must be an integer")
	}
	n, err := strconv.Atoi(string(raw))
	if err != nil {
		return 0, fieldError(name, "must be an integer")
	}
	return n, nil
}

func stringField(obj map[string]json.RawMessage, name string) (string, error) {
	raw, ok := present(obj, name)
	if !ok {
		return "", fieldError(name, "is required")
	}
	if raw[0] != '"' {
		return "", fieldError(name, "must be a string")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fieldError(name, "must be a string")
	}
	return s, nil
}

func mapField(obj map[string]json.RawMessage, name string) (map[string]string, error) {
	raw, ok := present(obj, name)
	if !ok {
		return nil, fieldError(name, "is required")
	}
	out := make(map[string]string)
	if err := flatten(raw, "", out); err != nil {
		return nil, fieldError(name, err.Error())
	}
	return out, nil
}

// flatten раскладывает объект в плоскую карту строк; вложенные объекты
// получают ключи через точку (geo.lat). Совпадение ключей после раскладки
// и пустые вложенные объекты считаются ошибкой.
func flatten(raw json.RawMessage, prefix string, out map[string]string) error {
	if len(raw) == 0 || raw[0] != '{' {
		return errors.New("must be an object")
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return errors.New("must be an object")
	}
	for key, val := range obj {
		val = bytes.TrimSpace(val)
		if len(val) == 0 {
			return fmt.Errorf("key %q has no value", prefix+key)
		}
		switch val[0] {
		case '"':
			var s string
			if err := json.Unmarshal(val, &s); err != nil {
				return fmt.Errorf("key %q must be a string", prefix+key)
			}
			if _, dup := out[prefix+key]; dup {
				return fmt.Errorf("key %q is duplicated", prefix+key)
			}
			out[prefix+key] = s
		case '{':
			before := len(out)
			if err := flatten(val, prefix+key+".", out); err != nil {
				return err
			}
			if len(out) == before {
				return fmt.Errorf("key %q is an empty object", prefix+key)
			}
		default:
			return fmt.Errorf("key %q must be a string", prefix+key)
		}
	}
	return nil
}
