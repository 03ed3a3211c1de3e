package repository

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client хранит общий HTTP-клиент и базовый адрес удалённого API.
// Создаётся один раз при старте процесса и передаётся в репозитории.
type Client struct {
	HTTP    *http.Client
	BaseURL *url.URL
}

// NewClient разбирает базовый адрес и создаёт клиента.
// Нулевой timeout означает отсутствие ограничения, как у транспорта по умолчанию.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse base url: unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse base url: missing host")
	}
	// Ресурсы разрешаются относительно базового пути, поэтому он должен оканчиваться на "/".
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	return &Client{
		HTTP:    &http.Client{Timeout: timeout},
		BaseURL: u,
	}, nil
}

// Endpoint строит адрес ресурса относительно базового.
func (c *Client) Endpoint(path string) string {
	return c.BaseURL.ResolveReference(&url.URL{Path: path}).String()
}
