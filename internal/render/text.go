package render

import (
	"bufio"
	"io"
	"log/slog"
	"sync"

	"users-screen/internal/model"
)

// Text выводит экран в виде простого текста: заголовок, затем заглушка или карточки.
func Text(w io.Writer, s Screen) error {
	bw := bufio.NewWriter(w)

	bw.WriteString("== " + s.Title + " ==\n")
	if s.Loading {
		bw.WriteString(LoadingMessage + "\n")
		return bw.Flush()
	}

	for _, c := range s.Cards {
		bw.WriteString("+----\n")
		bw.WriteString("| " + c.Name + "\n")
		bw.WriteString("| " + c.Email + "\n")
		bw.WriteString("| " + c.Surname + "\n")
		bw.WriteString("+----\n")
	}
	return bw.Flush()
}

// Console перерисовывает экран в текстовом виде при каждом изменении списка.
type Console struct {
	mu  sync.Mutex
	w   io.Writer
	log *slog.Logger
}

// NewConsole создаёт консольную отрисовку поверх w.
func NewConsole(w io.Writer, log *slog.Logger) *Console {
	return &Console{w: w, log: log}
}

// Placeholder выводит экран в состоянии загрузки.
func (c *Console) Placeholder() {
	c.draw(Build(nil, false))
}

// Observe подходит как наблюдатель экрана пользователей.
func (c *Console) Observe(users []model.User) {
	c.draw(Build(users, true))
}

func (c *Console) draw(s Screen) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := Text(c.w, s); err != nil {
		c.log.Error("console render failed", slog.Any("err", err))
	}
}
