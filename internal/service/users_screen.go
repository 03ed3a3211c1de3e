package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"users-screen/internal/model"
	"users-screen/internal/repository"
)

// UserFetcher описывает контракт источника пользователей для экрана.
type UserFetcher interface {
	FetchUsers(ctx context.Context) ([]model.User, error)
}

// Observer получает новый список пользователей при каждом изменении состояния экрана.
type Observer func(users []model.User)

// State — наблюдаемое состояние списка пользователей.
type State int

const (
	// StateAbsent — ни одна загрузка ещё не завершилась успешно.
	StateAbsent State = iota
	// StateLoaded — экран хранит последний успешно загруженный список.
	StateLoaded
)

func (s State) String() string {
	switch s {
	case StateAbsent:
		return "loading"
	case StateLoaded:
		return "loaded"
	default:
		return "unknown"
	}
}

type subscription struct {
	id int
	fn Observer
}

// UsersScreen связывает асинхронную загрузку пользователей с синхронным
// чтением текущего состояния для отрисовки.
//
// Загрузка запускается один раз через Activate, подписка оформляется отдельно
// через Subscribe. После Close результат загрузки отбрасывается.
type UsersScreen struct {
	fetcher UserFetcher
	log     *slog.Logger
	id      uuid.UUID

	mu        sync.RWMutex
	users     []model.User
	state     State
	observers []subscription
	nextID    int
	closed    bool
	cancel    context.CancelFunc

	activateOnce sync.Once
	done         chan struct{}
}

// NewUsersScreen создаёт экран в состоянии StateAbsent.
func NewUsersScreen(fetcher UserFetcher, log *slog.Logger) *UsersScreen {
	id := uuid.New()
	return &UsersScreen{
		fetcher: fetcher,
		log:     log.With(slog.String("screen_id", id.String())),
		id:      id,
		cancel:  func() {},
		done:    make(chan struct{}),
	}
}

// ID возвращает идентификатор экрана.
func (s *UsersScreen) ID() uuid.UUID {
	return s.id
}

// Activate планирует ровно одну загрузку пользователей в отдельной горутине.
// Загрузка живёт в контексте, производном от ctx; повторные вызовы ничего не делают.
func (s *UsersScreen) Activate(ctx context.Context) {
	s.activateOnce.Do(func() {
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			close(s.done)
			return
		}
		ctx, s.cancel = context.WithCancel(ctx)
		s.mu.Unlock()

		s.log.Info("users screen activated")
		go s.load(ctx)
	})
}

func (s *UsersScreen) load(ctx context.Context) {
	defer close(s.done)

	users, err := s.fetcher.FetchUsers(ctx)
	if err != nil {
		s.logFailure(ctx, err)
		return
	}
	s.publish(ctx, users)
}

func (s *UsersScreen) logFailure(ctx context.Context, err error) {
	if ctx.Err() != nil {
		s.log.Info("users fetch abandoned", slog.Any("err", err))
		return
	}

	kind := "unknown"
	switch {
	case errors.Is(err, repository.ErrNetwork):
		kind = "network"
	case errors.Is(err, repository.ErrDecode):
		kind = "decode"
	}
	s.log.Error("error while obtaining users",
		slog.String("kind", kind),
		slog.Any("err", err),
	)
}

// publish заменяет список целиком и синхронно уведомляет подписчиков.
func (s *UsersScreen) publish(ctx context.Context, users []model.User) {
	s.mu.Lock()
	if s.closed || ctx.Err() != nil {
		s.mu.Unlock()
		s.log.Info("users screen closed, dropping fetch result", slog.Int("count", len(users)))
		return
	}
	if users == nil {
		users = []model.User{}
	}
	s.users = users
	s.state = StateLoaded
	observers := slices.Clone(s.observers)
	s.mu.Unlock()

	s.log.Info("users loaded", slog.Int("count", len(users)))
	for _, o := range observers {
		o.fn(slices.Clone(users))
	}
}

// CurrentUsers возвращает последний загруженный список и true,
// либо nil и false, пока загрузка не завершилась.
func (s *UsersScreen) CurrentUsers() ([]model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state != StateLoaded {
		return nil, false
	}
	return slices.Clone(s.users), true
}

// State возвращает текущее состояние экрана.
func (s *UsersScreen) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe регистрирует наблюдателя и возвращает функцию отписки.
// Если список уже загружен, наблюдатель сразу получает текущее значение.
func (s *UsersScreen) Subscribe(fn Observer) (unsubscribe func()) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return func() {}
	}
	id := s.nextID
	s.nextID++
	s.observers = append(s.observers, subscription{id: id, fn: fn})
	users, loaded := s.users, s.state == StateLoaded
	s.mu.Unlock()

	if loaded {
		fn(slices.Clone(users))
	}

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.observers = slices.DeleteFunc(s.observers, func(sub subscription) bool {
			return sub.id == id
		})
	}
}

// Close уничтожает экран: отменяет загрузку и снимает всех наблюдателей.
func (s *UsersScreen) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.observers = nil
	cancel := s.cancel
	s.mu.Unlock()

	cancel()
	// Экран, который так и не активировали, считается завершённым сразу.
	s.activateOnce.Do(func() { close(s.done) })
	s.log.Info("users screen closed")
}

// Done закрывается, когда загрузка завершена или экран закрыт до активации.
func (s *UsersScreen) Done() <-chan struct{} {
	return s.done
}
