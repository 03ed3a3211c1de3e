// Package render строит представление экрана пользователей и выводит его в HTML или текст.
package render

import "users-screen/internal/model"

const (
	// Title — заголовок экрана.
	Title = "Users information"
	// LoadingMessage показывается, пока список пользователей не загружен.
	LoadingMessage = "Loading users' data"
)

// Card — карточка одного пользователя. Выводятся только имя, email и фамилия.
type Card struct {
	Name    string
	Email   string
	Surname string
}

// Screen — модель представления экрана.
type Screen struct {
	Title   string
	Loading bool
	Cards   []Card
}

// Build строит модель представления по результату CurrentUsers.
// Пустой загруженный список даёт экран без карточек, а не заглушку загрузки.
func Build(users []model.User, loaded bool) Screen {
	s := Screen{Title: Title, Loading: !loaded}
	if !loaded {
		return s
	}

	s.Cards = make([]Card, 0, len(users))
	for _, u := range users {
		s.Cards = append(s.Cards, Card{
			Name:    u.Name,
			Email:   u.Email,
			Surname: u.Surname,
		})
	}
	return s
}
