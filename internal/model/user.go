package model

// User описывает пользователя, полученного с удалённого API: идентификатор,
// контактные данные, адрес и компанию.
//
// Surname на сервере отсутствует и всегда декодируется пустой строкой.
type User struct {
	ID       int               `json:"id"`
	Name     string            `json:"name"`
	Surname  string            `json:"surname"`
	Username string            `json:"username"`
	Email    string            `json:"email"`
	Address  map[string]string `json:"address"`
	Phone    string            `json:"phone"`
	Website  string            `json:"website"`
	Company  map[string]string `json:"company"`
}
