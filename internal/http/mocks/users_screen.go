package mocks

import (
	"github.com/stretchr/testify/mock"

	"users-screen/internal/model"
)

// UsersScreen is a mock type for the UsersScreen type
type UsersScreen struct {
	mock.Mock
}

// CurrentUsers provides a mock function with given fields:
func (_m *UsersScreen) CurrentUsers() ([]model.User, bool) {
	ret := _m.Called()

	var r0 []model.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.User)
	}

	return r0, ret.Bool(1)
}
