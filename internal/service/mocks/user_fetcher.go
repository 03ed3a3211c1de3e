package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"users-screen/internal/model"
)

// UserFetcher is a mock type for the UserFetcher type
type UserFetcher struct {
	mock.Mock
}

// FetchUsers provides a mock function with given fields: ctx
func (_m *UserFetcher) FetchUsers(ctx context.Context) ([]model.User, error) {
	ret := _m.Called(ctx)

	if rf, ok := ret.Get(0).(func(context.Context) ([]model.User, error)); ok {
		return rf(ctx)
	}

	var r0 []model.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.User)
	}

	return r0, ret.Error(1)
}

// NewUserFetcher creates a new instance of UserFetcher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewUserFetcher(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserFetcher {
	m := &UserFetcher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
