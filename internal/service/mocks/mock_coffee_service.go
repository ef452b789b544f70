package mocks

import (
	"context"

	"coffeeapi/internal/model"
	"coffeeapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockCoffeeService struct {
	mock.Mock
}

var _ service.CoffeeService = (*MockCoffeeService)(nil)

func (m *MockCoffeeService) List(ctx context.Context) ([]model.Coffee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Coffee), args.Error(1)
}

func (m *MockCoffeeService) Get(ctx context.Context, id string) (*model.Coffee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Coffee), args.Error(1)
}

func (m *MockCoffeeService) Create(ctx context.Context, c model.Coffee) (*model.Coffee, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Coffee), args.Error(1)
}

func (m *MockCoffeeService) Replace(ctx context.Context, id string, c model.Coffee) (*model.Coffee, bool, error) {
	args := m.Called(ctx, id, c)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*model.Coffee), args.Bool(1), args.Error(2)
}

func (m *MockCoffeeService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
