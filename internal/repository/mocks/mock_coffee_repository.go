package mocks

import (
	"context"

	"coffeeapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockCoffeeRepository struct {
	mock.Mock
}

func (m *MockCoffeeRepository) FindAll(ctx context.Context) ([]model.Coffee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Coffee), args.Error(1)
}

func (m *MockCoffeeRepository) FindByID(ctx context.Context, id string) (*model.Coffee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Coffee), args.Error(1)
}

func (m *MockCoffeeRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCoffeeRepository) Save(ctx context.Context, c model.Coffee) (*model.Coffee, error) {
	args := m.Called(ctx, c)
	if f, ok := args.Get(0).(func(context.Context, model.Coffee) *model.Coffee); ok {
		return f(ctx, c), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Coffee), args.Error(1)
}

func (m *MockCoffeeRepository) SaveAll(ctx context.Context, cs []model.Coffee) ([]model.Coffee, error) {
	args := m.Called(ctx, cs)
	if f, ok := args.Get(0).(func(context.Context, []model.Coffee) []model.Coffee); ok {
		return f(ctx, cs), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Coffee), args.Error(1)
}

func (m *MockCoffeeRepository) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
