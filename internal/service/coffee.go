package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"coffeeapi/internal/model"
	"coffeeapi/internal/repository"
)

var (
	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("coffee not found")
)

var tracer = otel.Tracer("coffeeapi/internal/service")

// CoffeeService defines the use cases behind the /coffees routes.
type CoffeeService interface {
	// List returns every coffee in the catalog.
	List(ctx context.Context) ([]model.Coffee, error)

	// Get returns a single coffee, or ErrNotFound.
	Get(ctx context.Context, id string) (*model.Coffee, error)

	// Create stores c as-is. An empty ID is replaced by a fresh UUID.
	Create(ctx context.Context, c model.Coffee) (*model.Coffee, error)

	// Replace handles PUT semantics. When a coffee exists under id the
	// supplied body is returned untouched and nothing is written; otherwise
	// the body is stored through Create and created is true.
	Replace(ctx context.Context, id string, c model.Coffee) (out *model.Coffee, created bool, err error)

	// Delete removes a coffee by ID. Missing IDs are not an error.
	Delete(ctx context.Context, id string) error
}

type coffeeService struct {
	repo repository.CoffeeRepository
}

// NewCoffeeService constructs a new CoffeeService.
func NewCoffeeService(repo repository.CoffeeRepository) CoffeeService {
	return &coffeeService{repo: repo}
}

func (s *coffeeService) List(ctx context.Context) (_ []model.Coffee, err error) {
	ctx, span := tracer.Start(ctx, "CoffeeService.List")
	defer func() { endSpan(span, err) }()

	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("coffee.count", len(items)))
	return items, nil
}

func (s *coffeeService) Get(ctx context.Context, id string) (_ *model.Coffee, err error) {
	ctx, span := tracer.Start(ctx, "CoffeeService.Get", trace.WithAttributes(attribute.String("coffee.id", id)))
	defer func() { endSpan(span, err) }()

	if id == "" {
		return nil, ErrIDRequired
	}
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *coffeeService) Create(ctx context.Context, c model.Coffee) (_ *model.Coffee, err error) {
	ctx, span := tracer.Start(ctx, "CoffeeService.Create")
	defer func() { endSpan(span, err) }()

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	span.SetAttributes(attribute.String("coffee.id", c.ID))
	return s.repo.Save(ctx, c)
}

func (s *coffeeService) Replace(ctx context.Context, id string, c model.Coffee) (_ *model.Coffee, _ bool, err error) {
	ctx, span := tracer.Start(ctx, "CoffeeService.Replace", trace.WithAttributes(attribute.String("coffee.id", id)))
	defer func() { endSpan(span, err) }()

	if id == "" {
		return nil, false, ErrIDRequired
	}
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if exists {
		return &c, false, nil
	}

	stored, err := s.Create(ctx, c)
	if err != nil {
		return nil, false, err
	}
	return stored, true, nil
}

func (s *coffeeService) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracer.Start(ctx, "CoffeeService.Delete", trace.WithAttributes(attribute.String("coffee.id", id)))
	defer func() { endSpan(span, err) }()

	if id == "" {
		return ErrIDRequired
	}
	return s.repo.DeleteByID(ctx, id)
}

func endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
