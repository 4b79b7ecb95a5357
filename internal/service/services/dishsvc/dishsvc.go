package dishsvc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/corray333/grubdash/internal/dal/interfaces/idishrepo"
	"github.com/corray333/grubdash/internal/dal/interfaces/ieventrepo"
	"github.com/corray333/grubdash/internal/service/errs"
	"github.com/corray333/grubdash/internal/service/idgen"
	"github.com/corray333/grubdash/internal/service/models/dish"
	"github.com/corray333/grubdash/internal/service/models/event"
	"github.com/corray333/grubdash/internal/service/models/payload"
	"github.com/corray333/grubdash/internal/service/validation"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("dishsvc")

// DishService manages the menu.
type DishService struct {
	repo      idishrepo.IDishRepository
	ids       *idgen.Generator
	publisher ieventrepo.IEventRepository
}

// option is a function that configures the DishService.
type option func(*DishService)

// MustNewDishService creates a new DishService.
// A repository and an id generator are required.
func MustNewDishService(opts ...option) *DishService {
	s := &DishService{}
	for _, opt := range opts {
		opt(s)
	}

	if s.repo == nil {
		panic("dishsvc: repository is not set")
	}
	if s.ids == nil {
		panic("dishsvc: id generator is not set")
	}

	return s
}

// WithRepository sets the dish storage.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithRepository(repo idishrepo.IDishRepository) option {
	return func(s *DishService) {
		s.repo = repo
	}
}

// WithIDGenerator sets the shared id generator.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithIDGenerator(ids *idgen.Generator) option {
	return func(s *DishService) {
		s.ids = ids
	}
}

// WithEventPublisher sets where dish events are sent. Without one, events are dropped.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithEventPublisher(publisher ieventrepo.IEventRepository) option {
	return func(s *DishService) {
		s.publisher = publisher
	}
}

// List returns every dish in insertion order.
func (s *DishService) List(ctx context.Context) ([]dish.Dish, error) {
	ctx, span := tracer.Start(ctx, "DishService.List")
	defer span.End()

	dishes, err := s.repo.List(ctx)
	if err != nil {
		return nil, fail(span, fmt.Errorf("failed to list dishes: %w", err))
	}

	return dishes, nil
}

// Create validates p and appends a new dish with a fresh id.
func (s *DishService) Create(ctx context.Context, p payload.Payload) (dish.Dish, error) {
	ctx, span := tracer.Start(ctx, "DishService.Create")
	defer span.End()

	if err := validation.Run(fieldSteps(p)...); err != nil {
		return dish.Dish{}, fail(span, err)
	}

	d := dish.Dish{ID: s.ids.Next()}
	apply(&d, p)

	created, err := s.repo.Insert(ctx, d)
	if err != nil {
		return dish.Dish{}, fail(span, fmt.Errorf("failed to insert dish: %w", err))
	}

	s.publish(ctx, event.New(event.DishCreated, created.ID, created))

	return created, nil
}

// Get returns the dish with the given id.
func (s *DishService) Get(ctx context.Context, id string) (dish.Dish, error) {
	ctx, span := tracer.Start(ctx, "DishService.Get", trace.WithAttributes(dishID(id)))
	defer span.End()

	d, err := s.repo.Get(ctx, id)
	if err != nil {
		return dish.Dish{}, fail(span, storageError(err, id))
	}

	return d, nil
}

// Update overwrites every mutable field of an existing dish. The id never changes.
func (s *DishService) Update(ctx context.Context, id string, p payload.Payload) (dish.Dish, error) {
	ctx, span := tracer.Start(ctx, "DishService.Update", trace.WithAttributes(dishID(id)))
	defer span.End()

	steps := append([]validation.Step{validation.SameID("Dish", id, p)}, fieldSteps(p)...)

	updated, err := s.repo.Update(ctx, id, func(d *dish.Dish) error {
		if err := validation.Run(steps...); err != nil {
			return err
		}
		apply(d, p)

		return nil
	})
	if err != nil {
		return dish.Dish{}, fail(span, storageError(err, id))
	}

	s.publish(ctx, event.New(event.DishUpdated, updated.ID, updated))

	return updated, nil
}

// fieldSteps is the check chain shared by create and update.
func fieldSteps(p payload.Payload) []validation.Step {
	return []validation.Step{
		validation.BodyHas(p, "name"),
		validation.BodyHas(p, "description"),
		validation.BodyHas(p, "price"),
		validPrice(p),
		validation.BodyHas(p, "image_url"),
	}
}

// validPrice also requires the price to fit the stored int64.
func validPrice(p payload.Payload) validation.Step {
	return func() error {
		_, fits := p.Integer("price")
		if fits && validation.PositiveInteger(p["price"]) {
			return nil
		}

		return errs.InvalidInput("Dish must have a price that is an integer greater than 0")
	}
}

func apply(d *dish.Dish, p payload.Payload) {
	price, _ := p.Integer("price")

	d.Name = p.Text("name")
	d.Description = p.Text("description")
	d.Price = price
	d.ImageURL = p.Text("image_url")
}

func storageError(err error, id string) error {
	var appErr *errs.Error

	switch {
	case errors.As(err, &appErr):
		return err
	case errors.Is(err, errs.ErrNotFound):
		return errs.NotFound("Dish id not found: %s", id)
	default:
		return fmt.Errorf("dish storage failed: %w", err)
	}
}

func (s *DishService) publish(ctx context.Context, e event.Event) {
	if s.publisher == nil {
		return
	}

	if err := s.publisher.Publish(ctx, e); err != nil {
		slog.Warn("Failed to publish dish event", "type", e.Type, "dish_id", e.ResourceID, "error", err)
	}
}
