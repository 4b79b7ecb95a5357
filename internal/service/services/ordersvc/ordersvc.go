package ordersvc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/corray333/grubdash/internal/dal/interfaces/ieventrepo"
	"github.com/corray333/grubdash/internal/dal/interfaces/iorderrepo"
	"github.com/corray333/grubdash/internal/service/errs"
	"github.com/corray333/grubdash/internal/service/idgen"
	"github.com/corray333/grubdash/internal/service/models/event"
	"github.com/corray333/grubdash/internal/service/models/order"
	"github.com/corray333/grubdash/internal/service/models/orderitem"
	"github.com/corray333/grubdash/internal/service/models/payload"
	"github.com/corray333/grubdash/internal/service/validation"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("ordersvc")

// OrderService is a service for managing orders.
type OrderService struct {
	repo      iorderrepo.IOrderRepository
	ids       *idgen.Generator
	publisher ieventrepo.IEventRepository
}

// option is a function that configures the OrderService.
type option func(*OrderService)

// MustNewOrderService creates a new OrderService.
// A repository and an id generator are required.
func MustNewOrderService(opts ...option) *OrderService {
	s := &OrderService{}
	for _, opt := range opts {
		opt(s)
	}

	if s.repo == nil {
		panic("ordersvc: repository is not set")
	}
	if s.ids == nil {
		panic("ordersvc: id generator is not set")
	}

	return s
}

// WithRepository sets the order storage.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithRepository(repo iorderrepo.IOrderRepository) option {
	return func(s *OrderService) {
		s.repo = repo
	}
}

// WithIDGenerator sets the shared id generator.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithIDGenerator(ids *idgen.Generator) option {
	return func(s *OrderService) {
		s.ids = ids
	}
}

// WithEventPublisher sets where order events are sent.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithEventPublisher(publisher ieventrepo.IEventRepository) option {
	return func(s *OrderService) {
		s.publisher = publisher
	}
}

// List returns every order in insertion order.
func (s *OrderService) List(ctx context.Context) ([]order.Order, error) {
	ctx, span := tracer.Start(ctx, "OrderService.List")
	defer span.End()

	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, fail(span, fmt.Errorf("failed to list orders: %w", err))
	}

	return orders, nil
}

// Create validates p and appends a new order with a fresh id.
// A string status is stored as submitted; no default is applied.
func (s *OrderService) Create(ctx context.Context, p payload.Payload) (order.Order, error) {
	ctx, span := tracer.Start(ctx, "OrderService.Create")
	defer span.End()

	if err := validation.Run(fieldSteps(p)...); err != nil {
		return order.Order{}, fail(span, err)
	}

	status, _ := p.String("status")
	o := order.Order{ID: s.ids.Next()}
	apply(&o, p, order.Status(status))

	created, err := s.repo.Insert(ctx, o)
	if err != nil {
		return order.Order{}, fail(span, fmt.Errorf("failed to insert order: %w", err))
	}

	s.publish(ctx, event.New(event.OrderCreated, created.ID, created))

	return created, nil
}

// Get returns the order with the given id.
func (s *OrderService) Get(ctx context.Context, id string) (order.Order, error) {
	ctx, span := tracer.Start(ctx, "OrderService.Get", trace.WithAttributes(orderID(id)))
	defer span.End()

	o, err := s.repo.Get(ctx, id)
	if err != nil {
		return order.Order{}, fail(span, storageError(err, id))
	}

	return o, nil
}

// Update overwrites delivery details, status and dishes of an existing order.
// Orders that are already delivered cannot be changed.
func (s *OrderService) Update(ctx context.Context, id string, p payload.Payload) (order.Order, error) {
	ctx, span := tracer.Start(ctx, "OrderService.Update", trace.WithAttributes(orderID(id)))
	defer span.End()

	updated, err := s.repo.Update(ctx, id, func(o *order.Order) error {
		steps := []validation.Step{validation.SameID("Order", id, p)}
		steps = append(steps, fieldSteps(p)...)
		steps = append(steps, validStatus(p, o.Status))
		if err := validation.Run(steps...); err != nil {
			return err
		}

		status, _ := p.String("status")
		apply(o, p, order.Status(status))

		return nil
	})
	if err != nil {
		return order.Order{}, fail(span, storageError(err, id))
	}

	s.publish(ctx, event.New(event.OrderUpdated, updated.ID, updated))

	return updated, nil
}

// Delete removes a pending order.
func (s *OrderService) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "OrderService.Delete", trace.WithAttributes(orderID(id)))
	defer span.End()

	var removed order.Order
	err := s.repo.Delete(ctx, id, func(o order.Order) error {
		if err := validation.Run(pending(o)); err != nil {
			return err
		}
		removed = o

		return nil
	})
	if err != nil {
		return fail(span, storageError(err, id))
	}

	s.publish(ctx, event.New(event.OrderDeleted, removed.ID, removed))

	return nil
}

// fieldSteps is the check chain shared by create and update.
func fieldSteps(p payload.Payload) []validation.Step {
	return []validation.Step{
		validation.BodyHas(p, "deliverTo"),
		validation.BodyHas(p, "mobileNumber"),
		validation.BodyHas(p, "dishes"),
		dishesNotEmpty(p),
		validDishes(p),
	}
}

func dishesNotEmpty(p payload.Payload) validation.Step {
	return func() error {
		if items, ok := p.List("dishes"); ok && len(items) > 0 {
			return nil
		}

		return errs.InvalidInput("Order must include at least one dish")
	}
}

// validDishes looks at every line and reports the first one without a positive integer quantity.
func validDishes(p payload.Payload) validation.Step {
	return func() error {
		items, _ := p.List("dishes")

		invalid := -1
		for i, raw := range items {
			item, ok := payload.From(raw)
			if ok && validation.PositiveInteger(item["quantity"]) {
				continue
			}
			if invalid < 0 {
				invalid = i
			}
		}

		if invalid >= 0 {
			return errs.InvalidInput(
				"Dish %d must have a quantity that is an integer greater than 0", invalid,
			)
		}

		return nil
	}
}

// validStatus checks the submitted status and refuses to touch a delivered order.
func validStatus(p payload.Payload, current order.Status) validation.Step {
	names := make([]string, 0, len(order.Statuses()))
	for _, st := range order.Statuses() {
		names = append(names, st.String())
	}

	return func() error {
		status, _ := p.String("status")
		if !p.Has("status") || !validation.OneOf(status, names...) {
			return errs.InvalidInput("Order must have a status of %s", strings.Join(names, ", "))
		}
		if current == order.StatusDelivered {
			return errs.InvalidInput("A delivered order cannot be changed")
		}

		return nil
	}
}

func pending(o order.Order) validation.Step {
	return func() error {
		if o.Status == order.StatusPending {
			return nil
		}

		return errs.InvalidInput("An order cannot be deleted unless it is pending")
	}
}

func apply(o *order.Order, p payload.Payload, status order.Status) {
	items, _ := p.List("dishes")
	dishes := make([]orderitem.OrderItem, 0, len(items))
	for _, raw := range items {
		item, _ := payload.From(raw)
		dishes = append(dishes, orderitem.New(item))
	}

	o.DeliverTo = p.Text("deliverTo")
	o.MobileNumber = p.Text("mobileNumber")
	o.Status = status
	o.Dishes = dishes
}

func storageError(err error, id string) error {
	var appErr *errs.Error

	switch {
	case errors.As(err, &appErr):
		return err
	case errors.Is(err, errs.ErrNotFound):
		return errs.NotFound("Order id not found: %s", id)
	default:
		return fmt.Errorf("order storage failed: %w", err)
	}
}

func (s *OrderService) publish(ctx context.Context, e event.Event) {
	if s.publisher == nil {
		return
	}

	if err := s.publisher.Publish(ctx, e); err != nil {
		slog.Warn("Failed to publish order event", "type", e.Type, "order_id", e.ResourceID, "error", err)
	}
}
