package ordersvc

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/corray333/grubdash/internal/dal/memory"
	"github.com/corray333/grubdash/internal/service/errs"
	"github.com/corray333/grubdash/internal/service/idgen"
	"github.com/corray333/grubdash/internal/service/models/event"
	"github.com/corray333/grubdash/internal/service/models/order"
	"github.com/corray333/grubdash/internal/service/models/orderitem"
	"github.com/corray333/grubdash/internal/service/models/payload"
)

type recordingPublisher struct {
	events []event.Event
}

func (p *recordingPublisher) Publish(_ context.Context, events ...event.Event) error {
	p.events = append(p.events, events...)

	return nil
}

func newService(t *testing.T, seed ...order.Order) (*OrderService, *recordingPublisher) {
	t.Helper()

	ids := idgen.New()
	for _, o := range seed {
		ids.Observe(o.ID)
	}
	publisher := &recordingPublisher{}

	return MustNewOrderService(
		WithRepository(memory.NewOrderRepository(seed...)),
		WithIDGenerator(ids),
		WithEventPublisher(publisher),
	), publisher
}

func decode(t *testing.T, raw string) payload.Payload {
	t.Helper()

	p, err := payload.Decode([]byte(raw))
	if err != nil {
		t.Fatalf("payload.Decode(%s) error = %v", raw, err)
	}

	return p
}

func dishesJSON(t *testing.T, items []orderitem.OrderItem) string {
	t.Helper()

	raw, err := json.Marshal(items)
	if err != nil {
		t.Fatalf("json.Marshal(dishes) error = %v", err)
	}

	return string(raw)
}

func seedOrder(id string, status order.Status) order.Order {
	return order.Order{
		ID:           id,
		DeliverTo:    "308 Negra Arroyo Lane",
		MobileNumber: "(505) 143-3369",
		Status:       status,
		Dishes: []orderitem.OrderItem{
			orderitem.New(payload.Payload{"id": "1", "name": "Taco", "price": 10, "quantity": 2}),
		},
	}
}

func TestCreate(t *testing.T) {
	svc, publisher := newService(t, seedOrder("3", order.StatusPending))

	o, err := svc.Create(context.Background(), decode(t, `{
		"id": "ignored",
		"deliverTo": "Rick Sanchez",
		"mobileNumber": "(202) 456-1111",
		"status": "preparing",
		"dishes": [{"id": "1", "name": "Taco", "price": 10, "quantity": 2}]
	}`))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if o.ID != "4" {
		t.Errorf("Create() id = %q, want \"4\"", o.ID)
	}
	if o.DeliverTo != "Rick Sanchez" || o.MobileNumber != "(202) 456-1111" {
		t.Errorf("Create() lost delivery details: %+v", o)
	}
	if o.Status != order.StatusPreparing {
		t.Errorf("Create() status = %q, want submitted \"preparing\"", o.Status)
	}
	if got := dishesJSON(t, o.Dishes); got != `[{"id":"1","name":"Taco","price":10,"quantity":2}]` {
		t.Errorf("Create() dishes = %s", got)
	}

	got, err := svc.Get(context.Background(), o.ID)
	if err != nil || got.ID != o.ID || got.DeliverTo != o.DeliverTo {
		t.Errorf("Get(%s) = %+v, %v", o.ID, got, err)
	}

	if len(publisher.events) != 1 || publisher.events[0].Type != event.OrderCreated {
		t.Errorf("published events = %+v, want one order.created", publisher.events)
	}
}

func TestLineItemsRoundTrip(t *testing.T) {
	const dishes = `[{"dishId":"3","id":3,"name":"Soup","note":"no onions","price":4.5,"quantity":2},` +
		`{"extras":{"sauce":["salsa"]},"quantity":1e19}]`

	svc, _ := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, decode(t, `{"deliverTo":"a","mobileNumber":"1","dishes":`+dishes+`}`))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get(%s) error = %v", created.ID, err)
	}
	if raw := dishesJSON(t, got.Dishes); raw != dishes {
		t.Errorf("stored dishes = %s, want %s", raw, dishes)
	}

	updated, err := svc.Update(ctx, created.ID,
		decode(t, `{"deliverTo":"a","mobileNumber":"1","status":"pending","dishes":`+dishes+`}`))
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if raw := dishesJSON(t, updated.Dishes); raw != dishes {
		t.Errorf("updated dishes = %s, want %s", raw, dishes)
	}
}

func TestCreateWithoutStatus(t *testing.T) {
	svc, _ := newService(t)

	o, err := svc.Create(context.Background(), decode(t,
		`{"deliverTo":"a","mobileNumber":"b","dishes":[{"quantity":1}]}`))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if o.Status != "" {
		t.Errorf("Create() status = %q, want none", o.Status)
	}
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		message string
	}{
		{
			name:    "missing deliverTo",
			raw:     `{"mobileNumber":"b","dishes":[{"quantity":1}]}`,
			message: "Must include a deliverTo",
		},
		{
			name:    "missing mobileNumber",
			raw:     `{"deliverTo":"a","dishes":[{"quantity":1}]}`,
			message: "Must include a mobileNumber",
		},
		{
			name:    "missing dishes",
			raw:     `{"deliverTo":"a","mobileNumber":"b"}`,
			message: "Must include a dishes",
		},
		{
			name:    "empty dishes",
			raw:     `{"deliverTo":"a","mobileNumber":"b","dishes":[]}`,
			message: "Order must include at least one dish",
		},
		{
			name:    "dishes not a list",
			raw:     `{"deliverTo":"a","mobileNumber":"b","dishes":"taco"}`,
			message: "Order must include at least one dish",
		},
		{
			name:    "zero quantity",
			raw:     `{"deliverTo":"a","mobileNumber":"b","dishes":[{"quantity":1},{"quantity":0}]}`,
			message: "Dish 1 must have a quantity that is an integer greater than 0",
		},
		{
			name:    "fractional quantity",
			raw:     `{"deliverTo":"a","mobileNumber":"b","dishes":[{"quantity":1.5}]}`,
			message: "Dish 0 must have a quantity that is an integer greater than 0",
		},
		{
			name:    "string quantity",
			raw:     `{"deliverTo":"a","mobileNumber":"b","dishes":[{"quantity":"2"}]}`,
			message: "Dish 0 must have a quantity that is an integer greater than 0",
		},
		{
			name:    "missing quantity",
			raw:     `{"deliverTo":"a","mobileNumber":"b","dishes":[{"id":"1"}]}`,
			message: "Dish 0 must have a quantity that is an integer greater than 0",
		},
		{
			name:    "line is not an object",
			raw:     `{"deliverTo":"a","mobileNumber":"b","dishes":[{"quantity":1},{"quantity":1},7]}`,
			message: "Dish 2 must have a quantity that is an integer greater than 0",
		},
		{
			name:    "first invalid line reported",
			raw:     `{"deliverTo":"a","mobileNumber":"b","dishes":[{"quantity":1},{"quantity":-1},{"quantity":0}]}`,
			message: "Dish 1 must have a quantity that is an integer greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(t)

			_, err := svc.Create(context.Background(), decode(t, tt.raw))
			if !errors.Is(err, errs.ErrInvalidInput) {
				t.Fatalf("Create() error = %v, want invalid input", err)
			}
			if err.Error() != tt.message {
				t.Errorf("Create() message = %q, want %q", err.Error(), tt.message)
			}

			if orders, _ := svc.List(context.Background()); len(orders) != 0 {
				t.Errorf("rejected order was stored: %+v", orders)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	const valid = `{"deliverTo":"New Place","mobileNumber":"555","status":"out-for-delivery","dishes":[{"id":"9","quantity":3}]}`

	tests := []struct {
		name    string
		stored  order.Status
		id      string
		raw     string
		kind    error
		message string
	}{
		{name: "valid", stored: order.StatusPending, id: "1", raw: valid},
		{
			name:   "matching id",
			stored: order.StatusPending,
			id:     "1",
			raw:    `{"id":"1","deliverTo":"New Place","mobileNumber":"555","status":"out-for-delivery","dishes":[{"id":"9","quantity":3}]}`,
		},
		{
			name:    "mismatched id",
			stored:  order.StatusPending,
			id:      "1",
			raw:     `{"id":"2","deliverTo":"New Place","mobileNumber":"555","status":"pending","dishes":[{"quantity":3}]}`,
			kind:    errs.ErrInvalidInput,
			message: "Order id does not match route id. Order: 2, Route: 1",
		},
		{
			name:    "missing status",
			stored:  order.StatusPending,
			id:      "1",
			raw:     `{"deliverTo":"New Place","mobileNumber":"555","dishes":[{"quantity":3}]}`,
			kind:    errs.ErrInvalidInput,
			message: "Order must have a status of pending, preparing, out-for-delivery, delivered",
		},
		{
			name:    "unknown status",
			stored:  order.StatusPending,
			id:      "1",
			raw:     `{"deliverTo":"New Place","mobileNumber":"555","status":"invalid","dishes":[{"quantity":3}]}`,
			kind:    errs.ErrInvalidInput,
			message: "Order must have a status of pending, preparing, out-for-delivery, delivered",
		},
		{
			name:    "dishes checked before status",
			stored:  order.StatusPending,
			id:      "1",
			raw:     `{"deliverTo":"New Place","mobileNumber":"555","status":"invalid","dishes":[]}`,
			kind:    errs.ErrInvalidInput,
			message: "Order must include at least one dish",
		},
		{
			name:    "delivered order is frozen",
			stored:  order.StatusDelivered,
			id:      "1",
			raw:     valid,
			kind:    errs.ErrInvalidInput,
			message: "A delivered order cannot be changed",
		},
		{
			name:    "missing order",
			stored:  order.StatusPending,
			id:      "7",
			raw:     valid,
			kind:    errs.ErrNotFound,
			message: "Order id not found: 7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed := seedOrder("1", tt.stored)
			svc, publisher := newService(t, seed)

			got, err := svc.Update(context.Background(), tt.id, decode(t, tt.raw))
			if tt.kind != nil {
				if !errors.Is(err, tt.kind) || err.Error() != tt.message {
					t.Fatalf("Update() error = %v, want %q", err, tt.message)
				}
				stored, _ := svc.Get(context.Background(), "1")
				if stored.DeliverTo != seed.DeliverTo || stored.Status != seed.Status {
					t.Errorf("rejected update changed the order: %+v", stored)
				}

				return
			}

			if err != nil {
				t.Fatalf("Update() error = %v", err)
			}
			want := order.Order{
				ID:           "1",
				DeliverTo:    "New Place",
				MobileNumber: "555",
				Status:       order.StatusOutForDelivery,
				Dishes:       []orderitem.OrderItem{orderitem.New(payload.Payload{"id": "9", "quantity": 3})},
			}
			stored, _ := svc.Get(context.Background(), "1")
			for _, o := range []order.Order{got, stored} {
				if o.ID != want.ID || o.DeliverTo != want.DeliverTo || o.MobileNumber != want.MobileNumber ||
					o.Status != want.Status || dishesJSON(t, o.Dishes) != dishesJSON(t, want.Dishes) {
					t.Errorf("order = %+v, want %+v", o, want)
				}
			}
			if len(publisher.events) != 1 || publisher.events[0].Type != event.OrderUpdated {
				t.Errorf("published events = %+v, want one order.updated", publisher.events)
			}
		})
	}
}

func TestDeliveredOnlyOnce(t *testing.T) {
	svc, _ := newService(t, seedOrder("1", order.StatusOutForDelivery))
	const deliver = `{"deliverTo":"a","mobileNumber":"b","status":"delivered","dishes":[{"quantity":1}]}`

	o, err := svc.Update(context.Background(), "1", decode(t, deliver))
	if err != nil {
		t.Fatalf("first Update() to delivered error = %v", err)
	}
	if o.Status != order.StatusDelivered {
		t.Fatalf("status = %q, want delivered", o.Status)
	}

	_, err = svc.Update(context.Background(), "1", decode(t, deliver))
	if !errors.Is(err, errs.ErrInvalidInput) || err.Error() != "A delivered order cannot be changed" {
		t.Errorf("second Update() error = %v, want delivered rejection", err)
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name    string
		stored  order.Status
		id      string
		kind    error
		message string
	}{
		{name: "pending", stored: order.StatusPending, id: "1"},
		{
			name:    "preparing",
			stored:  order.StatusPreparing,
			id:      "1",
			kind:    errs.ErrInvalidInput,
			message: "An order cannot be deleted unless it is pending",
		},
		{
			name:    "out for delivery",
			stored:  order.StatusOutForDelivery,
			id:      "1",
			kind:    errs.ErrInvalidInput,
			message: "An order cannot be deleted unless it is pending",
		},
		{
			name:    "missing",
			stored:  order.StatusPending,
			id:      "5",
			kind:    errs.ErrNotFound,
			message: "Order id not found: 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, publisher := newService(t, seedOrder("1", tt.stored), seedOrder("2", order.StatusPending))

			err := svc.Delete(context.Background(), tt.id)
			orders, _ := svc.List(context.Background())

			if tt.kind != nil {
				if !errors.Is(err, tt.kind) || err.Error() != tt.message {
					t.Fatalf("Delete() error = %v, want %q", err, tt.message)
				}
				if len(orders) != 2 {
					t.Errorf("rejected delete removed an order: %+v", orders)
				}

				return
			}

			if err != nil {
				t.Fatalf("Delete() error = %v", err)
			}
			if len(orders) != 1 || orders[0].ID != "2" {
				t.Errorf("List() after delete = %+v, want only order 2", orders)
			}
			if len(publisher.events) != 1 || publisher.events[0].Type != event.OrderDeleted ||
				publisher.events[0].ResourceID != "1" {
				t.Errorf("published events = %+v, want order.deleted for 1", publisher.events)
			}
		})
	}
}

func TestMustNewOrderServicePanicsWithoutRepository(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNewOrderService() without repository did not panic")
		}
	}()

	MustNewOrderService(WithIDGenerator(idgen.New()))
}
