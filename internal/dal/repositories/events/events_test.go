package events

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/corray333/grubdash/internal/service/models/dish"
	"github.com/corray333/grubdash/internal/service/models/event"
	"github.com/streadway/amqp"
)

type sent struct {
	exchange, key string
	msg           amqp.Publishing
}

type fakeChannel struct {
	mu   sync.Mutex
	sent []sent
	err  error
}

func (c *fakeChannel) Publish(exchange, key string, _, _ bool, msg amqp.Publishing) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, sent{exchange: exchange, key: key, msg: msg})

	return nil
}

func TestPublishToQueue(t *testing.T) {
	ch := &fakeChannel{}
	repo := newRepository(ch, "", "grubdash.events")

	e := event.New(event.DishCreated, "1", dish.Dish{ID: "1", Name: "Taco", Price: 10})
	if err := repo.Publish(context.Background(), e); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	if len(ch.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(ch.sent))
	}
	got := ch.sent[0]
	if got.exchange != "" || got.key != "grubdash.events" {
		t.Errorf("routed to %q/%q, want default exchange and queue key", got.exchange, got.key)
	}
	if got.msg.MessageId != e.ID || got.msg.Type != "dish.created" || got.msg.ContentType != "application/json" {
		t.Errorf("publishing headers = %+v", got.msg)
	}

	var decoded struct {
		Type       string    `json:"type"`
		ResourceID string    `json:"resourceId"`
		Data       dish.Dish `json:"data"`
	}
	if err := json.Unmarshal(got.msg.Body, &decoded); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if decoded.Type != "dish.created" || decoded.ResourceID != "1" || decoded.Data.Name != "Taco" {
		t.Errorf("body = %+v", decoded)
	}
}

func TestPublishToExchangeUsesEventType(t *testing.T) {
	ch := &fakeChannel{}
	repo := newRepository(ch, "grubdash", "grubdash.events")

	err := repo.Publish(context.Background(),
		event.New(event.OrderCreated, "1", nil),
		event.New(event.OrderDeleted, "1", nil),
	)
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	keys := map[string]bool{}
	for _, s := range ch.sent {
		if s.exchange != "grubdash" {
			t.Errorf("exchange = %q, want grubdash", s.exchange)
		}
		keys[s.key] = true
	}
	if !keys["order.created"] || !keys["order.deleted"] {
		t.Errorf("routing keys = %v", keys)
	}
}

func TestPublishFailure(t *testing.T) {
	broken := errors.New("channel closed")
	repo := newRepository(&fakeChannel{err: broken}, "", "q")

	if err := repo.Publish(context.Background(), event.New(event.DishUpdated, "1", nil)); !errors.Is(err, broken) {
		t.Errorf("Publish() error = %v, want %v", err, broken)
	}
}
