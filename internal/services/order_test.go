package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventify/internal/models"
	"eventify/internal/services"
	"eventify/internal/storage"
)

// recordingProducer captures published order events for assertions.
type recordingProducer struct {
	mu     sync.Mutex
	events []*models.OrderEvent
}

func (p *recordingProducer) PublishOrderEvent(event *models.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingProducer) published() []*models.OrderEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*models.OrderEvent(nil), p.events...)
}

func seedEvent(t *testing.T, store *storage.InMemoryStore, title string, price float64) *models.Event {
	t.Helper()
	event := &models.Event{
		Title:       title,
		StartDate:   time.Now().Add(24 * time.Hour),
		EndDate:     time.Now().Add(26 * time.Hour),
		Location:    "Main Hall",
		Price:       price,
		IsPublished: true,
		CategoryID:  1,
	}
	require.NoError(t, store.CreateEvent(event))
	return event
}

func seedUser(t *testing.T, store *storage.InMemoryStore, email string) *models.User {
	t.Helper()
	user := &models.User{
		Email:          email,
		Name:           "Test User",
		HashedPassword: "irrelevant",
		Role:           models.RoleUser,
		IsActive:       true,
	}
	require.NoError(t, store.CreateUser(user))
	return user
}

func newOrderService(t *testing.T) (*services.OrderService, *storage.InMemoryStore, *recordingProducer) {
	store := storage.NewInMemoryStore()
	producer := &recordingProducer{}
	return services.NewOrderService(store, producer, newTestLogger(t)), store, producer
}

func TestCreateOrderMultipleItems(t *testing.T) {
	svc, store, producer := newOrderService(t)
	user := seedUser(t, store, "buyer@example.com")
	concert := seedEvent(t, store, "Concert", 50)
	workshop := seedEvent(t, store, "Workshop", 20)

	order, err := svc.CreateOrder(context.Background(), user, &models.OrderCreateRequest{
		Items: []models.OrderItemRequest{
			{EventID: concert.ID, Quantity: 2, Price: 50},
			{EventID: workshop.ID, Quantity: 1, Price: 20},
		},
		Customer: models.CustomerInfo{Name: "Buyer", Email: "buyer@example.com"},
		Total:    120,
	})
	require.NoError(t, err)

	assert.NotZero(t, order.ID)
	assert.Equal(t, user.ID, order.UserID)
	assert.Equal(t, models.OrderStatusCompleted, order.Status)
	assert.Equal(t, 120.0, order.Total, "total is stored as supplied, never recomputed")
	require.Len(t, order.Items, 2)
	assert.Equal(t, concert.ID, order.Items[0].EventID)
	assert.Equal(t, 2, order.Items[0].Quantity)

	events := producer.published()
	require.Len(t, events, 1)
	assert.Equal(t, "order.created", events[0].Type)
	assert.Equal(t, order.ID, events[0].OrderID)
}

func TestCreateOrderMissingEventRollsBack(t *testing.T) {
	svc, store, producer := newOrderService(t)
	user := seedUser(t, store, "buyer@example.com")
	concert := seedEvent(t, store, "Concert", 50)

	_, err := svc.CreateOrder(context.Background(), user, &models.OrderCreateRequest{
		Items: []models.OrderItemRequest{
			{EventID: concert.ID, Quantity: 1, Price: 50},
			{EventID: 9999, Quantity: 1, Price: 10},
		},
		Customer: models.CustomerInfo{Name: "Buyer", Email: "buyer@example.com"},
		Total:    60,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrEventNotFound)
	assert.Contains(t, err.Error(), "9999", "error names the missing event")

	// Nothing from the failed order may survive
	orders, err := store.ListOrdersByUser(user.ID)
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.Empty(t, producer.published())
}

func TestCreateOrderValidation(t *testing.T) {
	svc, store, _ := newOrderService(t)
	user := seedUser(t, store, "buyer@example.com")
	concert := seedEvent(t, store, "Concert", 50)

	_, err := svc.CreateOrder(context.Background(), user, &models.OrderCreateRequest{
		Customer: models.CustomerInfo{Name: "Buyer", Email: "buyer@example.com"},
	})
	assert.ErrorIs(t, err, services.ErrEmptyOrder)

	_, err = svc.CreateOrder(context.Background(), user, &models.OrderCreateRequest{
		Items:    []models.OrderItemRequest{{EventID: concert.ID, Quantity: 0, Price: 50}},
		Customer: models.CustomerInfo{Name: "Buyer", Email: "buyer@example.com"},
	})
	assert.ErrorIs(t, err, services.ErrInvalidQuantity)
}

func TestGetOrderHidesForeignOrders(t *testing.T) {
	svc, store, _ := newOrderService(t)
	owner := seedUser(t, store, "owner@example.com")
	other := seedUser(t, store, "other@example.com")
	concert := seedEvent(t, store, "Concert", 50)

	order, err := svc.CreateOrder(context.Background(), owner, &models.OrderCreateRequest{
		Items:    []models.OrderItemRequest{{EventID: concert.ID, Quantity: 1, Price: 50}},
		Customer: models.CustomerInfo{Name: "Owner", Email: "owner@example.com"},
		Total:    50,
	})
	require.NoError(t, err)

	got, err := svc.GetOrder(owner, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	// A foreign order must look exactly like a missing one
	_, err = svc.GetOrder(other, order.ID)
	assert.ErrorIs(t, err, services.ErrOrderNotFound)

	_, err = svc.GetOrder(owner, 9999)
	assert.ErrorIs(t, err, services.ErrOrderNotFound)
}

func TestListOrdersOnlyOwn(t *testing.T) {
	svc, store, _ := newOrderService(t)
	alice := seedUser(t, store, "alice@example.com")
	bob := seedUser(t, store, "bob@example.com")
	concert := seedEvent(t, store, "Concert", 50)

	_, err := svc.CreateOrder(context.Background(), alice, &models.OrderCreateRequest{
		Items:    []models.OrderItemRequest{{EventID: concert.ID, Quantity: 1, Price: 50}},
		Customer: models.CustomerInfo{Name: "Alice", Email: "alice@example.com"},
		Total:    50,
	})
	require.NoError(t, err)

	aliceOrders, err := svc.ListOrders(alice)
	require.NoError(t, err)
	assert.Len(t, aliceOrders, 1)

	bobOrders, err := svc.ListOrders(bob)
	require.NoError(t, err)
	assert.Empty(t, bobOrders)
}
