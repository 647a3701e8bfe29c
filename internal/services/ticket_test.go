package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventify/internal/models"
	"eventify/internal/services"
	"eventify/internal/storage"
)

func newTicketFixture(t *testing.T) (*services.TicketService, *services.OrderService, *storage.InMemoryStore, *recordingProducer) {
	store := storage.NewInMemoryStore()
	producer := &recordingProducer{}
	log := newTestLogger(t)
	return services.NewTicketService(store, producer, log),
		services.NewOrderService(store, producer, log),
		store, producer
}

func TestListTicketsProjectsOrderItems(t *testing.T) {
	tickets, orders, store, _ := newTicketFixture(t)
	user := seedUser(t, store, "buyer@example.com")
	concert := seedEvent(t, store, "Concert", 10)

	order, err := orders.CreateOrder(context.Background(), user, &models.OrderCreateRequest{
		Items:    []models.OrderItemRequest{{EventID: concert.ID, Quantity: 3, Price: 10}},
		Customer: models.CustomerInfo{Name: "Buyer", Email: "buyer@example.com", Phone: "555-0101"},
		Total:    30,
	})
	require.NoError(t, err)

	list, err := tickets.ListTickets(user)
	require.NoError(t, err)
	require.Len(t, list, 1)

	ticket := list[0]
	assert.Equal(t, order.Items[0].ID, ticket.ID, "ticket id is the order item id")
	assert.Equal(t, concert.ID, ticket.Event.ID)
	assert.Equal(t, "Concert", ticket.Event.Title)
	assert.Equal(t, 3, ticket.Quantity)
	assert.Equal(t, 30.0, ticket.TotalPrice, "total is unit price times quantity")
	assert.Equal(t, models.TicketTypeStandard, ticket.TicketType)
	assert.Equal(t, models.TicketStatusActive, ticket.Status)
	assert.Equal(t, "Buyer", ticket.Attendee.Name)
	assert.Equal(t, "555-0101", ticket.Attendee.Phone)
}

func TestListTicketsSkipsDeletedEvents(t *testing.T) {
	tickets, orders, store, _ := newTicketFixture(t)
	user := seedUser(t, store, "buyer@example.com")
	concert := seedEvent(t, store, "Concert", 10)
	workshop := seedEvent(t, store, "Workshop", 20)

	_, err := orders.CreateOrder(context.Background(), user, &models.OrderCreateRequest{
		Items: []models.OrderItemRequest{
			{EventID: concert.ID, Quantity: 1, Price: 10},
			{EventID: workshop.ID, Quantity: 1, Price: 20},
		},
		Customer: models.CustomerInfo{Name: "Buyer", Email: "buyer@example.com"},
		Total:    30,
	})
	require.NoError(t, err)

	// Removing an event leaves dangling items; the listing skips them
	require.NoError(t, store.DeleteEvent(concert.ID))

	list, err := tickets.ListTickets(user)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, workshop.ID, list[0].Event.ID)
}

func TestCancelTicket(t *testing.T) {
	tickets, orders, store, producer := newTicketFixture(t)
	user := seedUser(t, store, "buyer@example.com")
	concert := seedEvent(t, store, "Concert", 10)

	order, err := orders.CreateOrder(context.Background(), user, &models.OrderCreateRequest{
		Items:    []models.OrderItemRequest{{EventID: concert.ID, Quantity: 1, Price: 10}},
		Customer: models.CustomerInfo{Name: "Buyer", Email: "buyer@example.com"},
		Total:    10,
	})
	require.NoError(t, err)
	itemID := order.Items[0].ID

	require.NoError(t, tickets.CancelTicket(user, itemID))

	list, err := tickets.ListTickets(user)
	require.NoError(t, err)
	assert.Empty(t, list)

	events := producer.published()
	require.Len(t, events, 2)
	assert.Equal(t, "ticket.cancelled", events[1].Type)
}

func TestCancelTicketForbiddenForOthers(t *testing.T) {
	tickets, orders, store, _ := newTicketFixture(t)
	owner := seedUser(t, store, "owner@example.com")
	other := seedUser(t, store, "other@example.com")
	concert := seedEvent(t, store, "Concert", 10)

	order, err := orders.CreateOrder(context.Background(), owner, &models.OrderCreateRequest{
		Items:    []models.OrderItemRequest{{EventID: concert.ID, Quantity: 1, Price: 10}},
		Customer: models.CustomerInfo{Name: "Owner", Email: "owner@example.com"},
		Total:    10,
	})
	require.NoError(t, err)

	err = tickets.CancelTicket(other, order.Items[0].ID)
	assert.ErrorIs(t, err, services.ErrForbidden)

	// The ticket survives the rejected attempt
	list, err := tickets.ListTickets(owner)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCancelTicketNotFound(t *testing.T) {
	tickets, _, store, _ := newTicketFixture(t)
	user := seedUser(t, store, "buyer@example.com")

	err := tickets.CancelTicket(user, 9999)
	assert.ErrorIs(t, err, services.ErrTicketNotFound)
}
