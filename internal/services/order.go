package services

import (
	"context"
	"fmt"
	"time"

	"eventify/internal/logger"
	"eventify/internal/models"
	"eventify/internal/storage"
)

// OrderProducer publishes order lifecycle events to the message bus.
type OrderProducer interface {
	PublishOrderEvent(event *models.OrderEvent) error
}

type OrderService struct {
	store    storage.Store
	producer OrderProducer
	log      *logger.Logger
}

func NewOrderService(store storage.Store, producer OrderProducer, log *logger.Logger) *OrderService {
	return &OrderService{
		store:    store,
		producer: producer,
		log:      log,
	}
}

// CreateOrder materializes a multi-line purchase atomically. Any item naming
// a non-existent event aborts the whole order; the returned error names the
// missing event id and wraps ErrEventNotFound. The total is stored exactly
// as supplied by the caller.
func (s *OrderService) CreateOrder(ctx context.Context, user *models.User, req *models.OrderCreateRequest) (*models.Order, error) {
	s.log.LogOrder("INIT", "new", fmt.Sprintf("Creating order for user %d with %d items", user.ID, len(req.Items)))

	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
	}

	order := &models.Order{
		UserID:       user.ID,
		Total:        req.Total,
		Status:       models.OrderStatusCompleted,
		CustomerInfo: req.Customer,
	}

	items := make([]*models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, &models.OrderItem{
			EventID:  item.EventID,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	if err := s.store.CreateOrder(order, items); err != nil {
		s.log.LogOrder("FAILED", "new", fmt.Sprintf("Order for user %d rolled back: %v", user.ID, err))
		return nil, err
	}

	s.log.LogOrder("CREATED", fmt.Sprintf("%d", order.ID), fmt.Sprintf("Order committed with %d items, total %.2f", len(items), order.Total))
	s.publishOrderEvent("order.created", order)
	return order, nil
}

// ListOrders returns only orders owned by the caller.
func (s *OrderService) ListOrders(user *models.User) ([]*models.Order, error) {
	return s.store.ListOrdersByUser(user.ID)
}

// GetOrder returns the order only to its owner. An order belonging to
// someone else reports ErrOrderNotFound, indistinguishable from a
// non-existent id, so order ids cannot be probed for existence.
func (s *OrderService) GetOrder(user *models.User, orderID int64) (*models.Order, error) {
	order, err := s.store.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != user.ID {
		s.log.LogSecurity("ORDER_ACCESS", fmt.Sprintf("User %d probed order %d owned by %d", user.ID, orderID, order.UserID))
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) publishOrderEvent(eventType string, order *models.Order) {
	if s.producer == nil {
		return
	}

	event := &models.OrderEvent{
		Type:      eventType,
		OrderID:   order.ID,
		UserID:    order.UserID,
		Order:     order,
		Timestamp: time.Now(),
	}

	if err := s.producer.PublishOrderEvent(event); err != nil {
		// Order is already committed; a bus failure must not undo it.
		s.log.Error("KAFKA", fmt.Sprintf("Failed to publish %s for order %d: %v", eventType, order.ID, err))
	}
}
