package services

import (
	"errors"
	"fmt"
	"time"

	"eventify/internal/logger"
	"eventify/internal/models"
	"eventify/internal/storage"
)

// TicketService projects tickets out of order items. Tickets are never
// stored; a ticket id is the order item id.
type TicketService struct {
	store    storage.Store
	producer OrderProducer
	log      *logger.Logger
}

func NewTicketService(store storage.Store, producer OrderProducer, log *logger.Logger) *TicketService {
	return &TicketService{
		store:    store,
		producer: producer,
		log:      log,
	}
}

// ListTickets derives one ticket per order item across the caller's orders,
// in order-then-item insertion order. Items whose event has since been
// removed are skipped rather than failing the whole listing.
func (s *TicketService) ListTickets(user *models.User) ([]*models.Ticket, error) {
	orders, err := s.store.ListOrdersByUser(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	tickets := make([]*models.Ticket, 0)
	for _, order := range orders {
		for _, item := range order.Items {
			event, err := s.store.GetEvent(item.EventID)
			if err != nil {
				if errors.Is(err, storage.ErrEventNotFound) {
					s.log.Warn("TICKET", fmt.Sprintf("Event %d gone for order item %d, skipping", item.EventID, item.ID))
					continue
				}
				return nil, fmt.Errorf("failed to load event %d: %w", item.EventID, err)
			}

			tickets = append(tickets, &models.Ticket{
				ID: item.ID,
				Event: models.TicketEventInfo{
					ID:       event.ID,
					Title:    event.Title,
					Date:     event.StartDate,
					Location: event.Location,
				},
				Quantity:     item.Quantity,
				TicketType:   models.TicketTypeStandard,
				TotalPrice:   item.Price * float64(item.Quantity),
				Status:       models.TicketStatusActive,
				PurchaseDate: order.CreatedAt,
				Attendee: models.TicketAttendeeInfo{
					Name:  order.CustomerInfo.Name,
					Email: order.CustomerInfo.Email,
					Phone: order.CustomerInfo.Phone,
				},
			})
		}
	}
	return tickets, nil
}

// CancelTicket deletes the backing order item outright; there is no retained
// cancelled state. Only the owner of the parent order may cancel.
func (s *TicketService) CancelTicket(user *models.User, ticketID int64) error {
	item, err := s.store.GetOrderItem(ticketID)
	if err != nil {
		return err
	}

	order, err := s.store.GetOrder(item.OrderID)
	if err != nil {
		return fmt.Errorf("failed to load order %d: %w", item.OrderID, err)
	}
	if order.UserID != user.ID {
		s.log.LogSecurity("TICKET_CANCEL", fmt.Sprintf("User %d tried to cancel ticket %d owned by %d", user.ID, ticketID, order.UserID))
		return ErrForbidden
	}

	if err := s.store.DeleteOrderItem(ticketID); err != nil {
		return err
	}

	s.log.LogOrder("CANCEL", fmt.Sprintf("%d", order.ID), fmt.Sprintf("Ticket %d cancelled by user %d", ticketID, user.ID))
	if s.producer != nil {
		event := &models.OrderEvent{
			Type:      "ticket.cancelled",
			OrderID:   order.ID,
			UserID:    user.ID,
			Timestamp: time.Now(),
		}
		if err := s.producer.PublishOrderEvent(event); err != nil {
			s.log.Error("KAFKA", fmt.Sprintf("Failed to publish ticket.cancelled for item %d: %v", ticketID, err))
		}
	}
	return nil
}
