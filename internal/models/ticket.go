package models

import "time"

// Tickets are a read projection over order items; nothing below is ever
// persisted. The ticket id is the order item id.
const (
	TicketTypeStandard = "Standard"
	TicketStatusActive = "active"
)

type TicketEventInfo struct {
	ID       int64     `json:"id"`
	Title    string    `json:"title"`
	Date     time.Time `json:"date"`
	Location string    `json:"location"`
}

type TicketAttendeeInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type Ticket struct {
	ID           int64              `json:"id"`
	Event        TicketEventInfo    `json:"event"`
	Quantity     int                `json:"quantity"`
	TicketType   string             `json:"ticketType"`
	TotalPrice   float64            `json:"totalPrice"`
	Status       string             `json:"status"`
	PurchaseDate time.Time          `json:"purchaseDate"`
	Attendee     TicketAttendeeInfo `json:"attendee"`
}
