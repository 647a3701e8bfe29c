package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Event struct {
	bun.BaseModel `bun:"table:events"`

	ID          int64     `json:"id" bun:"id,pk,autoincrement"`
	Title       string    `json:"title" bun:"title,notnull"`
	Description string    `json:"description" bun:"description"`
	StartDate   time.Time `json:"start_date" bun:"start_date,notnull"`
	EndDate     time.Time `json:"end_date" bun:"end_date,notnull"`
	Location    string    `json:"location" bun:"location"`
	Capacity    *int      `json:"capacity,omitempty" bun:"capacity"`
	Price       float64   `json:"price" bun:"price"`
	IsPublished bool      `json:"is_published" bun:"is_published"`
	OrganizerID int64     `json:"organizer_id" bun:"organizer_id"`
	CategoryID  int64     `json:"category_id" bun:"category_id"`
}

type EventCreateRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
	Location    string    `json:"location"`
	Capacity    *int      `json:"capacity,omitempty"`
	Price       float64   `json:"price"`
	IsPublished *bool     `json:"is_published,omitempty"`
	CategoryID  int64     `json:"category_id" binding:"required"`
}

// EventUpdateRequest is a typed partial update: nil fields are left untouched.
type EventUpdateRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Location    *string    `json:"location,omitempty"`
	Capacity    *int       `json:"capacity,omitempty"`
	Price       *float64   `json:"price,omitempty"`
	IsPublished *bool      `json:"is_published,omitempty"`
	CategoryID  *int64     `json:"category_id,omitempty"`
}

// EventFilter narrows ListEvents; zero values mean no constraint.
type EventFilter struct {
	CategoryID  int64
	OrganizerID int64
	StartAfter  time.Time
	EndBefore   time.Time
	PriceMin    *float64
	PriceMax    *float64
	Search      string
	Offset      int
	Limit       int
}
