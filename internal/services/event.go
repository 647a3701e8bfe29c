package services

import (
	"context"
	"fmt"

	"eventify/internal/logger"
	"eventify/internal/models"
	"eventify/internal/storage"
)

// EventCache is the read-through cache in front of single-event lookups.
type EventCache interface {
	GetEvent(ctx context.Context, id int64) (*models.Event, bool)
	SetEvent(ctx context.Context, event *models.Event)
	InvalidateEvent(ctx context.Context, id int64)
}

type EventService struct {
	store storage.Store
	cache EventCache
	log   *logger.Logger
}

func NewEventService(store storage.Store, cache EventCache, log *logger.Logger) *EventService {
	return &EventService{
		store: store,
		cache: cache,
		log:   log,
	}
}

// Create persists a new event owned by the calling organizer. The category
// must exist and the schedule window must be ordered.
func (s *EventService) Create(organizer *models.User, req *models.EventCreateRequest) (*models.Event, error) {
	if !req.StartDate.Before(req.EndDate) {
		return nil, ErrInvalidDates
	}
	if _, err := s.store.GetCategory(req.CategoryID); err != nil {
		return nil, err
	}

	published := true
	if req.IsPublished != nil {
		published = *req.IsPublished
	}

	event := &models.Event{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Location:    req.Location,
		Capacity:    req.Capacity,
		Price:       req.Price,
		IsPublished: published,
		OrganizerID: organizer.ID,
		CategoryID:  req.CategoryID,
	}

	if err := s.store.CreateEvent(event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.log.LogProcess("EVENT", fmt.Sprintf("Event %d %q created by user %d", event.ID, event.Title, organizer.ID))
	return event, nil
}

func (s *EventService) Get(ctx context.Context, id int64) (*models.Event, error) {
	if s.cache != nil {
		if event, ok := s.cache.GetEvent(ctx, id); ok {
			return event, nil
		}
	}

	event, err := s.store.GetEvent(id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetEvent(ctx, event)
	}
	return event, nil
}

func (s *EventService) List(filter models.EventFilter) ([]*models.Event, error) {
	return s.store.ListEvents(filter)
}

// Update merges the typed partial request into the stored event. The date
// invariant is revalidated against the merged values.
func (s *EventService) Update(ctx context.Context, id int64, req *models.EventUpdateRequest) (*models.Event, error) {
	event, err := s.store.GetEvent(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.StartDate != nil {
		event.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		event.EndDate = *req.EndDate
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Capacity != nil {
		event.Capacity = req.Capacity
	}
	if req.Price != nil {
		event.Price = *req.Price
	}
	if req.IsPublished != nil {
		event.IsPublished = *req.IsPublished
	}
	if req.CategoryID != nil {
		if _, err := s.store.GetCategory(*req.CategoryID); err != nil {
			return nil, err
		}
		event.CategoryID = *req.CategoryID
	}

	if !event.StartDate.Before(event.EndDate) {
		return nil, ErrInvalidDates
	}

	if err := s.store.UpdateEvent(event); err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.InvalidateEvent(ctx, id)
	}
	return event, nil
}

func (s *EventService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteEvent(id); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.InvalidateEvent(ctx, id)
	}
	s.log.LogProcess("EVENT", fmt.Sprintf("Event %d deleted", id))
	return nil
}
