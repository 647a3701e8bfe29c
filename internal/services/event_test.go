package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventify/internal/models"
	"eventify/internal/services"
	"eventify/internal/storage"
)

// fakeCache is an in-process EventCache that counts lookups.
type fakeCache struct {
	entries map[int64]*models.Event
	hits    int
	misses  int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[int64]*models.Event)}
}

func (c *fakeCache) GetEvent(_ context.Context, id int64) (*models.Event, bool) {
	event, ok := c.entries[id]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return event, ok
}

func (c *fakeCache) SetEvent(_ context.Context, event *models.Event) {
	c.entries[event.ID] = event
}

func (c *fakeCache) InvalidateEvent(_ context.Context, id int64) {
	delete(c.entries, id)
}

func newEventFixture(t *testing.T) (*services.EventService, *storage.InMemoryStore, *fakeCache, *models.User, *models.Category) {
	store := storage.NewInMemoryStore()
	cache := newFakeCache()
	svc := services.NewEventService(store, cache, newTestLogger(t))

	organizer := seedUser(t, store, "organizer@example.com")
	category := &models.Category{Name: "Music", Color: "#ff0000"}
	require.NoError(t, store.CreateCategory(category))

	return svc, store, cache, organizer, category
}

func TestEventCreateValidatesDates(t *testing.T) {
	svc, _, _, organizer, category := newEventFixture(t)
	now := time.Now()

	_, err := svc.Create(organizer, &models.EventCreateRequest{
		Title:      "Backwards",
		StartDate:  now.Add(2 * time.Hour),
		EndDate:    now.Add(time.Hour),
		CategoryID: category.ID,
	})
	assert.ErrorIs(t, err, services.ErrInvalidDates)
}

func TestEventCreateUnknownCategory(t *testing.T) {
	svc, _, _, organizer, _ := newEventFixture(t)
	now := time.Now()

	_, err := svc.Create(organizer, &models.EventCreateRequest{
		Title:      "Orphan",
		StartDate:  now.Add(time.Hour),
		EndDate:    now.Add(2 * time.Hour),
		CategoryID: 9999,
	})
	assert.ErrorIs(t, err, services.ErrCategoryNotFound)
}

func TestEventGetReadsThroughCache(t *testing.T) {
	svc, _, cache, organizer, category := newEventFixture(t)
	now := time.Now()

	event, err := svc.Create(organizer, &models.EventCreateRequest{
		Title:      "Concert",
		StartDate:  now.Add(time.Hour),
		EndDate:    now.Add(2 * time.Hour),
		CategoryID: category.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, organizer.ID, event.OrganizerID)
	assert.True(t, event.IsPublished, "events default to published")

	ctx := context.Background()
	first, err := svc.Get(ctx, event.ID)
	require.NoError(t, err)
	second, err := svc.Get(ctx, event.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, cache.misses, "first read misses and populates")
	assert.Equal(t, 1, cache.hits, "second read is served from cache")
}

func TestEventUpdateInvalidatesCache(t *testing.T) {
	svc, _, _, organizer, category := newEventFixture(t)
	now := time.Now()
	ctx := context.Background()

	event, err := svc.Create(organizer, &models.EventCreateRequest{
		Title:      "Concert",
		StartDate:  now.Add(time.Hour),
		EndDate:    now.Add(2 * time.Hour),
		CategoryID: category.ID,
	})
	require.NoError(t, err)

	_, err = svc.Get(ctx, event.ID)
	require.NoError(t, err)

	title := "Renamed"
	updated, err := svc.Update(ctx, event.ID, &models.EventUpdateRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, event.StartDate.Unix(), updated.StartDate.Unix(), "untouched fields survive the merge")

	got, err := svc.Get(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title, "stale cache entry was dropped")
}

func TestEventUpdateRevalidatesDates(t *testing.T) {
	svc, _, _, organizer, category := newEventFixture(t)
	now := time.Now()
	ctx := context.Background()

	event, err := svc.Create(organizer, &models.EventCreateRequest{
		Title:      "Concert",
		StartDate:  now.Add(time.Hour),
		EndDate:    now.Add(2 * time.Hour),
		CategoryID: category.ID,
	})
	require.NoError(t, err)

	badEnd := now.Add(30 * time.Minute)
	_, err = svc.Update(ctx, event.ID, &models.EventUpdateRequest{EndDate: &badEnd})
	assert.ErrorIs(t, err, services.ErrInvalidDates)
}

func TestCategoryDeleteGuardedByUsage(t *testing.T) {
	store := storage.NewInMemoryStore()
	log := newTestLogger(t)
	categories := services.NewCategoryService(store, log)
	events := services.NewEventService(store, nil, log)
	organizer := seedUser(t, store, "organizer@example.com")

	category, err := categories.Create(&models.CategoryCreateRequest{Name: "Music"})
	require.NoError(t, err)

	now := time.Now()
	event, err := events.Create(organizer, &models.EventCreateRequest{
		Title:      "Concert",
		StartDate:  now.Add(time.Hour),
		EndDate:    now.Add(2 * time.Hour),
		CategoryID: category.ID,
	})
	require.NoError(t, err)

	err = categories.Delete(category.ID)
	assert.ErrorIs(t, err, services.ErrCategoryInUse)

	require.NoError(t, events.Delete(context.Background(), event.ID))
	assert.NoError(t, categories.Delete(category.ID))
}

func TestCategoryDuplicateName(t *testing.T) {
	store := storage.NewInMemoryStore()
	categories := services.NewCategoryService(store, newTestLogger(t))

	_, err := categories.Create(&models.CategoryCreateRequest{Name: "Music"})
	require.NoError(t, err)

	_, err = categories.Create(&models.CategoryCreateRequest{Name: "Music"})
	assert.ErrorIs(t, err, services.ErrCategoryNameTaken)
}
