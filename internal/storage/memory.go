package storage

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"eventify/internal/models"
)

// InMemoryStore is the map-backed Store used in tests and mock mode. It keeps
// the same atomicity contract as the MySQL store: CreateOrder validates every
// event before any write becomes visible.
type InMemoryStore struct {
	mutex sync.RWMutex

	users      map[int64]*models.User
	categories map[int64]*models.Category
	events     map[int64]*models.Event
	orders     map[int64]*models.Order
	orderItems map[int64]*models.OrderItem

	nextUserID      int64
	nextCategoryID  int64
	nextEventID     int64
	nextOrderID     int64
	nextOrderItemID int64
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		users:      make(map[int64]*models.User),
		categories: make(map[int64]*models.Category),
		events:     make(map[int64]*models.Event),
		orders:     make(map[int64]*models.Order),
		orderItems: make(map[int64]*models.OrderItem),
	}
}

// ---- Users ----

func (s *InMemoryStore) CreateUser(user *models.User) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email {
			return ErrDuplicateEmail
		}
	}

	s.nextUserID++
	user.ID = s.nextUserID
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *InMemoryStore) GetUserByID(id int64) (*models.User, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *InMemoryStore) GetUserByEmail(email string) (*models.User, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *InMemoryStore) ListUsers(offset, limit int) ([]*models.User, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	ids := make([]int64, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var users []*models.User
	for i, id := range ids {
		if i < offset {
			continue
		}
		if limit > 0 && len(users) >= limit {
			break
		}
		copied := *s.users[id]
		users = append(users, &copied)
	}
	return users, nil
}

func (s *InMemoryStore) UpdateUser(user *models.User) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return ErrUserNotFound
	}
	for _, existing := range s.users {
		if existing.Email == user.Email && existing.ID != user.ID {
			return ErrDuplicateEmail
		}
	}
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *InMemoryStore) DeleteUser(id int64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.users[id]; !ok {
		return ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

// ---- Categories ----

func (s *InMemoryStore) CreateCategory(category *models.Category) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, existing := range s.categories {
		if existing.Name == category.Name {
			return ErrDuplicateCategory
		}
	}

	s.nextCategoryID++
	category.ID = s.nextCategoryID
	copied := *category
	s.categories[category.ID] = &copied
	return nil
}

func (s *InMemoryStore) GetCategory(id int64) (*models.Category, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	category, ok := s.categories[id]
	if !ok {
		return nil, ErrCategoryNotFound
	}
	copied := *category
	return &copied, nil
}

func (s *InMemoryStore) ListCategories(offset, limit int) ([]*models.Category, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	ids := make([]int64, 0, len(s.categories))
	for id := range s.categories {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var categories []*models.Category
	for i, id := range ids {
		if i < offset {
			continue
		}
		if limit > 0 && len(categories) >= limit {
			break
		}
		copied := *s.categories[id]
		categories = append(categories, &copied)
	}
	return categories, nil
}

func (s *InMemoryStore) UpdateCategory(category *models.Category) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.categories[category.ID]; !ok {
		return ErrCategoryNotFound
	}
	for _, existing := range s.categories {
		if existing.Name == category.Name && existing.ID != category.ID {
			return ErrDuplicateCategory
		}
	}
	copied := *category
	s.categories[category.ID] = &copied
	return nil
}

func (s *InMemoryStore) DeleteCategory(id int64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.categories[id]; !ok {
		return ErrCategoryNotFound
	}
	delete(s.categories, id)
	return nil
}

func (s *InMemoryStore) CountEventsByCategory(categoryID int64) (int, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	count := 0
	for _, event := range s.events {
		if event.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

// ---- Events ----

func (s *InMemoryStore) CreateEvent(event *models.Event) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.nextEventID++
	event.ID = s.nextEventID
	copied := *event
	s.events[event.ID] = &copied
	return nil
}

func (s *InMemoryStore) GetEvent(id int64) (*models.Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	event, ok := s.events[id]
	if !ok {
		return nil, ErrEventNotFound
	}
	copied := *event
	return &copied, nil
}

func (s *InMemoryStore) ListEvents(filter models.EventFilter) ([]*models.Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	ids := make([]int64, 0, len(s.events))
	for id := range s.events {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return s.events[ids[i]].StartDate.Before(s.events[ids[j]].StartDate)
	})

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	var events []*models.Event
	skipped := 0
	for _, id := range ids {
		event := s.events[id]
		if !matchesFilter(event, filter) {
			continue
		}
		if skipped < filter.Offset {
			skipped++
			continue
		}
		if len(events) >= limit {
			break
		}
		copied := *event
		events = append(events, &copied)
	}
	return events, nil
}

func matchesFilter(event *models.Event, filter models.EventFilter) bool {
	if filter.CategoryID != 0 && event.CategoryID != filter.CategoryID {
		return false
	}
	if filter.OrganizerID != 0 && event.OrganizerID != filter.OrganizerID {
		return false
	}
	if !filter.StartAfter.IsZero() && event.StartDate.Before(filter.StartAfter) {
		return false
	}
	if !filter.EndBefore.IsZero() && event.EndDate.After(filter.EndBefore) {
		return false
	}
	if filter.PriceMin != nil && event.Price < *filter.PriceMin {
		return false
	}
	if filter.PriceMax != nil && event.Price > *filter.PriceMax {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(event.Title), needle) &&
			!strings.Contains(strings.ToLower(event.Description), needle) &&
			!strings.Contains(strings.ToLower(event.Location), needle) {
			return false
		}
	}
	return true
}

func (s *InMemoryStore) UpdateEvent(event *models.Event) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.events[event.ID]; !ok {
		return ErrEventNotFound
	}
	copied := *event
	s.events[event.ID] = &copied
	return nil
}

func (s *InMemoryStore) DeleteEvent(id int64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.events[id]; !ok {
		return ErrEventNotFound
	}
	delete(s.events, id)
	return nil
}

// ---- Orders ----

func (s *InMemoryStore) CreateOrder(order *models.Order, items []*models.OrderItem) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	// Validate every event before touching any map so a failure leaves no
	// partial order behind.
	for _, item := range items {
		if _, ok := s.events[item.EventID]; !ok {
			return fmt.Errorf("event %d: %w", item.EventID, ErrEventNotFound)
		}
	}

	s.nextOrderID++
	order.ID = s.nextOrderID
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	if order.Status == "" {
		order.Status = models.OrderStatusCompleted
	}

	for _, item := range items {
		s.nextOrderItemID++
		item.ID = s.nextOrderItemID
		item.OrderID = order.ID
		copied := *item
		s.orderItems[item.ID] = &copied
	}

	order.Items = items
	copied := *order
	copied.Items = nil
	s.orders[order.ID] = &copied
	return nil
}

func (s *InMemoryStore) GetOrder(id int64) (*models.Order, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	copied := *order
	copied.Items = s.itemsForOrder(id)
	return &copied, nil
}

func (s *InMemoryStore) ListOrdersByUser(userID int64) ([]*models.Order, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	ids := make([]int64, 0, len(s.orders))
	for id, order := range s.orders {
		if order.UserID == userID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var orders []*models.Order
	for _, id := range ids {
		copied := *s.orders[id]
		copied.Items = s.itemsForOrder(id)
		orders = append(orders, &copied)
	}
	return orders, nil
}

func (s *InMemoryStore) itemsForOrder(orderID int64) []*models.OrderItem {
	ids := make([]int64, 0)
	for id, item := range s.orderItems {
		if item.OrderID == orderID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var items []*models.OrderItem
	for _, id := range ids {
		copied := *s.orderItems[id]
		items = append(items, &copied)
	}
	return items
}

func (s *InMemoryStore) GetOrderItem(id int64) (*models.OrderItem, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	item, ok := s.orderItems[id]
	if !ok {
		return nil, ErrOrderItemNotFound
	}
	copied := *item
	return &copied, nil
}

func (s *InMemoryStore) DeleteOrderItem(id int64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.orderItems[id]; !ok {
		return ErrOrderItemNotFound
	}
	delete(s.orderItems, id)
	return nil
}

// ---- Admin ----

func (s *InMemoryStore) Stats() (*models.Stats, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	stats := &models.Stats{
		TotalUsers:  len(s.users),
		TotalEvents: len(s.events),
		TotalOrders: len(s.orders),
	}
	now := time.Now()
	for _, event := range s.events {
		if event.StartDate.After(now) {
			stats.UpcomingEvents++
		}
	}
	return stats, nil
}
