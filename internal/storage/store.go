package storage

import (
	"errors"

	"eventify/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrEventNotFound     = errors.New("event not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderItemNotFound = errors.New("order item not found")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateCategory = errors.New("category name already exists")
)

type Store interface {
	// User operations
	CreateUser(user *models.User) error
	GetUserByID(id int64) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	ListUsers(offset, limit int) ([]*models.User, error)
	UpdateUser(user *models.User) error
	DeleteUser(id int64) error

	// Category operations
	CreateCategory(category *models.Category) error
	GetCategory(id int64) (*models.Category, error)
	ListCategories(offset, limit int) ([]*models.Category, error)
	UpdateCategory(category *models.Category) error
	DeleteCategory(id int64) error
	CountEventsByCategory(categoryID int64) (int, error)

	// Event operations
	CreateEvent(event *models.Event) error
	GetEvent(id int64) (*models.Event, error)
	ListEvents(filter models.EventFilter) ([]*models.Event, error)
	UpdateEvent(event *models.Event) error
	DeleteEvent(id int64) error

	// Order operations. CreateOrder persists the order and every item in a
	// single transaction: a missing event id aborts the whole write.
	CreateOrder(order *models.Order, items []*models.OrderItem) error
	GetOrder(id int64) (*models.Order, error)
	ListOrdersByUser(userID int64) ([]*models.Order, error)
	GetOrderItem(id int64) (*models.OrderItem, error)
	DeleteOrderItem(id int64) error

	// Admin
	Stats() (*models.Stats, error)
}
