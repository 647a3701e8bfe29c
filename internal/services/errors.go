package services

import (
	"errors"

	"eventify/internal/storage"
)

// Storage lookups surface directly where the meaning is identical.
var (
	ErrUserNotFound      = storage.ErrUserNotFound
	ErrEventNotFound     = storage.ErrEventNotFound
	ErrCategoryNotFound  = storage.ErrCategoryNotFound
	ErrOrderNotFound     = storage.ErrOrderNotFound
	ErrTicketNotFound    = storage.ErrOrderItemNotFound
	ErrEmailTaken        = storage.ErrDuplicateEmail
	ErrCategoryNameTaken = storage.ErrDuplicateCategory
)

var (
	// ErrInvalidCredentials deliberately covers both unknown email and wrong
	// password so the response never reveals which one failed.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	ErrForbidden       = errors.New("not enough permissions")
	ErrSelfDelete      = errors.New("you cannot delete your own account")
	ErrCategoryInUse   = errors.New("cannot delete category that is used in events")
	ErrInvalidDates    = errors.New("end date must be after start date")
	ErrInvalidRole     = errors.New("unknown role")
	ErrEmptyOrder      = errors.New("order must contain at least one item")
	ErrInvalidQuantity = errors.New("item quantity must be at least 1")
)
