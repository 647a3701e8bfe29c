package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Role is the closed set of permission levels a user can hold.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// OneOf reports whether r is contained in allowed.
func (r Role) OneOf(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

type User struct {
	bun.BaseModel `bun:"table:users"`

	ID             int64     `json:"id" bun:"id,pk,autoincrement"`
	Email          string    `json:"email" bun:"email,unique,notnull"`
	Name           string    `json:"name" bun:"name"`
	HashedPassword string    `json:"-" bun:"hashed_password,notnull"`
	Role           Role      `json:"role" bun:"role,notnull"`
	IsActive       bool      `json:"is_active" bun:"is_active"`
	CreatedAt      time.Time `json:"created_at" bun:"created_at"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      int64  `json:"user_id"`
	Role        Role   `json:"role"`
	IsActive    bool   `json:"is_active"`
}

// UserUpdateRequest carries the mutable user fields. Nil means "leave as is";
// there is exactly one accepted shape per field.
type UserUpdateRequest struct {
	Email *string `json:"email,omitempty" binding:"omitempty,email"`
	Name  *string `json:"name,omitempty"`
	Role  *Role   `json:"role,omitempty"`
}
