package models

import "github.com/uptrace/bun"

type Category struct {
	bun.BaseModel `bun:"table:categories"`

	ID    int64  `json:"id" bun:"id,pk,autoincrement"`
	Name  string `json:"name" bun:"name,unique,notnull"`
	Color string `json:"color" bun:"color"`
	Icon  string `json:"icon,omitempty" bun:"icon,nullzero"`
}

type CategoryCreateRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

type CategoryUpdateRequest struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
	Icon  *string `json:"icon,omitempty"`
}
