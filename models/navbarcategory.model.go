package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NavbarCategory is a top-level menu entry. Order is dense (0..N-1) and
// determines the menu position; it is reassigned on insert and delete.
type NavbarCategory struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Slug        string             `json:"slug" bson:"slug"`
	Order       int                `json:"order" bson:"order"`
	IsActive    bool               `json:"isActive" bson:"isActive"`
	Title       string             `json:"title,omitempty" bson:"title,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type NavbarCategoryInput struct {
	Name        string `json:"name" binding:"required"`
	IsActive    *bool  `json:"isActive"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type NavbarCategoryUpdate struct {
	Name        string `json:"name"`
	IsActive    *bool  `json:"isActive"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
