package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is the second catalog level, owned by a NavbarCategory.
type Category struct {
	ID             primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Slug           string             `json:"slug" bson:"slug"`
	NavbarCategory primitive.ObjectID `json:"navbarCategory" bson:"navbarCategory"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	Image          string             `json:"image,omitempty" bson:"image,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type CategoryInput struct {
	Name           string `json:"name" binding:"required"`
	NavbarCategory string `json:"navbarCategory" binding:"required"`
	Description    string `json:"description"`
	// ImageBase64 carries the raw image payload (data URI); it is uploaded to
	// Cloudinary and never stored in the document.
	ImageBase64 string `json:"imageBase64"`
}

type CategoryUpdate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageBase64 string `json:"imageBase64"`
}
