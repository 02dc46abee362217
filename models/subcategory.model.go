package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubCategory is the third catalog level, owned by a Category.
type SubCategory struct {
	ID             primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Slug           string             `json:"slug" bson:"slug"`
	Category       primitive.ObjectID `json:"category" bson:"category"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	Image          string             `json:"image,omitempty" bson:"image,omitempty"`
	IsActive       bool               `json:"isActive" bson:"isActive"`
	SEOTitle       string             `json:"seoTitle,omitempty" bson:"seoTitle,omitempty"`
	SEODescription string             `json:"seoDescription,omitempty" bson:"seoDescription,omitempty"`
	SEOKeywords    string             `json:"seoKeywords,omitempty" bson:"seoKeywords,omitempty"`
	MetaRobots     string             `json:"metaRobots,omitempty" bson:"metaRobots,omitempty"`
	CanonicalURL   string             `json:"canonicalUrl,omitempty" bson:"canonicalUrl,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type SubCategoryInput struct {
	Name           string `json:"name" binding:"required"`
	Category       string `json:"category" binding:"required"`
	Description    string `json:"description"`
	ImageBase64    string `json:"imageBase64"`
	IsActive       *bool  `json:"isActive"`
	SEOTitle       string `json:"seoTitle"`
	SEODescription string `json:"seoDescription"`
	SEOKeywords    string `json:"seoKeywords"`
	MetaRobots     string `json:"metaRobots"`
	CanonicalURL   string `json:"canonicalUrl"`
}

type SubCategoryUpdate struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	ImageBase64    string `json:"imageBase64"`
	IsActive       *bool  `json:"isActive"`
	SEOTitle       string `json:"seoTitle"`
	SEODescription string `json:"seoDescription"`
	SEOKeywords    string `json:"seoKeywords"`
	MetaRobots     string `json:"metaRobots"`
	CanonicalURL   string `json:"canonicalUrl"`
}
