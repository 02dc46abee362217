package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FAQ is a question/answer pair rendered on the product page.
type FAQ struct {
	Question string `json:"question" bson:"question"`
	Answer   string `json:"answer" bson:"answer"`
}

// Product is the catalog leaf. It keeps references to all three ancestors so
// its full URL can be rebuilt without walking the tree.
type Product struct {
	ID             primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Slug           string             `json:"slug" bson:"slug"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	KeyFeatures    []string           `json:"keyFeatures,omitempty" bson:"keyFeatures,omitempty"`
	Image1         string             `json:"image1" bson:"image1"`
	Image2         string             `json:"image2,omitempty" bson:"image2,omitempty"`
	Image3         string             `json:"image3,omitempty" bson:"image3,omitempty"`
	Image4         string             `json:"image4,omitempty" bson:"image4,omitempty"`
	NavbarCategory primitive.ObjectID `json:"navbarCategory" bson:"navbarCategory"`
	Category       primitive.ObjectID `json:"category" bson:"category"`
	SubCategory    primitive.ObjectID `json:"subcategory" bson:"subcategory"`
	SEOTitle       string             `json:"seoTitle,omitempty" bson:"seoTitle,omitempty"`
	SEODescription string             `json:"seoDescription,omitempty" bson:"seoDescription,omitempty"`
	SEOKeywords    string             `json:"seoKeywords,omitempty" bson:"seoKeywords,omitempty"`
	MetaRobots     string             `json:"metaRobots,omitempty" bson:"metaRobots,omitempty"`
	CanonicalURL   string             `json:"canonicalUrl,omitempty" bson:"canonicalUrl,omitempty"`
	FAQs           []FAQ              `json:"faqs,omitempty" bson:"faqs,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type ProductInput struct {
	Name           string   `json:"name" binding:"required"`
	Description    string   `json:"description"`
	KeyFeatures    []string `json:"keyFeatures"`
	Image1Base64   string   `json:"image1Base64" binding:"required"`
	Image2Base64   string   `json:"image2Base64"`
	Image3Base64   string   `json:"image3Base64"`
	Image4Base64   string   `json:"image4Base64"`
	NavbarCategory string   `json:"navbarCategory" binding:"required"`
	Category       string   `json:"category" binding:"required"`
	SubCategory    string   `json:"subcategory" binding:"required"`
	SEOTitle       string   `json:"seoTitle"`
	SEODescription string   `json:"seoDescription"`
	SEOKeywords    string   `json:"seoKeywords"`
	MetaRobots     string   `json:"metaRobots"`
	CanonicalURL   string   `json:"canonicalUrl"`
	FAQs           []FAQ    `json:"faqs"`
}

type ProductUpdate struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	KeyFeatures    []string `json:"keyFeatures"`
	Image1Base64   string   `json:"image1Base64"`
	Image2Base64   string   `json:"image2Base64"`
	Image3Base64   string   `json:"image3Base64"`
	Image4Base64   string   `json:"image4Base64"`
	SEOTitle       string   `json:"seoTitle"`
	SEODescription string   `json:"seoDescription"`
	SEOKeywords    string   `json:"seoKeywords"`
	MetaRobots     string   `json:"metaRobots"`
	CanonicalURL   string   `json:"canonicalUrl"`
	FAQs           []FAQ    `json:"faqs"`
}
