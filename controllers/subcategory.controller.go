package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"securecam-backend/catalog"
	"securecam-backend/models"
)

// GetSubCategories handles listing subcategories, optionally filtered by the
// category query param (slug or id).
func (ctrl *Controller) GetSubCategories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if key := c.Query("category"); key != "" {
		category, err := catalog.CategoryByKey(ctx, ctrl.DB, key)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		filter["category"] = category.ID
	}

	collection := ctrl.DB.Collection(catalog.CollSubCategories)
	cursor, err := collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	var list []models.SubCategory
	if err = cursor.All(ctx, &list); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"subcategories": list})
}

// CreateSubCategory handles creating a subcategory under an existing category.
func (ctrl *Controller) CreateSubCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var input models.SubCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := catalog.CategoryByKey(ctx, ctrl.DB, input.Category)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Referenced category does not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	imageURL := ""
	if input.ImageBase64 != "" {
		imageURL, err = ctrl.uploadImage(input.ImageBase64, "securecam/subcategories")
		if err != nil {
			ctrl.Log.Errorw("subcategory image upload failed", "name", input.Name, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
			return
		}
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	now := time.Now()
	sub := models.SubCategory{
		Name:           input.Name,
		Slug:           catalog.Slugify(input.Name),
		Category:       category.ID,
		Description:    input.Description,
		Image:          imageURL,
		IsActive:       isActive,
		SEOTitle:       input.SEOTitle,
		SEODescription: input.SEODescription,
		SEOKeywords:    input.SEOKeywords,
		MetaRobots:     input.MetaRobots,
		CanonicalURL:   input.CanonicalURL,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	collection := ctrl.DB.Collection(catalog.CollSubCategories)
	result, err := collection.InsertOne(ctx, sub)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Subcategory with this name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	sub.ID = result.InsertedID.(primitive.ObjectID)
	c.JSON(http.StatusCreated, gin.H{"subcategory": sub})
}

// GetSubCategory handles fetching one subcategory by slug or id.
func (ctrl *Controller) GetSubCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sub, err := catalog.SubCategoryByKey(ctx, ctrl.DB, c.Param("idOrSlug"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subcategory not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"subcategory": sub})
}

// UpdateSubCategory handles updating a subcategory.
func (ctrl *Controller) UpdateSubCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sub, err := catalog.SubCategoryByKey(ctx, ctrl.DB, c.Param("idOrSlug"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subcategory not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var update models.SubCategoryUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sets := bson.M{"updatedAt": time.Now()}
	if update.Name != "" && update.Name != sub.Name {
		sets["name"] = update.Name
		sets["slug"] = catalog.Slugify(update.Name)
	}
	if update.Description != "" {
		sets["description"] = update.Description
	}
	if update.IsActive != nil {
		sets["isActive"] = *update.IsActive
	}
	if update.SEOTitle != "" {
		sets["seoTitle"] = update.SEOTitle
	}
	if update.SEODescription != "" {
		sets["seoDescription"] = update.SEODescription
	}
	if update.SEOKeywords != "" {
		sets["seoKeywords"] = update.SEOKeywords
	}
	if update.MetaRobots != "" {
		sets["metaRobots"] = update.MetaRobots
	}
	if update.CanonicalURL != "" {
		sets["canonicalUrl"] = update.CanonicalURL
	}
	if update.ImageBase64 != "" {
		imageURL, err := ctrl.uploadImage(update.ImageBase64, "securecam/subcategories")
		if err != nil {
			ctrl.Log.Errorw("subcategory image upload failed", "slug", sub.Slug, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
			return
		}
		sets["image"] = imageURL
	}

	collection := ctrl.DB.Collection(catalog.CollSubCategories)
	_, err = collection.UpdateOne(ctx, bson.M{"_id": sub.ID}, bson.M{"$set": sets})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Subcategory with this name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subcategory updated successfully"})
}

// DeleteSubCategory handles deleting a subcategory. Rejected while products
// still reference it.
func (ctrl *Controller) DeleteSubCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sub, err := catalog.SubCategoryByKey(ctx, ctrl.DB, c.Param("idOrSlug"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subcategory not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	children, err := ctrl.DB.Collection(catalog.CollProducts).
		CountDocuments(ctx, bson.M{"subcategory": sub.ID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if children > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Subcategory still has products"})
		return
	}

	if _, err := ctrl.DB.Collection(catalog.CollSubCategories).DeleteOne(ctx, bson.M{"_id": sub.ID}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subcategory deleted successfully"})
}
