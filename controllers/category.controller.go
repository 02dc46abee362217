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

// GetCategories handles listing categories, optionally filtered by the
// navbarCategory query param (slug or id).
func (ctrl *Controller) GetCategories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if key := c.Query("navbarCategory"); key != "" {
		nav, err := catalog.NavbarCategoryByKey(ctx, ctrl.DB, key)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Navbar category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		filter["navbarCategory"] = nav.ID
	}

	collection := ctrl.DB.Collection(catalog.CollCategories)
	cursor, err := collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	var list []models.Category
	if err = cursor.All(ctx, &list); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": list})
}

// CreateCategory handles creating a category. The referenced navbar category
// must exist; an included image is uploaded to the asset store before
// anything is written, and an upload failure aborts the create.
func (ctrl *Controller) CreateCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var input models.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	nav, err := catalog.NavbarCategoryByKey(ctx, ctrl.DB, input.NavbarCategory)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Referenced navbar category does not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	imageURL := ""
	if input.ImageBase64 != "" {
		imageURL, err = ctrl.uploadImage(input.ImageBase64, "securecam/categories")
		if err != nil {
			ctrl.Log.Errorw("category image upload failed", "name", input.Name, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
			return
		}
	}

	now := time.Now()
	category := models.Category{
		Name:           input.Name,
		Slug:           catalog.Slugify(input.Name),
		NavbarCategory: nav.ID,
		Description:    input.Description,
		Image:          imageURL,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	collection := ctrl.DB.Collection(catalog.CollCategories)
	result, err := collection.InsertOne(ctx, category)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category with this name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	category.ID = result.InsertedID.(primitive.ObjectID)
	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// GetCategory handles fetching one category by slug or id.
func (ctrl *Controller) GetCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	category, err := catalog.CategoryByKey(ctx, ctrl.DB, c.Param("slug"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category})
}

// UpdateCategory handles updating a category. A new image is uploaded only
// when one is provided; otherwise the stored URL is preserved. A name change
// re-derives the slug.
func (ctrl *Controller) UpdateCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	category, err := catalog.CategoryByKey(ctx, ctrl.DB, c.Param("slug"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var update models.CategoryUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sets := bson.M{"updatedAt": time.Now()}
	if update.Name != "" && update.Name != category.Name {
		sets["name"] = update.Name
		sets["slug"] = catalog.Slugify(update.Name)
	}
	if update.Description != "" {
		sets["description"] = update.Description
	}
	if update.ImageBase64 != "" {
		imageURL, err := ctrl.uploadImage(update.ImageBase64, "securecam/categories")
		if err != nil {
			ctrl.Log.Errorw("category image upload failed", "slug", category.Slug, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
			return
		}
		sets["image"] = imageURL
	}

	collection := ctrl.DB.Collection(catalog.CollCategories)
	_, err = collection.UpdateOne(ctx, bson.M{"_id": category.ID}, bson.M{"$set": sets})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category with this name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category updated successfully"})
}

// DeleteCategory handles deleting a category. Rejected while subcategories
// still reference it, so no orphaned references are created.
func (ctrl *Controller) DeleteCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	category, err := catalog.CategoryByKey(ctx, ctrl.DB, c.Param("slug"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	children, err := ctrl.DB.Collection(catalog.CollSubCategories).
		CountDocuments(ctx, bson.M{"category": category.ID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if children > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Category still has subcategories"})
		return
	}

	if _, err := ctrl.DB.Collection(catalog.CollCategories).DeleteOne(ctx, bson.M{"_id": category.ID}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
