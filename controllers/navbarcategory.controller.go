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

// GetNavbarCategories handles listing all navbar categories in menu order.
func (ctrl *Controller) GetNavbarCategories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := ctrl.DB.Collection(catalog.CollNavbarCategories)
	cursor, err := collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	var list []models.NavbarCategory
	if err = cursor.All(ctx, &list); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"navbarCategories": list})
}

// CreateNavbarCategory handles creating a navbar category. The new entry is
// appended at the end of the menu (order = current count).
func (ctrl *Controller) CreateNavbarCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var input models.NavbarCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collection := ctrl.DB.Collection(catalog.CollNavbarCategories)
	count, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	now := time.Now()
	nav := models.NavbarCategory{
		Name:        input.Name,
		Slug:        catalog.Slugify(input.Name),
		Order:       catalog.NextOrder(count),
		IsActive:    isActive,
		Title:       input.Title,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	result, err := collection.InsertOne(ctx, nav)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Navbar category with this name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	nav.ID = result.InsertedID.(primitive.ObjectID)
	c.JSON(http.StatusCreated, gin.H{"navbarCategory": nav})
}

// GetNavbarCategory handles fetching one navbar category by slug or id.
func (ctrl *Controller) GetNavbarCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	nav, err := catalog.NavbarCategoryByKey(ctx, ctrl.DB, c.Param("idOrSlug"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Navbar category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"navbarCategory": nav})
}

// UpdateNavbarCategory handles updating a navbar category. A name change
// re-derives the slug, which changes the public URL.
func (ctrl *Controller) UpdateNavbarCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	nav, err := catalog.NavbarCategoryByKey(ctx, ctrl.DB, c.Param("idOrSlug"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Navbar category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var update models.NavbarCategoryUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sets := bson.M{"updatedAt": time.Now()}
	if update.Name != "" && update.Name != nav.Name {
		sets["name"] = update.Name
		sets["slug"] = catalog.Slugify(update.Name)
	}
	if update.IsActive != nil {
		sets["isActive"] = *update.IsActive
	}
	if update.Title != "" {
		sets["title"] = update.Title
	}
	if update.Description != "" {
		sets["description"] = update.Description
	}

	collection := ctrl.DB.Collection(catalog.CollNavbarCategories)
	_, err = collection.UpdateOne(ctx, bson.M{"_id": nav.ID}, bson.M{"$set": sets})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Navbar category with this name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Navbar category updated successfully"})
}

// DeleteNavbarCategory handles deleting a navbar category. The delete is
// rejected while categories still reference it; afterwards every sibling
// with a greater order shifts down one position so the menu stays dense.
func (ctrl *Controller) DeleteNavbarCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	nav, err := catalog.NavbarCategoryByKey(ctx, ctrl.DB, c.Param("idOrSlug"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Navbar category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	children, err := ctrl.DB.Collection(catalog.CollCategories).
		CountDocuments(ctx, bson.M{"navbarCategory": nav.ID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if children > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Navbar category still has categories"})
		return
	}

	collection := ctrl.DB.Collection(catalog.CollNavbarCategories)
	if _, err := collection.DeleteOne(ctx, bson.M{"_id": nav.ID}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if _, err := collection.UpdateMany(ctx, catalog.ShiftDownFilter(nav.Order), catalog.ShiftDownUpdate()); err != nil {
		ctrl.Log.Errorw("navbar order compaction failed", "deleted", nav.Slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Navbar category deleted successfully"})
}
