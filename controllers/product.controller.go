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

// GetProducts handles listing products, optionally filtered by the
// subcategory query param (slug or id).
func (ctrl *Controller) GetProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if key := c.Query("subcategory"); key != "" {
		sub, err := catalog.SubCategoryByKey(ctx, ctrl.DB, key)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Subcategory not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		filter["subcategory"] = sub.ID
	}

	collection := ctrl.DB.Collection(catalog.CollProducts)
	cursor, err := collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	var list []models.Product
	if err = cursor.All(ctx, &list); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": list})
}

// CreateProduct handles creating a product. All three ancestor references
// must exist and actually link up as one chain. Images are uploaded to the
// asset store before the insert; the first image is mandatory and any upload
// failure aborts the create.
func (ctrl *Controller) CreateProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	nav, err := catalog.NavbarCategoryByKey(ctx, ctrl.DB, input.NavbarCategory)
	if err != nil {
		ctrl.parentRefError(c, err, "navbar category")
		return
	}
	category, err := catalog.CategoryByKey(ctx, ctrl.DB, input.Category)
	if err != nil {
		ctrl.parentRefError(c, err, "category")
		return
	}
	sub, err := catalog.SubCategoryByKey(ctx, ctrl.DB, input.SubCategory)
	if err != nil {
		ctrl.parentRefError(c, err, "subcategory")
		return
	}
	if category.NavbarCategory != nav.ID || sub.Category != category.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Referenced categories do not form one chain"})
		return
	}

	images := [4]string{}
	payloads := [4]string{input.Image1Base64, input.Image2Base64, input.Image3Base64, input.Image4Base64}
	for i, payload := range payloads {
		if payload == "" {
			continue
		}
		url, err := ctrl.uploadImage(payload, "securecam/products")
		if err != nil {
			ctrl.Log.Errorw("product image upload failed", "name", input.Name, "image", i+1, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
			return
		}
		images[i] = url
	}

	now := time.Now()
	product := models.Product{
		Name:           input.Name,
		Slug:           catalog.Slugify(input.Name),
		Description:    input.Description,
		KeyFeatures:    input.KeyFeatures,
		Image1:         images[0],
		Image2:         images[1],
		Image3:         images[2],
		Image4:         images[3],
		NavbarCategory: nav.ID,
		Category:       category.ID,
		SubCategory:    sub.ID,
		SEOTitle:       input.SEOTitle,
		SEODescription: input.SEODescription,
		SEOKeywords:    input.SEOKeywords,
		MetaRobots:     input.MetaRobots,
		CanonicalURL:   input.CanonicalURL,
		FAQs:           input.FAQs,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	collection := ctrl.DB.Collection(catalog.CollProducts)
	result, err := collection.InsertOne(ctx, product)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product with this name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	product.ID = result.InsertedID.(primitive.ObjectID)
	c.JSON(http.StatusCreated, gin.H{"product": product})
}

func (ctrl *Controller) parentRefError(c *gin.Context, err error, level string) {
	if errors.Is(err, catalog.ErrNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Referenced " + level + " does not exist"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// GetProduct handles fetching one product by id (slug also accepted, the
// lookup is dual-mode).
func (ctrl *Controller) GetProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	product, err := catalog.ProductByKey(ctx, ctrl.DB, c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// GetProductBySlug handles fetching one product by exact slug.
func (ctrl *Controller) GetProductBySlug(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	product, err := catalog.ProductBySlug(ctx, ctrl.DB, c.Param("slug"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// UpdateProduct handles updating a product. Each image slot is replaced only
// when a new payload is provided for it.
func (ctrl *Controller) UpdateProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	product, err := catalog.ProductByKey(ctx, ctrl.DB, c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var update models.ProductUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sets := bson.M{"updatedAt": time.Now()}
	if update.Name != "" && update.Name != product.Name {
		sets["name"] = update.Name
		sets["slug"] = catalog.Slugify(update.Name)
	}
	if update.Description != "" {
		sets["description"] = update.Description
	}
	if update.KeyFeatures != nil {
		sets["keyFeatures"] = update.KeyFeatures
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
	if update.FAQs != nil {
		sets["faqs"] = update.FAQs
	}

	fields := [4]string{"image1", "image2", "image3", "image4"}
	payloads := [4]string{update.Image1Base64, update.Image2Base64, update.Image3Base64, update.Image4Base64}
	for i, payload := range payloads {
		if payload == "" {
			continue
		}
		url, err := ctrl.uploadImage(payload, "securecam/products")
		if err != nil {
			ctrl.Log.Errorw("product image upload failed", "slug", product.Slug, "image", i+1, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
			return
		}
		sets[fields[i]] = url
	}

	collection := ctrl.DB.Collection(catalog.CollProducts)
	_, err = collection.UpdateOne(ctx, bson.M{"_id": product.ID}, bson.M{"$set": sets})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product with this name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
}

// DeleteProduct handles deleting a product.
func (ctrl *Controller) DeleteProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	product, err := catalog.ProductByKey(ctx, ctrl.DB, c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if _, err := ctrl.DB.Collection(catalog.CollProducts).DeleteOne(ctx, bson.M{"_id": product.ID}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
