package catalog

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"securecam-backend/models"
)

// Collection names, one per entity type.
const (
	CollNavbarCategories = "navbarcategories"
	CollCategories       = "categories"
	CollSubCategories    = "subcategories"
	CollProducts         = "products"
	CollAdmins           = "admins"
)

// ErrNotFound is returned when a slug or id resolves to nothing.
var ErrNotFound = errors.New("not found")

// findByKey is the dual-mode lookup shared by every entity type: try an exact
// slug match first, then fall back to interpreting key as a raw object ID.
// The slug attempt always runs first so a slug that happens to look like a
// hex id never silently resolves to the wrong document.
func findByKey(ctx context.Context, coll *mongo.Collection, key string, out interface{}) error {
	if !ValidKey(key) {
		return ErrNotFound
	}

	err := coll.FindOne(ctx, bson.M{"slug": key}).Decode(out)
	if err == nil {
		return nil
	}
	if err != mongo.ErrNoDocuments {
		return err
	}

	oid, idErr := primitive.ObjectIDFromHex(key)
	if idErr != nil {
		return ErrNotFound
	}
	err = coll.FindOne(ctx, bson.M{"_id": oid}).Decode(out)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return err
}

// NavbarCategoryByKey fetches a navbar category by slug or id.
func NavbarCategoryByKey(ctx context.Context, db *mongo.Database, key string) (*models.NavbarCategory, error) {
	var nav models.NavbarCategory
	if err := findByKey(ctx, db.Collection(CollNavbarCategories), key, &nav); err != nil {
		return nil, err
	}
	return &nav, nil
}

// CategoryByKey fetches a category by slug or id.
func CategoryByKey(ctx context.Context, db *mongo.Database, key string) (*models.Category, error) {
	var cat models.Category
	if err := findByKey(ctx, db.Collection(CollCategories), key, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// SubCategoryByKey fetches a subcategory by slug or id.
func SubCategoryByKey(ctx context.Context, db *mongo.Database, key string) (*models.SubCategory, error) {
	var sub models.SubCategory
	if err := findByKey(ctx, db.Collection(CollSubCategories), key, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// ProductByKey fetches a product by slug or id.
func ProductByKey(ctx context.Context, db *mongo.Database, key string) (*models.Product, error) {
	var prod models.Product
	if err := findByKey(ctx, db.Collection(CollProducts), key, &prod); err != nil {
		return nil, err
	}
	return &prod, nil
}

// ProductBySlug fetches a product by exact slug only (GET /api/products/slug/:slug).
func ProductBySlug(ctx context.Context, db *mongo.Database, slug string) (*models.Product, error) {
	var prod models.Product
	err := db.Collection(CollProducts).FindOne(ctx, bson.M{"slug": slug}).Decode(&prod)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &prod, nil
}
