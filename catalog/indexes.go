package catalog

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique slug index on every catalog collection
// (duplicate derived slugs surface as duplicate-key errors on insert) and the
// unique username index on admins.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	slugIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	for _, coll := range []string{CollNavbarCategories, CollCategories, CollSubCategories, CollProducts} {
		if _, err := db.Collection(coll).Indexes().CreateOne(ctx, slugIndex); err != nil {
			return err
		}
	}

	usernameIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, err := db.Collection(CollAdmins).Indexes().CreateOne(ctx, usernameIndex)
	return err
}
