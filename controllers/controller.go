package controllers

import (
	"context"
	"errors"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"securecam-backend/catalog"
	"securecam-backend/config"
)

// Controller holds the shared dependencies for all request handlers.
type Controller struct {
	DB       *mongo.Database
	Cld      *cloudinary.Cloudinary
	Cfg      *config.AppConfig
	Log      *zap.SugaredLogger
	Resolver *catalog.Resolver
	Searcher *catalog.Searcher
}

// New wires a Controller with its catalog helpers.
func New(db *mongo.Database, cld *cloudinary.Cloudinary, cfg *config.AppConfig, logger *zap.SugaredLogger) *Controller {
	return &Controller{
		DB:       db,
		Cld:      cld,
		Cfg:      cfg,
		Log:      logger,
		Resolver: &catalog.Resolver{DB: db},
		Searcher: &catalog.Searcher{DB: db},
	}
}

var errImageStoreUnavailable = errors.New("image store not configured")

// uploadImage pushes a base64/data-URI payload to the external asset store
// and returns the hosted URL. Writes that include an image call this first; a
// failure here aborts the write.
func (ctrl *Controller) uploadImage(imageBase64, folder string) (string, error) {
	if ctrl.Cld == nil {
		return "", errImageStoreUnavailable
	}
	result, err := ctrl.Cld.Upload.Upload(
		context.Background(),
		imageBase64,
		uploader.UploadParams{Folder: folder},
	)
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}
