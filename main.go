package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"securecam-backend/catalog"
	"securecam-backend/config"
	"securecam-backend/controllers"
	"securecam-backend/routes"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg := config.Load()

	db, err := config.ConnectDB(cfg.MongoURI, cfg.MongoMode, cfg.MongoDBName)
	if err != nil {
		logger.Fatalw("failed to connect to MongoDB", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := catalog.EnsureIndexes(ctx, db); err != nil {
		cancel()
		logger.Fatalw("failed to create indexes", "error", err)
	}
	cancel()

	var cld *cloudinary.Cloudinary
	if cfg.CloudinaryURL != "" {
		cld, err = cloudinary.NewFromURL(cfg.CloudinaryURL)
		if err != nil {
			logger.Fatalw("failed to initialize Cloudinary", "error", err)
		}
	} else {
		logger.Warn("CLOUDINARY_URL not set, image uploads are disabled")
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logger.Fatalw("failed to create upload directory", "dir", cfg.UploadDir, "error", err)
	}

	ctrl := controllers.New(db, cld, cfg, logger)
	r := routes.Setup(ctrl, cfg)

	logger.Infow("🚀 securecam backend starting", "port", cfg.Port, "env", cfg.Env)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatalw("server exited", "error", err)
	}
}

func newLogger() *zap.SugaredLogger {
	zcfg := zap.NewDevelopmentConfig()
	zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logger, err := zcfg.Build()
	if err != nil {
		log.Fatal("failed to build logger: ", err)
	}
	return logger.Sugar()
}
