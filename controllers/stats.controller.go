package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"securecam-backend/catalog"
	"securecam-backend/models"
)

// HealthCheck reports the database connection status.
func (ctrl *Controller) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := ctrl.DB.Client().Ping(ctx, nil)
	dbStatus := "connected"
	if err != nil {
		dbStatus = "disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"database":  dbStatus,
		"timestamp": time.Now().Unix(),
	})
}

// GetStats returns document counts for the catalog collections.
func (ctrl *Controller) GetStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stats := models.Stats{}
	counts := []struct {
		coll string
		dst  *int64
	}{
		{catalog.CollNavbarCategories, &stats.TotalNavbarCategories},
		{catalog.CollCategories, &stats.TotalCategories},
		{catalog.CollSubCategories, &stats.TotalSubCategories},
		{catalog.CollProducts, &stats.TotalProducts},
	}
	for _, item := range counts {
		n, err := ctrl.DB.Collection(item.coll).CountDocuments(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Stats error: " + err.Error()})
			return
		}
		*item.dst = n
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
