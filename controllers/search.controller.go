package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Search handles GET /api/search?q=. Zero hits across all collections is a
// valid empty result, not an error; only a database failure answers 500 so
// the client can tell "no results" apart from "search failed".
func (ctrl *Controller) Search(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := ctrl.Searcher.Search(ctx, c.Query("q"))
	if err != nil {
		ctrl.Log.Errorw("search failed", "query", c.Query("q"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}
	c.JSON(http.StatusOK, resp)
}
