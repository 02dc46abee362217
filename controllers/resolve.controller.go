package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"securecam-backend/catalog"
)

// ResolveCatalog handles GET /api/catalog/:navbar[/:category[/:subcategory
// [/:product]]]. It resolves each path segment to its entity and returns the
// breadcrumb chain plus the resolved entities. Any unresolved segment, or a
// chain whose ancestors do not line up, answers 404.
func (ctrl *Controller) ResolveCatalog(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := ctrl.Resolver.Resolve(ctx,
		c.Param("navbar"),
		c.Param("category"),
		c.Param("subcategory"),
		c.Param("product"),
	)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"breadcrumbs":    res.Breadcrumbs(),
		"navbarCategory": res.NavbarCategory,
		"category":       res.Category,
		"subcategory":    res.SubCategory,
		"product":        res.Product,
	})
}
