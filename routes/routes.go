package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"securecam-backend/auth"
	"securecam-backend/config"
	"securecam-backend/controllers"
)

// Setup configures and returns the Gin engine. Read endpoints are public;
// every mutating endpoint requires the admin token.
func Setup(ctrl *controllers.Controller, cfg *config.AppConfig) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:8000"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	admin := auth.RequireAdmin(cfg)

	api := r.Group("/api")
	{
		// Utility routes
		api.GET("/health", ctrl.HealthCheck)
		api.GET("/stats", ctrl.GetStats)

		// Authentication routes
		api.POST("/login", ctrl.Login)
		api.POST("/register", ctrl.Register)
		api.POST("/logout", ctrl.Logout)

		// Navbar category routes
		api.GET("/navbar-categories", ctrl.GetNavbarCategories)
		api.POST("/navbar-categories", admin, ctrl.CreateNavbarCategory)
		api.GET("/navbar-categories/:idOrSlug", ctrl.GetNavbarCategory)
		api.PUT("/navbar-categories/:idOrSlug", admin, ctrl.UpdateNavbarCategory)
		api.DELETE("/navbar-categories/:idOrSlug", admin, ctrl.DeleteNavbarCategory)

		// Category routes
		api.GET("/categories", ctrl.GetCategories)
		api.POST("/categories", admin, ctrl.CreateCategory)
		api.GET("/categories/:slug", ctrl.GetCategory)
		api.PUT("/categories/:slug", admin, ctrl.UpdateCategory)
		api.DELETE("/categories/:slug", admin, ctrl.DeleteCategory)

		// Subcategory routes
		api.GET("/subcategories", ctrl.GetSubCategories)
		api.POST("/subcategories", admin, ctrl.CreateSubCategory)
		api.GET("/subcategories/:idOrSlug", ctrl.GetSubCategory)
		api.PUT("/subcategories/:idOrSlug", admin, ctrl.UpdateSubCategory)
		api.DELETE("/subcategories/:idOrSlug", admin, ctrl.DeleteSubCategory)

		// Product routes
		api.GET("/products", ctrl.GetProducts)
		api.POST("/products", admin, ctrl.CreateProduct)
		api.GET("/products/slug/:slug", ctrl.GetProductBySlug)
		api.GET("/products/:id", ctrl.GetProduct)
		api.PUT("/products/:id", admin, ctrl.UpdateProduct)
		api.DELETE("/products/:id", admin, ctrl.DeleteProduct)

		// Search
		api.GET("/search", ctrl.Search)

		// Catalog resolution (breadcrumbs for nested catalog pages)
		api.GET("/catalog/:navbar", ctrl.ResolveCatalog)
		api.GET("/catalog/:navbar/:category", ctrl.ResolveCatalog)
		api.GET("/catalog/:navbar/:category/:subcategory", ctrl.ResolveCatalog)
		api.GET("/catalog/:navbar/:category/:subcategory/:product", ctrl.ResolveCatalog)

		// Uploaded files
		api.POST("/upload", admin, ctrl.UploadFile)
		api.GET("/files/:filename", ctrl.ServeFile)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})
	return r
}
