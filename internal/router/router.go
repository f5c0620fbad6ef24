package router

import (
	"github.com/gin-gonic/gin"
	"github.com/jmlee/storefront-backend/config"
	"github.com/jmlee/storefront-backend/internal/app/controller"
	"github.com/jmlee/storefront-backend/internal/middleware"
)

type Router struct {
	productController  *controller.ProductController
	categoryController *controller.CategoryController
	cartController     *controller.CartController
	uploadController   *controller.UploadController
	adminController    *controller.AdminController
	statsController    *controller.StatsController
	adminMiddleware    *middleware.AdminMiddleware
	config             *config.Config
}

func NewRouter(
	productController *controller.ProductController,
	categoryController *controller.CategoryController,
	cartController *controller.CartController,
	uploadController *controller.UploadController,
	adminController *controller.AdminController,
	statsController *controller.StatsController,
	adminMiddleware *middleware.AdminMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		productController:  productController,
		categoryController: categoryController,
		cartController:     cartController,
		uploadController:   uploadController,
		adminController:    adminController,
		statsController:    statsController,
		adminMiddleware:    adminMiddleware,
		config:             cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Storefront API is running",
		})
	})

	// Serve locally stored uploads
	if r.config.Storage.Driver == "local" {
		router.Static(r.config.Storage.LocalBase, r.config.Storage.LocalDir)
	}

	v1 := router.Group("/api/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("", r.productController.ListProducts)
			products.GET("/:id", r.productController.GetProductByID)
		}

		v1.GET("/categories", r.categoryController.ListCategories)

		cart := v1.Group("/cart")
		{
			cart.GET("", r.cartController.GetCart)
			cart.POST("/items", r.cartController.AddItem)
			cart.PUT("/items/:id", r.cartController.UpdateItem)
			cart.DELETE("/items/:id", r.cartController.RemoveItem)
			cart.DELETE("", r.cartController.ClearCart)
		}

		v1.POST("/visits", r.statsController.RecordVisit)

		admin := v1.Group("/admin")
		{
			admin.POST("/login", r.adminController.Login)

			guarded := admin.Group("")
			guarded.Use(r.adminMiddleware.RequireAdmin())
			{
				guarded.POST("/products", r.productController.CreateProduct)
				guarded.PUT("/products/:id", r.productController.UpdateProduct)
				guarded.DELETE("/products/:id", r.productController.DeleteProduct)
				guarded.GET("/products/export", r.productController.ExportProducts)

				guarded.POST("/categories", r.categoryController.CreateCategory)
				guarded.PUT("/categories/:id", r.categoryController.UpdateCategory)
				guarded.DELETE("/categories/:id", r.categoryController.DeleteCategory)

				guarded.POST("/upload", r.uploadController.UploadFiles)

				guarded.GET("/stats", r.statsController.GetStats)
			}
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, X-Cart-ID, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
