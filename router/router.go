package router

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kitchpad/kitchpad/config"
	"github.com/kitchpad/kitchpad/controllers"
	"github.com/kitchpad/kitchpad/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// Only image files may be fetched from the uploads directory.
	r.Use(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/uploads/") {
			path := strings.ToLower(c.Request.URL.Path)
			ok := false
			for _, ext := range []string{".jpg", ".jpeg", ".png", ".gif", ".webp"} {
				if strings.HasSuffix(path, ext) {
					ok = true
					break
				}
			}
			if !ok {
				c.AbortWithStatus(http.StatusForbidden)
				return
			}
		}
		c.Next()
	})

	uploadDir := filepath.Join("public", "uploads")
	r.Static("/uploads", uploadDir)

	orderCtrl := controllers.NewOrderController(db)
	productCtrl := controllers.NewProductController(db)
	salesCtrl := controllers.NewSalesController(db)
	uploadCtrl := controllers.NewUploadController(uploadDir, config.BaseURL())

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "healthy",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		})

		api.GET("/orders", orderCtrl.GetOrders)
		api.POST("/orders", orderCtrl.CreateOrder)
		api.PUT("/orders/:order_id", orderCtrl.UpdateOrder)
		api.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)

		api.GET("/products", productCtrl.GetProducts)
		api.POST("/products", productCtrl.CreateProduct)
		api.PUT("/products/:product_id", productCtrl.UpdateProduct)
		api.DELETE("/products/:product_id", productCtrl.DeleteProduct)

		api.POST("/upload", uploadCtrl.UploadFile)
		api.GET("/sales/today", salesCtrl.GetTodaySales)
	}

	return r
}
