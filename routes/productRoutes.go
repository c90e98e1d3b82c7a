package routes

import (
	"github.com/dripitout/dripitout-api/controllers"
	"github.com/dripitout/dripitout-api/middlewares"
	"github.com/dripitout/dripitout-api/storage"
	"github.com/gin-gonic/gin"
)

func ProductRoutes(server *gin.Engine, store storage.Storage) {
	server.GET("/api/products", controllers.GetProducts(store))
	server.GET("/api/products/:id", controllers.GetProduct(store))
	server.GET("/api/products/:id/reviews", controllers.GetProductReviews(store))
	server.POST("/api/products/:id/reviews", middlewares.RequireAuth(), controllers.CreateProductReview(store))

	admin := server.Group("/api/products", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.POST("", controllers.CreateProduct(store))
		admin.PUT("/:id", controllers.UpdateProduct(store))
		admin.POST("/:id/image", controllers.UploadProductImage(store))
	}
}
