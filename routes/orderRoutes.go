package routes

import (
	"github.com/dripitout/dripitout-api/controllers"
	"github.com/dripitout/dripitout-api/middlewares"
	"github.com/dripitout/dripitout-api/storage"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine, store storage.Storage) {
	orders := server.Group("/api/orders", middlewares.RequireAuth())
	{
		orders.POST("", controllers.CreateOrder(store))
		orders.GET("", controllers.GetOrders(store))
		orders.GET("/:id", controllers.GetOrderByID(store))
		orders.PUT("/:id/status", controllers.UpdateOrderStatus(store))
	}
}
