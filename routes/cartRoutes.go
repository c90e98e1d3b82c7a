package routes

import (
	"github.com/dripitout/dripitout-api/controllers"
	"github.com/dripitout/dripitout-api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func CartRoutes(server *gin.Engine, rdb *redis.Client) {
	carts := server.Group("/api/cart", middlewares.RequireAuth())
	{
		carts.GET("", controllers.GetCart(rdb))
		carts.PUT("", controllers.SaveCart(rdb))
		carts.DELETE("", controllers.ClearCart(rdb))
	}
	server.POST("/api/cart/discount", controllers.ValidateDiscount())
}
