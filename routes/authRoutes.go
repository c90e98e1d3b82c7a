package routes

import (
	"github.com/dripitout/dripitout-api/controllers"
	"github.com/dripitout/dripitout-api/middlewares"
	"github.com/dripitout/dripitout-api/storage"
	"github.com/gin-gonic/gin"
)

func AuthRoutes(server *gin.Engine, store storage.Storage) {
	api := server.Group("/api")
	{
		api.POST("/register", controllers.Register(store))
		api.POST("/login", controllers.Login(store))
		api.POST("/logout", controllers.Logout())
		api.GET("/user", middlewares.OptionalAuth(), controllers.CurrentUser(store))
		api.PUT("/user", middlewares.RequireAuth(), controllers.UpdateProfile(store))
	}
}
