package main

import (
	"time"

	"github.com/dripitout/dripitout-api/initializers"
	"github.com/dripitout/dripitout-api/payment"
	"github.com/dripitout/dripitout-api/routes"
	"github.com/dripitout/dripitout-api/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.ConnectToRedis()
	initializers.SyncDatabase()
	initializers.SeedDatabase()
}

func main() {
	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "https://www.dripitout.com"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	store := storage.NewGormStorage(initializers.DB)
	gateway := payment.NewClient()

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, store)
	routes.ProductRoutes(server, store)
	routes.CartRoutes(server, initializers.Redis)
	routes.OrderRoutes(server, store)
	routes.PaymentRoutes(server, gateway)
	routes.BookingRoutes(server, store)
	server.Run()
}
