package routes

import (
	"github.com/dripitout/dripitout-api/controllers"
	"github.com/dripitout/dripitout-api/middlewares"
	"github.com/dripitout/dripitout-api/payment"
	"github.com/gin-gonic/gin"
)

func PaymentRoutes(server *gin.Engine, client *payment.Client) {
	server.POST("/api/payment/order", middlewares.RequireAuth(), controllers.CreatePaymentOrder(client))
	server.POST("/api/payment/verify", middlewares.RequireAuth(), controllers.VerifyPayment(client))
}
