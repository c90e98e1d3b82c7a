package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/dripitout/dripitout-api/payment"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreatePaymentOrder registers the cart total with the hosted payment
// gateway and hands back what the checkout widget needs. The amount is
// converted from display-currency cents to paise at the fixed rate.
func CreatePaymentOrder(client *payment.Client) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var input struct {
			Amount int `json:"amount" binding:"required,min=1"`
		}
		if err := ctx.ShouldBindJSON(&input); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		receipt := "rcpt-" + uuid.NewString()
		notes := map[string]string{
			"userId": strconv.Itoa(ctx.GetInt("userId")),
		}

		order, err := client.CreateOrder(payment.ToPaise(input.Amount), receipt, notes)
		if err != nil {
			log.Println("Payment order error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create payment order")
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"orderId":  order.ID,
			"amount":   order.Amount,
			"currency": order.Currency,
			"keyId":    client.KeyID(),
		})
	}
}

// VerifyPayment checks a completed payment's signature. The checkout path
// does not call this; it exists for clients that opt in to verification.
func VerifyPayment(client *payment.Client) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var input struct {
			RazorpayOrderID   string `json:"razorpayOrderId" binding:"required"`
			RazorpayPaymentID string `json:"razorpayPaymentId" binding:"required"`
			RazorpaySignature string `json:"razorpaySignature" binding:"required"`
		}
		if err := ctx.ShouldBindJSON(&input); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		valid := client.VerifySignature(input.RazorpayOrderID, input.RazorpayPaymentID, input.RazorpaySignature)
		sendJSONResponse(ctx, http.StatusOK, gin.H{"valid": valid})
	}
}
