package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/dripitout/dripitout-api/models"
	"github.com/dripitout/dripitout-api/storage"
	"github.com/gin-gonic/gin"
)

type orderItemInput struct {
	ProductID       int    `json:"productId" binding:"required"`
	Quantity        int    `json:"quantity" binding:"required,min=1"`
	Size            string `json:"size" binding:"required"`
	PriceAtPurchase int    `json:"priceAtPurchase" binding:"required"`
}

// createOrderInput mirrors the checkout payload. The discount snapshot is
// taken as the client sent it; there is no server-side recomputation
// against the code table at this point.
type createOrderInput struct {
	TotalAmount     int              `json:"totalAmount" binding:"required"`
	DiscountCode    string           `json:"discountCode"`
	DiscountAmount  int              `json:"discountAmount"`
	ShippingAddress string           `json:"shippingAddress"`
	PaymentDetails  json.RawMessage  `json:"paymentDetails"`
	Items           []orderItemInput `json:"items" binding:"required,min=1,dive"`
}

// CreateOrder persists one order plus a line per item. The status always
// seeds as pending regardless of what checkout sends; payment
// confirmation moves it to paid afterwards.
func CreateOrder(store storage.Storage) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID := ctx.GetInt("userId")

		var input createOrderInput
		if err := ctx.ShouldBindJSON(&input); err != nil {
			log.Printf("JSON binding error: %v", err)
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
			return
		}

		order := models.Order{
			UserID:          userID,
			Status:          models.OrderStatusPending,
			TotalAmount:     input.TotalAmount,
			DiscountCode:    input.DiscountCode,
			DiscountAmount:  input.DiscountAmount,
			ShippingAddress: input.ShippingAddress,
			PaymentDetails:  []byte(input.PaymentDetails),
		}

		items := make([]models.OrderItem, len(input.Items))
		for i, item := range input.Items {
			items[i] = models.OrderItem{
				ProductID:       item.ProductID,
				Quantity:        item.Quantity,
				Size:            item.Size,
				PriceAtPurchase: item.PriceAtPurchase,
			}
		}

		if err := store.CreateOrderWithItems(&order, items); err != nil {
			log.Println("Order creation error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create order")
			return
		}

		ctx.JSON(http.StatusCreated, order)
	}
}

// GetOrders returns the signed-in user's orders. With ?grouped=true the
// orders come back partitioned into history buckets.
func GetOrders(store storage.Storage) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID := ctx.GetInt("userId")

		orders, err := store.GetOrders(userID)
		if err != nil {
			log.Println("Order fetch error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch orders")
			return
		}

		if ctx.Query("grouped") == "true" {
			ctx.JSON(http.StatusOK, models.BucketOrders(orders))
			return
		}
		ctx.JSON(http.StatusOK, orders)
	}
}

// GetOrderByID hydrates a single order with its lines. Only the owner may
// read it.
func GetOrderByID(store storage.Storage) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		orderID, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse order id")
			return
		}

		order, err := store.GetOrder(orderID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
			} else {
				log.Println("Order fetch error:", err)
				sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order")
			}
			return
		}

		if order.UserID != ctx.GetInt("userId") {
			sendErrorResponse(ctx, http.StatusForbidden, "Forbidden")
			return
		}

		items, err := store.GetOrderItems(orderID)
		if err != nil {
			log.Println("Order items fetch error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order")
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order, "items": items})
	}
}

// UpdateOrderStatus overwrites the status field. There is no transition
// graph: any status string replaces any other.
func UpdateOrderStatus(store storage.Storage) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		orderID, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse order id")
			return
		}

		var statusData struct {
			Status string `json:"status" binding:"required"`
		}
		if err := ctx.ShouldBindJSON(&statusData); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
			return
		}

		order, err := store.GetOrder(orderID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
			} else {
				log.Println("Order fetch error:", err)
				sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order status")
			}
			return
		}

		if order.UserID != ctx.GetInt("userId") {
			sendErrorResponse(ctx, http.StatusForbidden, "Forbidden")
			return
		}

		updated, err := store.UpdateOrderStatus(orderID, statusData.Status)
		if err != nil {
			log.Println("Order status update error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order status")
			return
		}
		ctx.JSON(http.StatusOK, updated)
	}
}
