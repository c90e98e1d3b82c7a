package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Drip It Out API.

The following are the endpoints for this API:

AUTH
- POST "/api/register" - Create user account
- POST "/api/login" - Start a session
- POST "/api/logout" - End the session
- GET "/api/user" - Current user
- PUT "/api/user" - Update profile

PRODUCTS
- GET "/api/products?category=&collection=" - List designs
- GET "/api/products/:id" - Get design by ID
- GET "/api/products/:id/reviews" - List reviews
- POST "/api/products/:id/reviews" - Add a review

CART
- GET "/api/cart" - Fetch saved cart
- PUT "/api/cart" - Save cart
- DELETE "/api/cart" - Clear saved cart
- POST "/api/cart/discount" - Validate a discount code

ORDERS
- POST "/api/orders" - Place an order
- GET "/api/orders" - Order history (add ?grouped=true for status tabs)
- GET "/api/orders/:id" - Order with items
- PUT "/api/orders/:id/status" - Update order status

PAYMENT
- POST "/api/payment/order" - Create a gateway payment order
- POST "/api/payment/verify" - Verify a payment signature

BOOKINGS
- POST "/api/tailor-bookings" - Book a tailor appointment
- GET "/api/tailor-bookings" - Your bookings
- POST "/api/online-appointments" - Book a virtual consultation
- GET "/api/online-appointments" - Your consultations
- POST "/api/online-appointments/:id/images" - Upload reference images

SUPPORT
- POST "/api/contact" - Contact support`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
