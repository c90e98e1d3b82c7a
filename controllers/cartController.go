package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/dripitout/dripitout-api/cart"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// Carts outlive a browsing session but not a month of inactivity.
const cartTTL = 30 * 24 * time.Hour

func cartKey(userID int) string {
	return fmt.Sprintf("cart:%d", userID)
}

// GetCart returns the user's saved cart snapshot, or an empty cart when
// none is stored.
func GetCart(rdb *redis.Client) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID := ctx.GetInt("userId")

		payload, err := rdb.Get(context.Background(), cartKey(userID)).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				ctx.JSON(http.StatusOK, cart.NewStore().Snapshot())
				return
			}
			log.Println("Cart fetch error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
			return
		}

		var snapshot cart.Snapshot
		if err := json.Unmarshal([]byte(payload), &snapshot); err != nil {
			log.Println("Cart decode error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to decode cart")
			return
		}
		ctx.JSON(http.StatusOK, snapshot)
	}
}

// SaveCart replaces the user's saved cart with the submitted snapshot.
func SaveCart(rdb *redis.Client) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID := ctx.GetInt("userId")

		var snapshot cart.Snapshot
		if err := ctx.ShouldBindJSON(&snapshot); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		// Round-trip through the store so quantities and totals obey the
		// same rules the client enforces.
		store := cart.NewStore()
		store.Restore(snapshot)
		normalized := store.Snapshot()

		payload, err := json.Marshal(normalized)
		if err != nil {
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to encode cart")
			return
		}

		if err := rdb.Set(context.Background(), cartKey(userID), payload, cartTTL).Err(); err != nil {
			log.Println("Cart save error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save cart")
			return
		}
		ctx.JSON(http.StatusOK, normalized)
	}
}

// ClearCart drops the saved snapshot, typically after a successful
// checkout.
func ClearCart(rdb *redis.Client) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID := ctx.GetInt("userId")

		if err := rdb.Del(context.Background(), cartKey(userID)).Err(); err != nil {
			log.Println("Cart clear error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to clear cart")
			return
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true})
	}
}

// ValidateDiscount resolves a promotional code against the fixed table.
func ValidateDiscount() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var input struct {
			Code string `json:"code"`
		}
		if err := ctx.ShouldBindJSON(&input); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		code, percentage, err := cart.Lookup(input.Code)
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
			return
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{"code": code, "percentage": percentage})
	}
}
