package controllers

import (
	"log"
	"net/http"

	"github.com/dripitout/dripitout-api/models"
	"github.com/dripitout/dripitout-api/storage"
	"github.com/gin-gonic/gin"
)

// CreateContactSupport records a message from the contact form.
func CreateContactSupport(store storage.Storage) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var contact models.ContactSupport
		if err := ctx.ShouldBindJSON(&contact); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}
		contact.Resolved = false

		if err := store.CreateContactSupport(&contact); err != nil {
			log.Println("Contact creation error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to submit contact form")
			return
		}
		ctx.JSON(http.StatusCreated, contact)
	}
}
