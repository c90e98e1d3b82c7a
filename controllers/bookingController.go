package controllers

import (
	"errors"
	"log"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/dripitout/dripitout-api/models"
	"github.com/dripitout/dripitout-api/storage"
	"github.com/dripitout/dripitout-api/utils"
	"github.com/gin-gonic/gin"
)

func sendBookingConfirmationEmail(booking *models.TailorBooking) error {
	emailData := utils.EmailData{
		Name:    booking.FirstName + " " + booking.LastName,
		Message: "Your tailor appointment has been received. We will confirm it shortly.",
		Detail:  booking.Date + ", " + booking.Time + " — " + booking.ServiceType,
		LogoURL: "https://www.dripitout.com/images/logo.jpg",
	}

	templatePath := filepath.Join("templates", "booking_confirmation.html")
	return utils.SendEmail(booking.Email, "Your Tailor Appointment", emailData, templatePath)
}

// CreateTailorBooking records an in-person appointment request. Works for
// anonymous visitors too, with the 0 user id.
func CreateTailorBooking(store storage.Storage) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var booking models.TailorBooking
		if err := ctx.ShouldBindJSON(&booking); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}
		booking.UserID = ctx.GetInt("userId")
		if booking.Status == "" {
			booking.Status = models.BookingStatusPending
		}

		if err := store.CreateTailorBooking(&booking); err != nil {
			log.Println("Booking creation error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create tailor booking")
			return
		}

		if err := sendBookingConfirmationEmail(&booking); err != nil {
			log.Println("Error sending booking confirmation email:", err)
		}

		ctx.JSON(http.StatusCreated, booking)
	}
}

// GetTailorBookings lists the signed-in user's bookings.
func GetTailorBookings(store storage.Storage) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		bookings, err := store.GetTailorBookings(ctx.GetInt("userId"))
		if err != nil {
			log.Println("Booking fetch error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch tailor bookings")
			return
		}
		ctx.JSON(http.StatusOK, bookings)
	}
}

// UpdateTailorBookingStatus is the staff-side status overwrite.
func UpdateTailorBookingStatus(store storage.Storage) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		bookingID, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse booking id")
			return
		}

		var statusData struct {
			Status string `json:"status" binding:"required"`
		}
		if err := ctx.ShouldBindJSON(&statusData); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
			return
		}

		booking, err := store.UpdateTailorBookingStatus(bookingID, statusData.Status)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, "Booking not found")
			} else {
				log.Println("Booking status update error:", err)
				sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update booking status")
			}
			return
		}
		ctx.JSON(http.StatusOK, booking)
	}
}
