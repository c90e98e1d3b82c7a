package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dripitout/dripitout-api/models"
	"github.com/dripitout/dripitout-api/storage"
	"github.com/dripitout/dripitout-api/utils"
	"github.com/gin-gonic/gin"
)

func sendAppointmentConfirmationEmail(appointment *models.OnlineAppointment) error {
	emailData := utils.EmailData{
		Name:    appointment.FirstName + " " + appointment.LastName,
		Message: "Your virtual consultation has been received. A meeting link will follow once it is confirmed.",
		Detail:  appointment.Date + ", " + appointment.Time,
		LogoURL: "https://www.dripitout.com/images/logo.jpg",
	}

	templatePath := filepath.Join("templates", "appointment_confirmation.html")
	return utils.SendEmail(appointment.Email, "Your Virtual Consultation", emailData, templatePath)
}

// CreateOnlineAppointment records a virtual consultation request.
// Anonymous visitors get the 0 user id.
func CreateOnlineAppointment(store storage.Storage) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var appointment models.OnlineAppointment
		if err := ctx.ShouldBindJSON(&appointment); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}
		appointment.UserID = ctx.GetInt("userId")
		if appointment.Status == "" {
			appointment.Status = models.BookingStatusPending
		}

		if err := store.CreateOnlineAppointment(&appointment); err != nil {
			log.Println("Appointment creation error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create online appointment")
			return
		}

		if err := sendAppointmentConfirmationEmail(&appointment); err != nil {
			log.Println("Error sending appointment confirmation email:", err)
		}

		ctx.JSON(http.StatusCreated, appointment)
	}
}

// GetOnlineAppointments lists the signed-in user's consultations.
func GetOnlineAppointments(store storage.Storage) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		appointments, err := store.GetOnlineAppointments(ctx.GetInt("userId"))
		if err != nil {
			log.Println("Appointment fetch error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch online appointments")
			return
		}
		ctx.JSON(http.StatusOK, appointments)
	}
}

// UploadReferenceImages pushes the customer's inspiration images to S3
// and attaches their URLs to the appointment.
func UploadReferenceImages(store storage.Storage) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		appointmentID, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse appointment id")
			return
		}

		appointment, err := store.GetOnlineAppointment(appointmentID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, "Appointment not found")
			} else {
				sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch appointment")
			}
			return
		}
		if appointment.UserID != ctx.GetInt("userId") {
			sendErrorResponse(ctx, http.StatusForbidden, "Forbidden")
			return
		}

		form, err := ctx.MultipartForm()
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid form data")
			return
		}
		files := form.File["images"]
		if len(files) == 0 {
			sendErrorResponse(ctx, http.StatusBadRequest, "No files uploaded")
			return
		}

		uploader, err := getAWSUploader()
		if err != nil {
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to configure AWS")
			return
		}

		var uploadedUrls []string
		for _, file := range files {
			f, openErr := file.Open()
			if openErr != nil {
				log.Printf("Error opening file %s: %v", file.Filename, openErr)
				continue
			}

			key := fmt.Sprintf("appointments/%d-%s-%s", appointmentID, time.Now().Format("20060102150405"), file.Filename)
			url, uploadErr := uploadToS3(uploader, key, file.Header.Get("Content-Type"), f)
			f.Close()

			if uploadErr != nil {
				log.Printf("Error uploading file %s: %v", file.Filename, uploadErr)
				continue
			}
			uploadedUrls = append(uploadedUrls, url)
		}

		updated, err := store.SetAppointmentReferenceImages(appointmentID, uploadedUrls)
		if err != nil {
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save reference images")
			return
		}
		ctx.JSON(http.StatusOK, updated)
	}
}

// UpdateOnlineAppointmentStatus is the staff-side status overwrite.
func UpdateOnlineAppointmentStatus(store storage.Storage) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		appointmentID, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse appointment id")
			return
		}

		var statusData struct {
			Status string `json:"status" binding:"required"`
		}
		if err := ctx.ShouldBindJSON(&statusData); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
			return
		}

		appointment, err := store.UpdateOnlineAppointmentStatus(appointmentID, statusData.Status)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, "Appointment not found")
			} else {
				log.Println("Appointment status update error:", err)
				sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update appointment status")
			}
			return
		}

		// Confirming mints the meeting link the customer joins with.
		if appointment.Status == models.BookingStatusConfirmed && appointment.MeetingLink == "" {
			code, codeErr := utils.GenerateCode(8)
			if codeErr != nil {
				log.Println("Meeting code generation error:", codeErr)
			} else {
				link := "https://meet.dripitout.com/" + code
				if appointment, err = store.SetAppointmentMeetingLink(appointmentID, link); err != nil {
					log.Println("Meeting link save error:", err)
					sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update appointment status")
					return
				}
			}
		}
		ctx.JSON(http.StatusOK, appointment)
	}
}
