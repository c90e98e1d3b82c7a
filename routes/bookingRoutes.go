package routes

import (
	"github.com/dripitout/dripitout-api/controllers"
	"github.com/dripitout/dripitout-api/middlewares"
	"github.com/dripitout/dripitout-api/storage"
	"github.com/gin-gonic/gin"
)

func BookingRoutes(server *gin.Engine, store storage.Storage) {
	server.POST("/api/tailor-bookings", middlewares.OptionalAuth(), controllers.CreateTailorBooking(store))
	server.GET("/api/tailor-bookings", middlewares.RequireAuth(), controllers.GetTailorBookings(store))
	server.PUT("/api/tailor-bookings/:id/status", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.UpdateTailorBookingStatus(store))

	server.POST("/api/online-appointments", middlewares.OptionalAuth(), controllers.CreateOnlineAppointment(store))
	server.GET("/api/online-appointments", middlewares.RequireAuth(), controllers.GetOnlineAppointments(store))
	server.POST("/api/online-appointments/:id/images", middlewares.RequireAuth(), controllers.UploadReferenceImages(store))
	server.PUT("/api/online-appointments/:id/status", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.UpdateOnlineAppointmentStatus(store))

	server.POST("/api/contact", controllers.CreateContactSupport(store))
}
