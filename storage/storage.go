// Package storage defines the persistence boundary for the storefront.
// Handlers depend on the Storage interface only, so the backing store can
// be swapped without touching business logic.
package storage

import (
	"errors"

	"github.com/dripitout/dripitout-api/models"
)

// ErrNotFound is returned when a record does not exist, regardless of
// backend.
var ErrNotFound = errors.New("record not found")

type Storage interface {
	// Users
	GetUser(id int) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	CreateUser(user *models.User) error
	UpdateUserProfile(id int, update models.ProfileUpdate) (*models.User, error)

	// Products
	GetAllProducts() ([]models.Product, error)
	GetProductsByCategory(category string) ([]models.Product, error)
	GetProductsByCollection(collection string) ([]models.Product, error)
	GetProduct(id int) (*models.Product, error)
	CreateProduct(product *models.Product) error
	UpdateProduct(id int, update *models.Product) (*models.Product, error)
	SetProductImage(id int, url string) error

	// Reviews
	GetReviews(productID int) ([]models.Review, error)
	CreateReview(review *models.Review) error

	// Orders. CreateOrderWithItems persists the order and its lines as a
	// unit; items receive the generated order id.
	GetOrders(userID int) ([]models.Order, error)
	GetOrder(id int) (*models.Order, error)
	CreateOrderWithItems(order *models.Order, items []models.OrderItem) error
	GetOrderItems(orderID int) ([]models.OrderItem, error)
	UpdateOrderStatus(id int, status string) (*models.Order, error)

	// Tailor bookings
	GetTailorBookings(userID int) ([]models.TailorBooking, error)
	GetTailorBooking(id int) (*models.TailorBooking, error)
	CreateTailorBooking(booking *models.TailorBooking) error
	UpdateTailorBookingStatus(id int, status string) (*models.TailorBooking, error)

	// Online appointments
	GetOnlineAppointments(userID int) ([]models.OnlineAppointment, error)
	GetOnlineAppointment(id int) (*models.OnlineAppointment, error)
	CreateOnlineAppointment(appointment *models.OnlineAppointment) error
	UpdateOnlineAppointmentStatus(id int, status string) (*models.OnlineAppointment, error)
	SetAppointmentMeetingLink(id int, link string) (*models.OnlineAppointment, error)
	SetAppointmentReferenceImages(id int, urls []string) (*models.OnlineAppointment, error)

	// Contact support
	CreateContactSupport(contact *models.ContactSupport) error
}
