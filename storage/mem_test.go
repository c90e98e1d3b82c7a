package storage

import (
	"testing"

	"github.com/dripitout/dripitout-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStorageSeedsSampleProducts(t *testing.T) {
	s := NewMemStorage()

	products, err := s.GetAllProducts()
	require.NoError(t, err)
	require.NotEmpty(t, products)
	assert.Equal(t, "Silk Evening Dress", products[0].Name)
	assert.EqualValues(t, 1, products[0].ID)
}

func TestMemStorageUsers(t *testing.T) {
	s := NewMemStorage()

	user := &models.User{Username: "ava", Email: "ava@example.com", FullName: "Ava Stone"}
	require.NoError(t, s.CreateUser(user))
	require.NotZero(t, user.ID)

	byName, err := s.GetUserByUsername("ava")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	byEmail, err := s.GetUserByEmail("ava@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = s.GetUserByUsername("nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	updated, err := s.UpdateUserProfile(int(user.ID), models.ProfileUpdate{
		FullName: strPtr("Ava Stone-Miller"),
		Phone:    strPtr("555-0100"),
		Address:  strPtr("12 Savile Row"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ava Stone-Miller", updated.FullName)
	assert.Equal(t, "12 Savile Row", updated.Address)

	// A name-only update merges into the profile, it does not clear the
	// omitted fields.
	renamed, err := s.UpdateUserProfile(int(user.ID), models.ProfileUpdate{
		FullName: strPtr("Ava S. Miller"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ava S. Miller", renamed.FullName)
	assert.Equal(t, "ava@example.com", renamed.Email)
	assert.Equal(t, "555-0100", renamed.Phone)
	assert.Equal(t, "12 Savile Row", renamed.Address)
}

func strPtr(s string) *string {
	return &s
}

func TestMemStorageProductFilters(t *testing.T) {
	s := NewMemStorage()

	dresses, err := s.GetProductsByCategory("Dresses")
	require.NoError(t, err)
	for _, product := range dresses {
		assert.Equal(t, "Dresses", product.Category)
	}
	require.NotEmpty(t, dresses)

	winter, err := s.GetProductsByCollection("Winter Essentials")
	require.NoError(t, err)
	require.NotEmpty(t, winter)
	assert.Equal(t, "Cashmere Overcoat", winter[0].Name)

	none, err := s.GetProductsByCategory("Hats")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemStorageOrderWithItems(t *testing.T) {
	s := NewMemStorage()

	order := &models.Order{
		UserID:      7,
		Status:      models.OrderStatusPending,
		TotalAmount: 20000,
	}
	items := []models.OrderItem{
		{ProductID: 5, Quantity: 2, Size: "M", PriceAtPurchase: 10000},
	}
	require.NoError(t, s.CreateOrderWithItems(order, items))
	require.NotZero(t, order.ID)

	saved, err := s.GetOrder(int(order.ID))
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, saved.Status)

	savedItems, err := s.GetOrderItems(int(order.ID))
	require.NoError(t, err)
	require.Len(t, savedItems, 1)
	assert.Equal(t, int(order.ID), savedItems[0].OrderID)
	assert.Equal(t, 10000, savedItems[0].PriceAtPurchase)

	updated, err := s.UpdateOrderStatus(int(order.ID), models.OrderStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPaid, updated.Status)

	orders, err := s.GetOrders(7)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Len(t, orders[0].OrderItems, 1)
}

func TestMemStorageReviews(t *testing.T) {
	s := NewMemStorage()

	require.NoError(t, s.CreateReview(&models.Review{ProductID: 1, UserID: 3, Rating: 5, Comment: "Impeccable fit"}))
	require.NoError(t, s.CreateReview(&models.Review{ProductID: 2, UserID: 3, Rating: 4}))

	reviews, err := s.GetReviews(1)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, 5, reviews[0].Rating)
}

func TestMemStorageBookingsAndAppointments(t *testing.T) {
	s := NewMemStorage()

	booking := &models.TailorBooking{
		UserID: 0, FirstName: "Noor", LastName: "Khan",
		Email: "noor@example.com", Phone: "555-0101", Address: "4 Bond St",
		Date: "2026-09-12", Time: "2:00 PM - 4:00 PM",
		ServiceType: "Alterations & Adjustments", Status: models.BookingStatusPending,
	}
	require.NoError(t, s.CreateTailorBooking(booking))

	confirmed, err := s.UpdateTailorBookingStatus(int(booking.ID), models.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, confirmed.Status)

	appointment := &models.OnlineAppointment{
		UserID: 9, FirstName: "Noor", LastName: "Khan",
		Email: "noor@example.com", Date: "2026-09-14", Time: "9:00 AM - 11:00 AM",
		Status: models.BookingStatusPending,
	}
	require.NoError(t, s.CreateOnlineAppointment(appointment))

	withImages, err := s.SetAppointmentReferenceImages(int(appointment.ID), []string{"https://cdn.example.com/ref1.jpg"})
	require.NoError(t, err)
	assert.JSONEq(t, `["https://cdn.example.com/ref1.jpg"]`, string(withImages.ReferenceImages))

	withLink, err := s.SetAppointmentMeetingLink(int(appointment.ID), "https://meet.dripitout.com/abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://meet.dripitout.com/abc123", withLink.MeetingLink)

	mine, err := s.GetOnlineAppointments(9)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	_, err = s.SetAppointmentReferenceImages(999, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}
