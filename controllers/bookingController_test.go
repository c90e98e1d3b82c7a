package controllers_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/dripitout/dripitout-api/models"
	"github.com/dripitout/dripitout-api/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func bookingPayload() gin.H {
	return gin.H{
		"firstName":   "Ada",
		"lastName":    "Lovelace",
		"email":       "ada@example.com",
		"phone":       "+1234567890",
		"address":     "12 Savile Row",
		"date":        "2025-07-01",
		"time":        "14:00",
		"serviceType": "Bespoke Suit Fitting",
	}
}

// loginAsAdmin seeds an admin account directly and signs in through the
// login endpoint.
func loginAsAdmin(t *testing.T, server *gin.Engine, store *storage.MemStorage) []*http.Cookie {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, store.CreateUser(&models.User{
		Username: "staff",
		Password: string(hash),
		FullName: "Staff Member",
		Email:    "staff@example.com",
		Role:     "admin",
	}))

	w := doJSON(server, http.MethodPost, "/api/login", gin.H{
		"username": "staff",
		"password": "secret123",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return w.Result().Cookies()
}

func TestCreateTailorBookingAnonymous(t *testing.T) {
	server, _ := newTestServer(t)

	w := doJSON(server, http.MethodPost, "/api/tailor-bookings", bookingPayload(), nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.EqualValues(t, 0, body["userId"])
	assert.Equal(t, "pending", body["status"])
}

func TestCreateTailorBookingSignedIn(t *testing.T) {
	server, store := newTestServer(t)
	cookies := signup(t, server, "tailorclient")

	w := doJSON(server, http.MethodPost, "/api/tailor-bookings", bookingPayload(), cookies)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.EqualValues(t, 1, decodeBody(t, w)["userId"])

	bookings, err := store.GetTailorBookings(1)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "Bespoke Suit Fitting", bookings[0].ServiceType)
}

func TestGetTailorBookingsOwnOnly(t *testing.T) {
	server, _ := newTestServer(t)
	first := signup(t, server, "firstclient")
	second := signup(t, server, "secondclient")

	w := doJSON(server, http.MethodPost, "/api/tailor-bookings", bookingPayload(), first)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(server, http.MethodGet, "/api/tailor-bookings", nil, second)
	require.Equal(t, http.StatusOK, w.Code)
	var bookings []models.TailorBooking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bookings))
	assert.Empty(t, bookings)

	w = doJSON(server, http.MethodGet, "/api/tailor-bookings", nil, first)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bookings))
	assert.Len(t, bookings, 1)
}

func TestGetTailorBookingsRequiresAuth(t *testing.T) {
	server, _ := newTestServer(t)

	w := doJSON(server, http.MethodGet, "/api/tailor-bookings", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateTailorBookingStatus(t *testing.T) {
	server, store := newTestServer(t)
	customer := signup(t, server, "bookingowner")
	admin := loginAsAdmin(t, server, store)

	w := doJSON(server, http.MethodPost, "/api/tailor-bookings", bookingPayload(), customer)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(server, http.MethodPut, "/api/tailor-bookings/1/status", gin.H{"status": "confirmed"}, customer)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(server, http.MethodPut, "/api/tailor-bookings/1/status", gin.H{"status": "confirmed"}, admin)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "confirmed", decodeBody(t, w)["status"])

	w = doJSON(server, http.MethodPut, "/api/tailor-bookings/99/status", gin.H{"status": "confirmed"}, admin)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateOnlineAppointment(t *testing.T) {
	server, store := newTestServer(t)
	cookies := signup(t, server, "virtualclient")

	w := doJSON(server, http.MethodPost, "/api/online-appointments", gin.H{
		"firstName": "Grace",
		"lastName":  "Hopper",
		"email":     "grace@example.com",
		"date":      "2025-07-02",
		"time":      "10:30",
		"notes":     "Looking for an evening gown",
	}, cookies)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.EqualValues(t, 1, body["userId"])
	assert.Equal(t, "pending", body["status"])

	appointments, err := store.GetOnlineAppointments(1)
	require.NoError(t, err)
	assert.Len(t, appointments, 1)
}

func TestConfirmOnlineAppointmentMintsMeetingLink(t *testing.T) {
	server, store := newTestServer(t)
	customer := signup(t, server, "virtualclient")
	admin := loginAsAdmin(t, server, store)

	w := doJSON(server, http.MethodPost, "/api/online-appointments", gin.H{
		"firstName": "Grace",
		"lastName":  "Hopper",
		"email":     "grace@example.com",
		"date":      "2025-07-02",
		"time":      "10:30",
	}, customer)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(server, http.MethodPut, "/api/online-appointments/1/status", gin.H{"status": "confirmed"}, admin)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, "confirmed", body["status"])
	link, _ := body["meetingLink"].(string)
	assert.True(t, strings.HasPrefix(link, "https://meet.dripitout.com/"), link)

	// Re-confirming keeps the original link.
	w = doJSON(server, http.MethodPut, "/api/online-appointments/1/status", gin.H{"status": "confirmed"}, admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, link, decodeBody(t, w)["meetingLink"])
}

func TestCreateOnlineAppointmentInvalidInput(t *testing.T) {
	server, _ := newTestServer(t)

	w := doJSON(server, http.MethodPost, "/api/online-appointments", gin.H{
		"firstName": "Grace",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateContactSupport(t *testing.T) {
	server, _ := newTestServer(t)

	w := doJSON(server, http.MethodPost, "/api/contact", gin.H{
		"name":    "Curious Customer",
		"email":   "curious@example.com",
		"message": "Do you ship internationally?",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["resolved"])
	assert.EqualValues(t, 1, body["ID"])
	assert.Equal(t, "Curious Customer", body["name"])

	w = doJSON(server, http.MethodPost, "/api/contact", gin.H{"name": "No Email"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
