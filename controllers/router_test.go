package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dripitout/dripitout-api/routes"
	"github.com/dripitout/dripitout-api/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*gin.Engine, *storage.MemStorage) {
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	store := storage.NewMemStorage()
	server := gin.New()
	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, store)
	routes.ProductRoutes(server, store)
	routes.OrderRoutes(server, store)
	routes.BookingRoutes(server, store)
	return server, store
}

func doJSON(server *gin.Engine, method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	return w
}

// signup registers a fresh account and returns its session cookies.
func signup(t *testing.T, server *gin.Engine, username string) []*http.Cookie {
	t.Helper()
	w := doJSON(server, http.MethodPost, "/api/register", gin.H{
		"username": username,
		"password": "secret123",
		"fullName": "Test User",
		"email":    username + "@example.com",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
