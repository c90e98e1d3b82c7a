package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	secret := "test_secret"
	signature := sign("order_123", "pay_456", secret)

	assert.True(t, VerifySignature("order_123", "pay_456", signature, secret))
	assert.False(t, VerifySignature("order_123", "pay_456", signature, "other_secret"))
	assert.False(t, VerifySignature("order_999", "pay_456", signature, secret))
	assert.False(t, VerifySignature("order_123", "pay_456", "deadbeef", secret))
}

func TestClientVerifySignature(t *testing.T) {
	client := NewClientWithCredentials("key", "secret")
	signature := sign("order_1", "pay_1", "secret")
	assert.True(t, client.VerifySignature("order_1", "pay_1", signature))
}

func TestToPaise(t *testing.T) {
	// $1.00 (100 cents) at the fixed rate of 75 is 7500 paise.
	assert.Equal(t, 7500, ToPaise(100))
	assert.Equal(t, 0, ToPaise(0))
	// $895.00 dress.
	assert.Equal(t, 6712500, ToPaise(89500))
}

func TestCreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "key_id", user)
		assert.Equal(t, "key_secret", pass)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.EqualValues(t, 7500, body["amount"])
		assert.Equal(t, "INR", body["currency"])
		assert.Equal(t, "rcpt-1", body["receipt"])

		json.NewEncoder(w).Encode(map[string]any{
			"id":       "order_test123",
			"amount":   7500,
			"currency": "INR",
			"receipt":  "rcpt-1",
			"status":   "created",
		})
	}))
	defer server.Close()

	client := NewClientWithCredentials("key_id", "key_secret")
	client.BaseURL = server.URL

	order, err := client.CreateOrder(7500, "rcpt-1", map[string]string{"userId": "1"})
	require.NoError(t, err)
	assert.Equal(t, "order_test123", order.ID)
	assert.Equal(t, 7500, order.Amount)
	assert.Equal(t, "created", order.Status)
}

func TestCreateOrderGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"description":"amount is invalid"}}`))
	}))
	defer server.Close()

	client := NewClientWithCredentials("key_id", "key_secret")
	client.BaseURL = server.URL

	_, err := client.CreateOrder(-1, "rcpt-2", nil)
	assert.Error(t, err)
}

func TestCreateOrderMissingCredentials(t *testing.T) {
	client := NewClientWithCredentials("", "")
	_, err := client.CreateOrder(100, "rcpt-3", nil)
	assert.Error(t, err)
}
