// Package payment is the Razorpay adapter: order creation against the
// hosted checkout API, payment signature verification, and the static
// display-currency conversion.
package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://api.razorpay.com"

// usdToINRRate is a fixed conversion rate from the display currency to
// the provider's settlement currency. Not a live feed.
const usdToINRRate = 75

type Client struct {
	BaseURL   string
	keyID     string
	keySecret string
	http      *resty.Client
}

// NewClient reads RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET from the
// environment.
func NewClient() *Client {
	return &Client{
		BaseURL:   defaultBaseURL,
		keyID:     os.Getenv("RAZORPAY_KEY_ID"),
		keySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		http:      resty.New().SetTimeout(30 * time.Second),
	}
}

func NewClientWithCredentials(keyID, keySecret string) *Client {
	client := NewClient()
	client.keyID = keyID
	client.keySecret = keySecret
	return client
}

// KeyID is exposed so checkout responses can hand the publishable key to
// the hosted widget.
func (c *Client) KeyID() string {
	return c.keyID
}

// GatewayOrder is the subset of the provider's order object the
// storefront cares about.
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// CreateOrder registers a payment order with the gateway. amountPaise is
// in the provider's smallest currency unit.
func (c *Client) CreateOrder(amountPaise int, receipt string, notes map[string]string) (*GatewayOrder, error) {
	if c.keyID == "" || c.keySecret == "" {
		return nil, fmt.Errorf("razorpay credentials are not set")
	}

	body := map[string]any{
		"amount":          amountPaise,
		"currency":        "INR",
		"receipt":         receipt,
		"notes":           notes,
		"payment_capture": 1,
	}

	resp, err := c.http.R().
		SetBasicAuth(c.keyID, c.keySecret).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(body).
		Post(c.BaseURL + "/v1/orders")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("razorpay order request failed with status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	var order GatewayOrder
	if err := json.Unmarshal(resp.Body(), &order); err != nil {
		return nil, fmt.Errorf("failed to parse order response: %w", err)
	}
	if order.ID == "" {
		return nil, fmt.Errorf("order id missing in response: %s", string(resp.Body()))
	}
	return &order, nil
}

// VerifySignature checks the HMAC-SHA256 signature the gateway attaches
// to a completed payment.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifySignature on the client uses its configured secret.
func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	return VerifySignature(orderID, paymentID, signature, c.keySecret)
}

// ToPaise converts an amount in minor display-currency units (cents) to
// paise at the fixed rate.
func ToPaise(amountCents int) int {
	return int(math.Round(float64(amountCents) * usdToINRRate))
}
