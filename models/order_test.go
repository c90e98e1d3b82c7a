package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func orderWithStatus(id uint, status string) Order {
	o := Order{Status: status}
	o.ID = id
	return o
}

func TestBucketOrders(t *testing.T) {
	orders := []Order{
		orderWithStatus(1, OrderStatusPending),
		orderWithStatus(2, OrderStatusPaid),
		orderWithStatus(3, OrderStatusShipped),
		orderWithStatus(4, OrderStatusDelivered),
		orderWithStatus(5, OrderStatusCancelled),
		orderWithStatus(6, OrderStatusPaid),
	}

	buckets := BucketOrders(orders)

	// Processing holds pending and paid orders together.
	assert.Len(t, buckets.Processing, 3)
	assert.Len(t, buckets.Shipped, 1)
	assert.Len(t, buckets.Delivered, 1)
	assert.Len(t, buckets.Cancelled, 1)

	assert.EqualValues(t, 1, buckets.Processing[0].ID)
	assert.EqualValues(t, 2, buckets.Processing[1].ID)
	assert.EqualValues(t, 6, buckets.Processing[2].ID)
}

func TestBucketOrdersUnknownStatusStaysVisible(t *testing.T) {
	buckets := BucketOrders([]Order{orderWithStatus(1, "misrouted")})
	assert.Len(t, buckets.Processing, 1)
}

func TestBucketOrdersEmpty(t *testing.T) {
	buckets := BucketOrders(nil)
	assert.Empty(t, buckets.Processing)
	assert.Empty(t, buckets.Shipped)
	assert.Empty(t, buckets.Delivered)
	assert.Empty(t, buckets.Cancelled)
}
