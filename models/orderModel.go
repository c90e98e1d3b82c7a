package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order monetary fields are in minor currency units (cents). PaymentDetails
// is an opaque provider payload (method, masked card suffix or UPI id,
// provider payment id) and is never interpreted server-side.
type Order struct {
	gorm.Model
	UserID          int            `json:"userId"`
	Status          string         `json:"status"`
	TotalAmount     int            `json:"totalAmount"`
	DiscountCode    string         `json:"discountCode"`
	DiscountAmount  int            `json:"discountAmount"`
	ShippingAddress string         `json:"shippingAddress"`
	PaymentDetails  datatypes.JSON `json:"paymentDetails"`
	OrderItems      []OrderItem    `json:"orderItems,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem snapshots the price at purchase so historical totals stay
// stable when the catalog price changes.
type OrderItem struct {
	gorm.Model
	OrderID         int    `json:"orderId"`
	ProductID       int    `json:"productId"`
	Quantity        int    `json:"quantity"`
	Size            string `json:"size"`
	PriceAtPurchase int    `json:"priceAtPurchase"`
}

// OrderBuckets groups orders for the tabbed history view. Processing
// holds both pending and paid orders.
type OrderBuckets struct {
	Processing []Order `json:"processing"`
	Shipped    []Order `json:"shipped"`
	Delivered  []Order `json:"delivered"`
	Cancelled  []Order `json:"cancelled"`
}

// BucketOrders partitions orders by status for display. Unknown statuses
// land in Processing so stray records remain visible.
func BucketOrders(orders []Order) OrderBuckets {
	var buckets OrderBuckets
	for _, order := range orders {
		switch order.Status {
		case OrderStatusShipped:
			buckets.Shipped = append(buckets.Shipped, order)
		case OrderStatusDelivered:
			buckets.Delivered = append(buckets.Delivered, order)
		case OrderStatusCancelled:
			buckets.Cancelled = append(buckets.Cancelled, order)
		default:
			buckets.Processing = append(buckets.Processing, order)
		}
	}
	return buckets
}
