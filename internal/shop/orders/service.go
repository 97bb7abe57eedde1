// Package orders contains the order-facing domain layer of the storefront
// client: typed API payloads, local form validation, and the orchestration
// units behind the place-order, order-history, and order-detail pages.
package orders

import (
	"context"
	"time"

	"finitefield.org/shopfront/internal/shop/api"
)

// Service exposes the order operations of the backend storefront API.
type Service interface {
	// Place submits a new order and returns the assigned order number.
	Place(ctx context.Context, req PlaceRequest) api.Result[PlaceResponse]

	// Get fetches the full detail payload for one order.
	Get(ctx context.Context, orderNumber string) api.Result[Order]

	// List returns the order history, optionally filtered by order number.
	List(ctx context.Context, orderNumberFilter string) api.Result[ListResult]

	// Cancel requests cancellation of a placed order. The backend enforces
	// the PLACED -> CANCELLED transition authoritatively.
	Cancel(ctx context.Context, orderNumber string) api.Result[struct{}]
}

// Status represents the canonical lifecycle state of an order. The only
// transition is PLACED -> CANCELLED, performed server-side.
type Status string

const (
	// StatusPlaced indicates the order is active.
	StatusPlaced Status = "PLACED"
	// StatusCancelled indicates the order was cancelled.
	StatusCancelled Status = "CANCELLED"
)

// PlaceRequest is the order submission payload.
type PlaceRequest struct {
	SKU        string `json:"sku"`
	Quantity   int    `json:"quantity"`
	Country    string `json:"country"`
	CouponCode string `json:"couponCode,omitempty"`
}

// PlaceResponse acknowledges a placed order.
type PlaceResponse struct {
	OrderNumber string `json:"orderNumber"`
}

// Order is the full, server-owned order detail payload. All pricing fields
// are computed by the backend; the client renders them as given.
type Order struct {
	OrderNumber       string    `json:"orderNumber"`
	OrderTimestamp    time.Time `json:"orderTimestamp"`
	SKU               string    `json:"sku"`
	Country           string    `json:"country"`
	Quantity          int       `json:"quantity"`
	UnitPrice         float64   `json:"unitPrice"`
	BasePrice         float64   `json:"basePrice"`
	DiscountRate      float64   `json:"discountRate"`
	DiscountAmount    float64   `json:"discountAmount"`
	SubtotalPrice     float64   `json:"subtotalPrice"`
	TaxRate           float64   `json:"taxRate"`
	TaxAmount         float64   `json:"taxAmount"`
	TotalPrice        float64   `json:"totalPrice"`
	Status            Status    `json:"status"`
	AppliedCouponCode string    `json:"appliedCouponCode,omitempty"`
}

// CanCancel reports whether the cancel action may be offered for this order:
// only while the last-known status is PLACED. The client never flips the
// status locally; a successful cancel is followed by a refetch.
func (o Order) CanCancel() bool {
	return o.Status == StatusPlaced
}

// HistoryItem is the subset of order fields returned by the history listing.
type HistoryItem struct {
	OrderNumber       string    `json:"orderNumber"`
	OrderTimestamp    time.Time `json:"orderTimestamp"`
	SKU               string    `json:"sku"`
	Country           string    `json:"country"`
	Quantity          int       `json:"quantity"`
	TotalPrice        float64   `json:"totalPrice"`
	Status            Status    `json:"status"`
	AppliedCouponCode string    `json:"appliedCouponCode,omitempty"`
}

// ListResult is the order history response envelope.
type ListResult struct {
	Orders []HistoryItem `json:"orders"`
}
