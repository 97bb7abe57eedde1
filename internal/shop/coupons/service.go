// Package coupons contains the coupon administration domain layer: typed API
// payloads, local form validation, display-status derivation, and the
// orchestration unit behind the coupons page.
package coupons

import (
	"context"
	"math"
	"strconv"
	"time"

	"finitefield.org/shopfront/internal/shop/api"
)

// Service exposes the coupon operations of the backend storefront API.
type Service interface {
	// Create publishes a new discount coupon.
	Create(ctx context.Context, req CreateRequest) api.Result[CreateResponse]

	// List returns all known coupons.
	List(ctx context.Context) api.Result[ListResult]
}

// UnlimitedUsageSentinel is the backend's "no limit" marker: the maximum
// 32-bit signed integer is displayed identically to an absent usage limit.
const UnlimitedUsageSentinel = math.MaxInt32

// Coupon is the server-owned coupon payload. ValidFrom, ValidTo, and
// UsageLimit are optional; their display status is derived at render time,
// never stored.
type Coupon struct {
	Code         string     `json:"code"`
	DiscountRate float64    `json:"discountRate"`
	ValidFrom    *time.Time `json:"validFrom,omitempty"`
	ValidTo      *time.Time `json:"validTo,omitempty"`
	UsageLimit   *int       `json:"usageLimit,omitempty"`
	UsedCount    int        `json:"usedCount"`
}

// CreateRequest is the coupon publication payload. Timestamps are RFC 3339.
type CreateRequest struct {
	Code         string     `json:"code"`
	DiscountRate float64    `json:"discountRate"`
	ValidFrom    *time.Time `json:"validFrom,omitempty"`
	ValidTo      *time.Time `json:"validTo,omitempty"`
	UsageLimit   *int       `json:"usageLimit,omitempty"`
}

// CreateResponse acknowledges a created coupon.
type CreateResponse struct {
	Code string `json:"code"`
}

// ListResult is the coupon listing response envelope.
type ListResult struct {
	Coupons []Coupon `json:"coupons"`
}

// DisplayStatus is the derived, non-persisted classification of a coupon.
type DisplayStatus string

const (
	// StatusActive indicates the coupon is currently redeemable.
	StatusActive DisplayStatus = "Active"
	// StatusNotYetValid indicates the validity window has not opened.
	StatusNotYetValid DisplayStatus = "Not Yet Valid"
	// StatusExpired indicates the validity window has closed.
	StatusExpired DisplayStatus = "Expired"
	// StatusLimitReached indicates the usage limit has been exhausted.
	StatusLimitReached DisplayStatus = "Limit Reached"
)

// Status derives the display status against the provided "now". Precedence
// is total and deterministic: Not Yet Valid, then Expired, then Limit
// Reached, then Active.
func (c Coupon) Status(now time.Time) DisplayStatus {
	if c.ValidFrom != nil && now.Before(*c.ValidFrom) {
		return StatusNotYetValid
	}
	if c.ValidTo != nil && now.After(*c.ValidTo) {
		return StatusExpired
	}
	if c.UsageLimit != nil && c.UsedCount >= *c.UsageLimit {
		return StatusLimitReached
	}
	return StatusActive
}

// UsageLimitLabel renders the usage limit for display: "Unlimited" when
// absent or equal to the backend sentinel, the number otherwise.
func (c Coupon) UsageLimitLabel() string {
	if c.UsageLimit == nil || *c.UsageLimit == UnlimitedUsageSentinel {
		return "Unlimited"
	}
	return strconv.Itoa(*c.UsageLimit)
}
