package coupons

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"finitefield.org/shopfront/internal/shop/api"
)

const validationSummary = "The request contains one or more validation errors"

// datetimeLocalLayout matches the value format of an HTML datetime-local
// input, the form in which operators enter validity bounds.
const datetimeLocalLayout = "2006-01-02T15:04"

// Form carries the coupon creation inputs as entered. Numeric and temporal
// fields keep their raw text so validation failures re-render the operator's
// keystrokes unchanged.
type Form struct {
	Code              string
	DiscountRateInput string
	ValidFromInput    string
	ValidToInput      string
	UsageLimitInput   string
}

// Validate checks the form locally before any request is sent, collecting
// every detected violation. Returns nil when the form is valid.
func (f Form) Validate() *api.APIError {
	var fieldErrors []string

	if strings.TrimSpace(f.Code) == "" {
		fieldErrors = append(fieldErrors, "code: Coupon code must not be blank")
	}

	rate := strings.TrimSpace(f.DiscountRateInput)
	if rate == "" {
		fieldErrors = append(fieldErrors, "discountRate: Discount rate must not be null")
	} else if value, err := strconv.ParseFloat(rate, 64); err != nil {
		fieldErrors = append(fieldErrors, "discountRate: Discount rate must not be null")
	} else if value <= 0 {
		fieldErrors = append(fieldErrors, "discountRate: Discount rate must be greater than 0.00")
	} else if value > 1 {
		fieldErrors = append(fieldErrors, "discountRate: Discount rate must be at most 1.00")
	}

	if limit := strings.TrimSpace(f.UsageLimitInput); limit != "" {
		if value, err := strconv.Atoi(limit); err != nil || value <= 0 {
			fieldErrors = append(fieldErrors, "usageLimit: Usage limit must be positive")
		}
	}

	for _, bound := range []struct {
		field string
		label string
		raw   string
	}{
		{field: "validFrom", label: "Valid from", raw: f.ValidFromInput},
		{field: "validTo", label: "Valid to", raw: f.ValidToInput},
	} {
		raw := strings.TrimSpace(bound.raw)
		if raw == "" {
			continue
		}
		if _, err := time.ParseInLocation(datetimeLocalLayout, raw, time.Local); err != nil {
			fieldErrors = append(fieldErrors, bound.field+": "+bound.label+" must be a valid date/time")
		}
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return api.NewValidationError(validationSummary, fieldErrors)
}

// request converts a validated form into the wire payload. Validity bounds
// are interpreted in the operator's local zone and submitted as UTC RFC 3339
// instants.
func (f Form) request() CreateRequest {
	req := CreateRequest{Code: strings.TrimSpace(f.Code)}
	req.DiscountRate, _ = strconv.ParseFloat(strings.TrimSpace(f.DiscountRateInput), 64)

	if raw := strings.TrimSpace(f.ValidFromInput); raw != "" {
		if ts, err := time.ParseInLocation(datetimeLocalLayout, raw, time.Local); err == nil {
			utc := ts.UTC()
			req.ValidFrom = &utc
		}
	}
	if raw := strings.TrimSpace(f.ValidToInput); raw != "" {
		if ts, err := time.ParseInLocation(datetimeLocalLayout, raw, time.Local); err == nil {
			utc := ts.UTC()
			req.ValidTo = &utc
		}
	}
	if raw := strings.TrimSpace(f.UsageLimitInput); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil {
			req.UsageLimit = &value
		}
	}
	return req
}

// SuggestCode proposes a coupon code in the SAVE<4 digits> shape used to
// prefill the creation form.
func SuggestCode() string {
	return fmt.Sprintf("SAVE%d", 1000+rand.Intn(9000))
}
