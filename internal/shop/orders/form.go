package orders

import (
	"math"
	"strconv"
	"strings"

	"finitefield.org/shopfront/internal/shop/api"
)

// validationSummary is the summary line used for every local validation error.
const validationSummary = "The request contains one or more validation errors"

// Form carries the order placement inputs as entered. QuantityInput keeps
// the raw keystrokes so a validation failure can re-render exactly what the
// user typed; it is never sent to the server.
type Form struct {
	SKU           string
	QuantityInput string
	Country       string
	CouponCode    string
}

// DefaultForm returns the form defaults applied on first render and after a
// successful submit.
func DefaultForm() Form {
	return Form{Country: "US"}
}

// Validate checks the form locally before any network call, accumulating all
// violations in field declaration order (sku, quantity, country). The
// quantity field is checked fail-fast internally so at most one quantity
// error is produced. Returns nil when the form is valid.
func (f Form) Validate() *api.APIError {
	var fieldErrors []string

	if strings.TrimSpace(f.SKU) == "" {
		fieldErrors = append(fieldErrors, "sku: SKU must not be empty")
	}

	if msg := validateQuantity(f.QuantityInput); msg != "" {
		fieldErrors = append(fieldErrors, "quantity: "+msg)
	}

	if strings.TrimSpace(f.Country) == "" {
		fieldErrors = append(fieldErrors, "country: Country must not be empty")
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return api.NewValidationError(validationSummary, fieldErrors)
}

func validateQuantity(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "Quantity must not be empty"
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value != math.Trunc(value) {
		return "Quantity must be an integer"
	}
	if value <= 0 {
		return "Quantity must be positive"
	}
	// Beyond the wire's 32-bit range the value cannot survive conversion.
	if value > math.MaxInt32 {
		return "Quantity must be an integer"
	}
	return ""
}

// request converts a validated form into the wire payload. A blank coupon
// code is omitted entirely.
func (f Form) request() PlaceRequest {
	quantity, _ := strconv.ParseFloat(strings.TrimSpace(f.QuantityInput), 64)
	return PlaceRequest{
		SKU:        strings.TrimSpace(f.SKU),
		Quantity:   int(quantity),
		Country:    strings.TrimSpace(f.Country),
		CouponCode: strings.TrimSpace(f.CouponCode),
	}
}
