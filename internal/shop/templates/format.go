package templates

import (
	"fmt"
	"time"
)

// FormatTime renders a server timestamp in the viewer's local zone.
func FormatTime(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.In(time.Local).Format("2006-01-02 15:04")
}

// FormatPrice renders a monetary amount with two decimals.
func FormatPrice(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatRate renders a fractional rate as a percentage.
func FormatRate(rate float64) string {
	return fmt.Sprintf("%.0f%%", rate*100)
}
