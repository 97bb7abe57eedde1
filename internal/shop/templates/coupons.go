package templates

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"

	"finitefield.org/shopfront/internal/shop/coupons"
	"finitefield.org/shopfront/internal/shop/notify"
)

// CouponsData carries the coupon administration page contents.
type CouponsData struct {
	BasePath     string
	Notification notify.State
	Form         coupons.Form
	Coupons      []coupons.Coupon
	Loading      bool
	Creating     bool
	Now          time.Time
}

func CouponsPage(data CouponsData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<h1>Coupons</h1>")

		b.WriteString("<section class=\"panel\"><h2>Create Coupon</h2>")
		fmt.Fprintf(&b, "<form id=\"coupon-form\" method=\"post\" action=\"%s\">", esc(href(data.BasePath, "/coupons")))
		fmt.Fprintf(&b, "<label for=\"code\">Code</label><input id=\"code\" name=\"code\" value=\"%s\">", esc(data.Form.Code))
		fmt.Fprintf(&b, "<label for=\"discountRate\">Discount Rate</label><input id=\"discountRate\" name=\"discountRate\" inputmode=\"decimal\" value=\"%s\" placeholder=\"0.10\">", esc(data.Form.DiscountRateInput))
		fmt.Fprintf(&b, "<label for=\"validFrom\">Valid From</label><input id=\"validFrom\" name=\"validFrom\" type=\"datetime-local\" value=\"%s\">", esc(data.Form.ValidFromInput))
		fmt.Fprintf(&b, "<label for=\"validTo\">Valid To</label><input id=\"validTo\" name=\"validTo\" type=\"datetime-local\" value=\"%s\">", esc(data.Form.ValidToInput))
		fmt.Fprintf(&b, "<label for=\"usageLimit\">Usage Limit</label><input id=\"usageLimit\" name=\"usageLimit\" inputmode=\"numeric\" value=\"%s\" placeholder=\"Leave empty for unlimited\">", esc(data.Form.UsageLimitInput))
		if data.Creating {
			b.WriteString("<button type=\"submit\" disabled>Creating...</button>")
		} else {
			b.WriteString("<button type=\"submit\">Create Coupon</button>")
		}
		b.WriteString("</form></section>")

		switch {
		case data.Loading:
			b.WriteString("<p class=\"empty-state\">Loading coupons...</p>")
		case len(data.Coupons) == 0:
			b.WriteString("<p class=\"empty-state\">No coupons found.</p>")
		default:
			b.WriteString("<table class=\"data-table\" id=\"coupon-list\"><thead><tr>")
			for _, h := range []string{"Code", "Discount", "Valid From", "Valid To", "Usage Limit", "Used", "Status"} {
				fmt.Fprintf(&b, "<th>%s</th>", esc(h))
			}
			b.WriteString("</tr></thead><tbody>")
			for _, c := range data.Coupons {
				status := c.Status(data.Now)
				b.WriteString("<tr>")
				fmt.Fprintf(&b, "<td>%s</td>", esc(c.Code))
				fmt.Fprintf(&b, "<td>%s</td>", esc(FormatRate(c.DiscountRate)))
				fmt.Fprintf(&b, "<td>%s</td>", esc(boundTime(c.ValidFrom, "Immediate")))
				fmt.Fprintf(&b, "<td>%s</td>", esc(boundTime(c.ValidTo, "Never")))
				fmt.Fprintf(&b, "<td>%s</td>", esc(c.UsageLimitLabel()))
				fmt.Fprintf(&b, "<td>%d</td>", c.UsedCount)
				fmt.Fprintf(&b, "<td><span class=\"status status-%s\">%s</span></td>",
					esc(statusClass(status)), esc(string(status)))
				b.WriteString("</tr>")
			}
			b.WriteString("</tbody></table>")
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
	return Layout("Coupons", data.BasePath, data.Notification, body)
}

// boundTime renders an optional validity bound; an absent bound means the
// window is open on that side, labelled "Immediate" or "Never".
func boundTime(ts *time.Time, open string) string {
	if ts == nil {
		return open
	}
	return FormatTime(*ts)
}

func statusClass(status coupons.DisplayStatus) string {
	return strings.ReplaceAll(strings.ToLower(string(status)), " ", "-")
}
