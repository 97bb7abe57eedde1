package templates

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"finitefield.org/shopfront/internal/shop/notify"
	"finitefield.org/shopfront/internal/shop/orders"
)

// OrderDetailData carries the single-order page contents. Order is nil when
// the fetch failed; the page then shows only the notification banner.
type OrderDetailData struct {
	BasePath     string
	Notification notify.State
	OrderNumber  string
	Order        *orders.Order
	Cancelling   bool
}

func OrderDetailPage(data OrderDetailData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, "<h1>Order %s</h1>", esc(data.OrderNumber))
		if data.Order == nil {
			fmt.Fprintf(&b, "<p class=\"empty-state\">Order details are unavailable.</p><p><a href=\"%s\">Back to order history</a></p>",
				esc(href(data.BasePath, "/orders")))
			_, err := io.WriteString(w, b.String())
			return err
		}
		o := data.Order
		b.WriteString("<dl class=\"detail-list\" id=\"order-detail\">")
		row := func(label, value string) {
			fmt.Fprintf(&b, "<dt>%s</dt><dd>%s</dd>", esc(label), esc(value))
		}
		row("Placed", FormatTime(o.OrderTimestamp))
		row("SKU", o.SKU)
		row("Country", o.Country)
		row("Quantity", fmt.Sprintf("%d", o.Quantity))
		row("Unit Price", FormatPrice(o.UnitPrice))
		row("Base Price", FormatPrice(o.BasePrice))
		if o.AppliedCouponCode != "" {
			row("Coupon", o.AppliedCouponCode)
			row("Discount", fmt.Sprintf("%s (-%s)", FormatRate(o.DiscountRate), FormatPrice(o.DiscountAmount)))
		}
		row("Subtotal", FormatPrice(o.SubtotalPrice))
		row("Tax", fmt.Sprintf("%s (%s)", FormatRate(o.TaxRate), FormatPrice(o.TaxAmount)))
		row("Total", FormatPrice(o.TotalPrice))
		b.WriteString("<dt>Status</dt>")
		fmt.Fprintf(&b, "<dd><span class=\"status status-%s\">%s</span></dd>",
			esc(strings.ToLower(string(o.Status))), esc(string(o.Status)))
		b.WriteString("</dl>")
		if o.CanCancel() {
			fmt.Fprintf(&b, "<form id=\"cancel-order\" method=\"post\" action=\"%s\">",
				esc(href(data.BasePath, "/orders/"+url.PathEscape(o.OrderNumber)+"/cancel")))
			if data.Cancelling {
				b.WriteString("<button type=\"submit\" disabled>Cancelling...</button>")
			} else {
				b.WriteString("<button type=\"submit\" class=\"danger\">Cancel Order</button>")
			}
			b.WriteString("</form>")
		}
		fmt.Fprintf(&b, "<p><a href=\"%s\">Back to order history</a></p>", esc(href(data.BasePath, "/orders")))
		_, err := io.WriteString(w, b.String())
		return err
	})
	return Layout("Order "+data.OrderNumber, data.BasePath, data.Notification, body)
}
