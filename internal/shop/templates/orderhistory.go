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

// OrderHistoryData carries the history listing page contents.
type OrderHistoryData struct {
	BasePath     string
	Notification notify.State
	Filter       string
	Loading      bool
	Orders       []orders.HistoryItem
}

func OrderHistoryPage(data OrderHistoryData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<h1>Order History</h1>")
		fmt.Fprintf(&b, "<form id=\"history-filter\" method=\"get\" action=\"%s\">", esc(href(data.BasePath, "/orders")))
		fmt.Fprintf(&b, "<label for=\"orderNumber\">Order Number</label><input id=\"orderNumber\" name=\"orderNumber\" value=\"%s\" placeholder=\"Filter by order number\">", esc(data.Filter))
		b.WriteString("<button type=\"submit\">Search</button></form>")
		switch {
		case data.Loading:
			b.WriteString("<p class=\"empty-state\">Loading orders...</p>")
		case len(data.Orders) == 0:
			b.WriteString("<p class=\"empty-state\">No orders found.</p>")
		default:
			b.WriteString("<table class=\"data-table\" id=\"order-history\"><thead><tr>")
			for _, h := range []string{"Order Number", "Placed", "SKU", "Country", "Quantity", "Total", "Status", "Coupon"} {
				fmt.Fprintf(&b, "<th>%s</th>", esc(h))
			}
			b.WriteString("</tr></thead><tbody>")
			for _, o := range data.Orders {
				b.WriteString("<tr>")
				fmt.Fprintf(&b, "<td><a href=\"%s\">%s</a></td>",
					esc(href(data.BasePath, "/orders/"+url.PathEscape(o.OrderNumber))), esc(o.OrderNumber))
				fmt.Fprintf(&b, "<td>%s</td>", esc(FormatTime(o.OrderTimestamp)))
				fmt.Fprintf(&b, "<td>%s</td>", esc(o.SKU))
				fmt.Fprintf(&b, "<td>%s</td>", esc(o.Country))
				fmt.Fprintf(&b, "<td>%d</td>", o.Quantity)
				fmt.Fprintf(&b, "<td>%s</td>", esc(FormatPrice(o.TotalPrice)))
				fmt.Fprintf(&b, "<td><span class=\"status status-%s\">%s</span></td>",
					esc(strings.ToLower(string(o.Status))), esc(string(o.Status)))
				fmt.Fprintf(&b, "<td>%s</td>", esc(o.AppliedCouponCode))
				b.WriteString("</tr>")
			}
			b.WriteString("</tbody></table>")
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
	return Layout("Order History", data.BasePath, data.Notification, body)
}
