package templates

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/a-h/templ"

	"finitefield.org/shopfront/internal/shop/coupons"
	"finitefield.org/shopfront/internal/shop/notify"
	"finitefield.org/shopfront/internal/shop/orders"
)

// HomeData carries the landing page contents: a recent slice of the order
// history and the currently redeemable coupons.
type HomeData struct {
	BasePath      string
	Notification  notify.State
	RecentOrders  []orders.HistoryItem
	ActiveCoupons []coupons.Coupon
	Now           time.Time
}

func HomePage(data HomeData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<h1>Shopfront</h1>")

		b.WriteString("<section class=\"panel\"><h2>Recent Orders</h2>")
		if len(data.RecentOrders) == 0 {
			b.WriteString("<p class=\"empty-state\">No orders yet.</p>")
		} else {
			b.WriteString("<ul class=\"summary-list\" id=\"recent-orders\">")
			for _, o := range data.RecentOrders {
				fmt.Fprintf(&b, "<li><a href=\"%s\">%s</a> %s %s %s</li>",
					esc(href(data.BasePath, "/orders/"+url.PathEscape(o.OrderNumber))),
					esc(o.OrderNumber), esc(o.SKU), esc(FormatPrice(o.TotalPrice)), esc(string(o.Status)))
			}
			b.WriteString("</ul>")
		}
		fmt.Fprintf(&b, "<p><a href=\"%s\">Place an order</a> or <a href=\"%s\">browse the full history</a>.</p>",
			esc(href(data.BasePath, "/orders/new")), esc(href(data.BasePath, "/orders")))
		b.WriteString("</section>")

		b.WriteString("<section class=\"panel\"><h2>Active Coupons</h2>")
		active := make([]coupons.Coupon, 0, len(data.ActiveCoupons))
		for _, c := range data.ActiveCoupons {
			if c.Status(data.Now) == coupons.StatusActive {
				active = append(active, c)
			}
		}
		if len(active) == 0 {
			b.WriteString("<p class=\"empty-state\">No active coupons.</p>")
		} else {
			b.WriteString("<ul class=\"summary-list\" id=\"active-coupons\">")
			for _, c := range active {
				fmt.Fprintf(&b, "<li>%s %s off</li>", esc(c.Code), esc(FormatRate(c.DiscountRate)))
			}
			b.WriteString("</ul>")
		}
		fmt.Fprintf(&b, "<p><a href=\"%s\">Manage coupons</a>.</p>", esc(href(data.BasePath, "/coupons")))
		b.WriteString("</section>")

		_, err := io.WriteString(w, b.String())
		return err
	})
	return Layout("Home", data.BasePath, data.Notification, body)
}
