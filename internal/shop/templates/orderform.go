package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"finitefield.org/shopfront/internal/shop/notify"
	"finitefield.org/shopfront/internal/shop/orders"
)

// OrderFormData carries everything the order entry page renders.
type OrderFormData struct {
	BasePath     string
	Notification notify.State
	Form         orders.Form
	Submitting   bool
}

func OrderFormPage(data OrderFormData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<h1>Place Order</h1>")
		fmt.Fprintf(&b, "<form id=\"order-form\" method=\"post\" action=\"%s\">", esc(href(data.BasePath, "/orders/new")))
		fmt.Fprintf(&b, "<label for=\"sku\">SKU</label><input id=\"sku\" name=\"sku\" value=\"%s\">", esc(data.Form.SKU))
		fmt.Fprintf(&b, "<label for=\"quantity\">Quantity</label><input id=\"quantity\" name=\"quantity\" inputmode=\"numeric\" value=\"%s\">", esc(data.Form.QuantityInput))
		fmt.Fprintf(&b, "<label for=\"country\">Country</label><input id=\"country\" name=\"country\" value=\"%s\">", esc(data.Form.Country))
		fmt.Fprintf(&b, "<label for=\"couponCode\">Coupon Code</label><input id=\"couponCode\" name=\"couponCode\" value=\"%s\" placeholder=\"Optional\">", esc(data.Form.CouponCode))
		if data.Submitting {
			b.WriteString("<button type=\"submit\" disabled>Placing...</button>")
		} else {
			b.WriteString("<button type=\"submit\">Place Order</button>")
		}
		b.WriteString("</form>")
		_, err := io.WriteString(w, b.String())
		return err
	})
	return Layout("Place Order", data.BasePath, data.Notification, body)
}
