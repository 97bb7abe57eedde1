package templates

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"

	"finitefield.org/shopfront/internal/shop/notify"
)

type navLink struct {
	Href  string
	Label string
}

var navLinks = []navLink{
	{Href: "/", Label: "Home"},
	{Href: "/orders/new", Label: "Place Order"},
	{Href: "/orders", Label: "Order History"},
	{Href: "/coupons", Label: "Coupons"},
}

// Layout wraps a page body in the shared chrome: header navigation,
// the notification banner, and the static stylesheet.
func Layout(title, basePath string, state notify.State, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<!doctype html><html lang=\"en\"><head><meta charset=\"utf-8\">")
		b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">")
		fmt.Fprintf(&b, "<title>%s - Shopfront</title>", esc(title))
		fmt.Fprintf(&b, "<link rel=\"stylesheet\" href=\"%s\">", esc(href(basePath, "/static/app.css")))
		b.WriteString("</head><body>")
		b.WriteString("<header class=\"site-header\"><span class=\"brand\">Shopfront</span><nav>")
		for _, l := range navLinks {
			fmt.Fprintf(&b, "<a href=\"%s\">%s</a>", esc(href(basePath, l.Href)), esc(l.Label))
		}
		b.WriteString("</nav></header>")
		b.WriteString("<main class=\"content\">")
		writeNotification(&b, state)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</main></body></html>")
		return err
	})
}

// writeNotification renders the banner region. It is always present so the
// page structure stays stable; the banner itself appears only after an
// action has settled.
func writeNotification(b *strings.Builder, state notify.State) {
	b.WriteString("<div id=\"notifications\">")
	switch state.Kind {
	case notify.KindSuccess:
		fmt.Fprintf(b, "<div role=\"alert\" class=\"notification notification-success\" data-notification-id=\"%d\">%s</div>",
			state.ID, esc(state.Message))
	case notify.KindError:
		fmt.Fprintf(b, "<div role=\"alert\" class=\"notification notification-error\" data-notification-id=\"%d\">", state.ID)
		fmt.Fprintf(b, "<p>%s</p>", esc(state.Err.Message))
		if len(state.Err.FieldErrors) > 0 {
			b.WriteString("<ul class=\"field-errors\">")
			for _, line := range state.Err.FieldErrors {
				fmt.Fprintf(b, "<li>%s</li>", esc(line))
			}
			b.WriteString("</ul>")
		}
		b.WriteString("</div>")
	}
	b.WriteString("</div>")
}

func esc(s string) string {
	return html.EscapeString(s)
}

// href prefixes a site-relative path with the configured base path.
func href(basePath, path string) string {
	base := strings.TrimSuffix(basePath, "/")
	if base == "" {
		return path
	}
	return base + path
}
