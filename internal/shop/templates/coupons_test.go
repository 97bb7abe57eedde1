package templates_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"finitefield.org/shopfront/internal/shop/coupons"
	"finitefield.org/shopfront/internal/shop/notify"
	"finitefield.org/shopfront/internal/shop/templates"
	"finitefield.org/shopfront/internal/shop/testutil"
)

func renderCoupons(t *testing.T, data templates.CouponsData) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, templates.CouponsPage(data).Render(context.Background(), &buf))
	return &buf
}

func TestCouponsPageRendersDerivedStatus(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	ts := func(v time.Time) *time.Time { return &v }
	limit := func(n int) *int { return &n }

	data := templates.CouponsData{
		BasePath: "/",
		Now:      now,
		Coupons: []coupons.Coupon{
			{Code: "EARLY", DiscountRate: 0.10, ValidFrom: ts(now.Add(time.Hour))},
			{Code: "LATE", DiscountRate: 0.10, ValidTo: ts(now.Add(-time.Hour))},
			{Code: "SPENT", DiscountRate: 0.10, UsageLimit: limit(5), UsedCount: 5},
			{Code: "OPEN", DiscountRate: 0.10, UsageLimit: limit(coupons.UnlimitedUsageSentinel)},
		},
	}

	doc := testutil.ParseHTML(t, renderCoupons(t, data).Bytes())
	rows := doc.Find("#coupon-list tbody tr")
	require.Equal(t, 4, rows.Length())

	require.Contains(t, rows.Eq(0).Text(), "Not Yet Valid")
	require.Contains(t, rows.Eq(1).Text(), "Expired")
	require.Contains(t, rows.Eq(2).Text(), "Limit Reached")
	require.Contains(t, rows.Eq(3).Text(), "Active")
	require.Contains(t, rows.Eq(3).Text(), "Unlimited")
}

func TestCouponsPageLabelsOpenValidityBounds(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	from := now.Add(-time.Hour)

	doc := testutil.ParseHTML(t, renderCoupons(t, templates.CouponsData{
		BasePath: "/",
		Now:      now,
		Coupons: []coupons.Coupon{
			{Code: "ALWAYSON", DiscountRate: 0.10},
			{Code: "STARTED", DiscountRate: 0.10, ValidFrom: &from},
		},
	}).Bytes())

	rows := doc.Find("#coupon-list tbody tr")
	require.Contains(t, rows.Eq(0).Find("td").Eq(2).Text(), "Immediate")
	require.Contains(t, rows.Eq(0).Find("td").Eq(3).Text(), "Never")
	require.NotContains(t, rows.Eq(1).Find("td").Eq(2).Text(), "Immediate")
	require.Contains(t, rows.Eq(1).Find("td").Eq(3).Text(), "Never")
}

func TestCouponsPageEscapesFormInput(t *testing.T) {
	t.Parallel()

	data := templates.CouponsData{
		BasePath: "/",
		Form:     coupons.Form{Code: `<script>"x"</script>`},
		Now:      time.Now(),
	}

	html := renderCoupons(t, data).String()
	require.NotContains(t, html, "<script>")

	doc := testutil.ParseHTML(t, []byte(html))
	code, _ := doc.Find("#code").Attr("value")
	require.Equal(t, `<script>"x"</script>`, code)
}

func TestNotificationBannerOmittedWhenIdle(t *testing.T) {
	t.Parallel()

	doc := testutil.ParseHTML(t, renderCoupons(t, templates.CouponsData{
		BasePath:     "/",
		Notification: notify.State{},
		Now:          time.Now(),
	}).Bytes())

	require.Equal(t, 1, doc.Find("#notifications").Length())
	require.Equal(t, 0, doc.Find(".notification").Length())
}
