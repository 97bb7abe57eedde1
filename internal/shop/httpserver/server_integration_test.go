package httpserver_test

import (
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"finitefield.org/shopfront/internal/shop/testutil"
)

func getDocument(t *testing.T, rawURL string) *goquery.Document {
	t.Helper()

	resp, err := http.Get(rawURL)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return testutil.ParseHTML(t, body)
}

func postForm(t *testing.T, rawURL string, form url.Values) *goquery.Document {
	t.Helper()

	resp, err := http.PostForm(rawURL, form)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return testutil.ParseHTML(t, body)
}

func TestHomePageRendersListings(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	doc := getDocument(t, ts.URL+"/")

	require.Equal(t, "Home - Shopfront", doc.Find("title").First().Text())
	require.Greater(t, doc.Find("#recent-orders li").Length(), 0)
	require.Greater(t, doc.Find("#active-coupons li").Length(), 0)
	require.Equal(t, 0, doc.Find(".notification").Length())
}

func TestOrderFormRendersDefaults(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	doc := getDocument(t, ts.URL+"/orders/new")

	country, _ := doc.Find("#country").Attr("value")
	require.Equal(t, "US", country)
	require.Equal(t, 0, doc.Find(".notification").Length())
}

func TestPlaceOrderValidationErrorsPreserveInput(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	doc := postForm(t, ts.URL+"/orders/new", url.Values{
		"sku":      {""},
		"quantity": {"3.5"},
		"country":  {""},
	})

	banner := doc.Find(".notification-error")
	require.Equal(t, 1, banner.Length())
	require.Contains(t, banner.Find("p").Text(), "The request contains one or more validation errors")

	var lines []string
	banner.Find("li").Each(func(_ int, s *goquery.Selection) {
		lines = append(lines, s.Text())
	})
	require.Equal(t, []string{
		"sku: SKU must not be empty",
		"quantity: Quantity must be an integer",
		"country: Country must not be empty",
	}, lines)

	quantity, _ := doc.Find("#quantity").Attr("value")
	require.Equal(t, "3.5", quantity)
}

func TestPlaceOrderSuccessResetsForm(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	doc := postForm(t, ts.URL+"/orders/new", url.Values{
		"sku":      {"WIDGET"},
		"quantity": {"4"},
		"country":  {"US"},
	})

	banner := doc.Find(".notification-success")
	require.Equal(t, 1, banner.Length())
	require.Regexp(t, regexp.MustCompile(`^Success! Order has been created with Order Number ORD-\d+$`), banner.Text())

	sku, _ := doc.Find("#sku").Attr("value")
	require.Empty(t, sku)
	country, _ := doc.Find("#country").Attr("value")
	require.Equal(t, "US", country)
}

func TestNotificationClearedOnNavigation(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	doc := postForm(t, ts.URL+"/orders/new", url.Values{
		"sku":      {"WIDGET"},
		"quantity": {"1"},
		"country":  {"US"},
	})
	require.Equal(t, 1, doc.Find(".notification-success").Length())

	doc = getDocument(t, ts.URL+"/orders/new")
	require.Equal(t, 0, doc.Find(".notification").Length())
}

func TestNotificationCarriesIncreasingID(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	form := url.Values{
		"sku":      {"WIDGET"},
		"quantity": {"1"},
		"country":  {"US"},
	}

	first := postForm(t, ts.URL+"/orders/new", form)
	firstRaw, ok := first.Find(".notification-success").Attr("data-notification-id")
	require.True(t, ok)
	firstID, err := strconv.ParseUint(firstRaw, 10, 64)
	require.NoError(t, err)

	second := postForm(t, ts.URL+"/orders/new", form)
	secondRaw, ok := second.Find(".notification-success").Attr("data-notification-id")
	require.True(t, ok)
	secondID, err := strconv.ParseUint(secondRaw, 10, 64)
	require.NoError(t, err)
	require.Greater(t, secondID, firstID)
}

func TestOrderHistoryFilter(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)

	doc := getDocument(t, ts.URL+"/orders")
	require.Equal(t, 2, doc.Find("#order-history tbody tr").Length())

	doc = getDocument(t, ts.URL+"/orders?orderNumber=ORD-1001")
	rows := doc.Find("#order-history tbody tr")
	require.Equal(t, 1, rows.Length())
	require.Contains(t, rows.First().Text(), "ORD-1001")

	doc = getDocument(t, ts.URL+"/orders?orderNumber=NOPE")
	require.Equal(t, 0, doc.Find("#order-history tbody tr").Length())
	require.Contains(t, doc.Find(".empty-state").Text(), "No orders found.")
}

func TestOrderDetailGatesCancelButton(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)

	placed := getDocument(t, ts.URL+"/orders/ORD-1001")
	require.Equal(t, 1, placed.Find("#cancel-order").Length())
	require.Contains(t, placed.Find("#order-detail .status").Text(), "PLACED")

	cancelled := getDocument(t, ts.URL+"/orders/ORD-1002")
	require.Equal(t, 0, cancelled.Find("#cancel-order").Length())
	require.Contains(t, cancelled.Find("#order-detail .status").Text(), "CANCELLED")
}

func TestOrderDetailNotFound(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	doc := getDocument(t, ts.URL+"/orders/ORD-9999")

	require.Equal(t, 0, doc.Find("#order-detail").Length())
	require.Contains(t, doc.Find(".notification-error").Text(), "Order ORD-9999 does not exist.")
}

func TestCancelOrderRefetchesDetail(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	doc := postForm(t, ts.URL+"/orders/ORD-1001/cancel", url.Values{})

	require.Equal(t, "Order cancelled successfully!", doc.Find(".notification-success").Text())
	require.Contains(t, doc.Find("#order-detail .status").Text(), "CANCELLED")
	require.Equal(t, 0, doc.Find("#cancel-order").Length())
}

func TestCancelAlreadyCancelledOrder(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	doc := postForm(t, ts.URL+"/orders/ORD-1002/cancel", url.Values{})

	require.Contains(t, doc.Find(".notification-error").Text(), "Order has already been cancelled")
}

func TestCouponsPageRendersListing(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	doc := getDocument(t, ts.URL+"/coupons")

	rows := doc.Find("#coupon-list tbody tr")
	require.Equal(t, 3, rows.Length())
	require.Contains(t, doc.Find("#coupon-list").Text(), "Unlimited")

	code, _ := doc.Find("#code").Attr("value")
	require.Regexp(t, regexp.MustCompile(`^SAVE\d{4}$`), code)
}

func TestCreateCouponValidationErrors(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	doc := postForm(t, ts.URL+"/coupons", url.Values{
		"code":         {"   "},
		"discountRate": {"1.5"},
		"usageLimit":   {"0"},
	})

	banner := doc.Find(".notification-error")
	require.Equal(t, 1, banner.Length())

	var lines []string
	banner.Find("li").Each(func(_ int, s *goquery.Selection) {
		lines = append(lines, s.Text())
	})
	require.Equal(t, []string{
		"code: Coupon code must not be blank",
		"discountRate: Discount rate must be at most 1.00",
		"usageLimit: Usage limit must be positive",
	}, lines)

	rate, _ := doc.Find("#discountRate").Attr("value")
	require.Equal(t, "1.5", rate)
}

func TestCreateCouponSuccessRefreshesListing(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	doc := postForm(t, ts.URL+"/coupons", url.Values{
		"code":         {"SPRINGSALE"},
		"discountRate": {"0.2"},
	})

	require.Equal(t, "Coupon SPRINGSALE created successfully!", doc.Find(".notification-success").Text())
	require.Contains(t, doc.Find("#coupon-list tbody").Text(), "SPRINGSALE")
	require.Equal(t, 4, doc.Find("#coupon-list tbody tr").Length())
}

func TestCreateDuplicateCoupon(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	doc := postForm(t, ts.URL+"/coupons", url.Values{
		"code":         {"SAVE1000"},
		"discountRate": {"0.2"},
	})

	require.Contains(t, doc.Find(".notification-error").Text(), "Coupon code already exists: SAVE1000")
}

func TestBasePathMount(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t, testutil.WithBasePath("/shop"))
	doc := getDocument(t, ts.URL+"/shop/orders/new")

	action, _ := doc.Find("#order-form").Attr("action")
	require.Equal(t, "/shop/orders/new", action)

	hasPrefixedNav := false
	doc.Find("nav a").Each(func(_ int, s *goquery.Selection) {
		if href, ok := s.Attr("href"); ok && strings.HasPrefix(href, "/shop") {
			hasPrefixedNav = true
		}
	})
	require.True(t, hasPrefixedNav)
}
