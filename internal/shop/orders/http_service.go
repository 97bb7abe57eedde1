package orders

import (
	"context"
	"net/url"
	"path"
	"strings"

	"finitefield.org/shopfront/internal/shop/api"
)

const ordersEndpoint = "/api/orders"

// HTTPService implements Service backed by the REST endpoints exposed by the
// backend storefront API.
type HTTPService struct {
	client *api.Client
}

// NewHTTPService constructs a Service that talks to the backend order API.
func NewHTTPService(client *api.Client) *HTTPService {
	return &HTTPService{client: client}
}

// Place submits a new order.
func (s *HTTPService) Place(ctx context.Context, req PlaceRequest) api.Result[PlaceResponse] {
	req.CouponCode = strings.TrimSpace(req.CouponCode)
	return api.PostJSON[PlaceResponse](ctx, s.client, ordersEndpoint, req)
}

// Get fetches the detail payload for one order.
func (s *HTTPService) Get(ctx context.Context, orderNumber string) api.Result[Order] {
	endpoint := path.Join(ordersEndpoint, url.PathEscape(strings.TrimSpace(orderNumber)))
	return api.GetJSON[Order](ctx, s.client, endpoint)
}

// List returns the order history, filtered by order number when a non-blank
// filter is provided.
func (s *HTTPService) List(ctx context.Context, orderNumberFilter string) api.Result[ListResult] {
	endpoint := ordersEndpoint
	if filter := strings.TrimSpace(orderNumberFilter); filter != "" {
		endpoint += "?orderNumber=" + url.QueryEscape(filter)
	}
	return api.GetJSON[ListResult](ctx, s.client, endpoint)
}

// Cancel requests cancellation of the given order.
func (s *HTTPService) Cancel(ctx context.Context, orderNumber string) api.Result[struct{}] {
	endpoint := path.Join(ordersEndpoint, url.PathEscape(strings.TrimSpace(orderNumber)), "cancel")
	return api.Post(ctx, s.client, endpoint)
}
