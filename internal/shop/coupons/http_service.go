package coupons

import (
	"context"

	"finitefield.org/shopfront/internal/shop/api"
)

const couponsEndpoint = "/api/coupons"

// HTTPService implements Service backed by the REST endpoints exposed by the
// backend storefront API.
type HTTPService struct {
	client *api.Client
}

// NewHTTPService constructs a Service that talks to the backend coupon API.
func NewHTTPService(client *api.Client) *HTTPService {
	return &HTTPService{client: client}
}

// Create publishes a new coupon.
func (s *HTTPService) Create(ctx context.Context, req CreateRequest) api.Result[CreateResponse] {
	return api.PostJSON[CreateResponse](ctx, s.client, couponsEndpoint, req)
}

// List returns all known coupons.
func (s *HTTPService) List(ctx context.Context) api.Result[ListResult] {
	return api.GetJSON[ListResult](ctx, s.client, couponsEndpoint)
}
