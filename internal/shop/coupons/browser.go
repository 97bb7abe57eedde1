package coupons

import (
	"context"
	"fmt"
	"sync"

	"finitefield.org/shopfront/internal/shop/api"
	"finitefield.org/shopfront/internal/shop/notify"
)

// Browser is the orchestration unit behind the coupons page: it caches the
// last fetched listing, owns the creation form, and routes every outcome
// through the notification center.
type Browser struct {
	svc    Service
	center *notify.Center

	mu       sync.Mutex
	coupons  []Coupon
	form     Form
	loading  bool
	creating bool
}

// NewBrowser wires a Browser unit.
func NewBrowser(svc Service, center *notify.Center) *Browser {
	return &Browser{svc: svc, center: center}
}

// Coupons returns the last successfully fetched listing.
func (b *Browser) Coupons() []Coupon {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.coupons
}

// Form returns a snapshot of the creation form state.
func (b *Browser) Form() Form {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.form
}

// SetForm replaces the creation form state.
func (b *Browser) SetForm(form Form) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.form = form
}

// Loading reports whether a listing fetch is in flight.
func (b *Browser) Loading() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loading
}

// Creating reports whether a creation request is in flight.
func (b *Browser) Creating() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.creating
}

// Load fetches the coupon listing, replacing the cache on success.
func (b *Browser) Load(ctx context.Context) api.Result[ListResult] {
	b.setLoading(true)

	return notify.Run(b.center, func() api.Result[ListResult] {
		defer b.setLoading(false)
		return b.svc.List(ctx)
	}, func(result ListResult) {
		b.mu.Lock()
		b.coupons = result.Coupons
		b.mu.Unlock()
	})
}

// Create validates the form locally and, when valid, publishes the coupon.
// Success resets the form and synchronously refetches the listing so the new
// coupon is visible before the success notification is reported; the refetch
// is a declared side effect of the success path, not a timed afterthought.
func (b *Browser) Create(ctx context.Context) api.Result[CreateResponse] {
	form := b.Form()

	return notify.Run(b.center, func() api.Result[CreateResponse] {
		if err := form.Validate(); err != nil {
			return api.Err[CreateResponse](err)
		}

		b.setCreating(true)
		defer b.setCreating(false)
		return b.svc.Create(ctx, form.request())
	}, func(resp CreateResponse) {
		b.SetForm(Form{})
		if refreshed := b.svc.List(ctx); refreshed.OK() {
			b.mu.Lock()
			b.coupons = refreshed.Value().Coupons
			b.mu.Unlock()
		}
		b.center.Success(fmt.Sprintf("Coupon %s created successfully!", resp.Code))
	})
}

func (b *Browser) setLoading(v bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.loading = v
}

func (b *Browser) setCreating(v bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.creating = v
}
