package orders

import (
	"context"
	"sync"

	"finitefield.org/shopfront/internal/shop/api"
	"finitefield.org/shopfront/internal/shop/notify"
)

// Detail is the orchestration unit behind the order-detail page: it caches
// the last fetched order and performs cancellation. The displayed status is
// only ever what the server last confirmed.
type Detail struct {
	svc    Service
	center *notify.Center

	mu         sync.Mutex
	order      *Order
	loading    bool
	cancelling bool
}

// NewDetail wires a Detail unit.
func NewDetail(svc Service, center *notify.Center) *Detail {
	return &Detail{svc: svc, center: center}
}

// Order returns the last successfully fetched order, or nil.
func (d *Detail) Order() *Order {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.order
}

// Loading reports whether a detail fetch is in flight.
func (d *Detail) Loading() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loading
}

// Cancelling reports whether a cancel request is in flight.
func (d *Detail) Cancelling() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cancelling
}

// Load fetches the order detail, replacing the cached order on success.
func (d *Detail) Load(ctx context.Context, orderNumber string) api.Result[Order] {
	d.setLoading(true)

	return notify.Run(d.center, func() api.Result[Order] {
		defer d.setLoading(false)
		return d.svc.Get(ctx, orderNumber)
	}, func(order Order) {
		d.mu.Lock()
		d.order = &order
		d.mu.Unlock()
	})
}

// Cancel requests cancellation and, on success, refetches the order so the
// displayed status reflects the server's authoritative state before
// reporting the success notification. When the refetch itself fails the
// cached order is dropped rather than kept: a stale PLACED snapshot would
// offer the cancel control for an order that is already cancelled. A cancel
// attempted against an already cancelled order surfaces the server's
// rejection like any other error.
func (d *Detail) Cancel(ctx context.Context, orderNumber string) api.Result[struct{}] {
	d.setCancelling(true)

	return notify.Run(d.center, func() api.Result[struct{}] {
		defer d.setCancelling(false)
		return d.svc.Cancel(ctx, orderNumber)
	}, func(struct{}) {
		refreshed := d.svc.Get(ctx, orderNumber)
		d.mu.Lock()
		if refreshed.OK() {
			order := refreshed.Value()
			d.order = &order
		} else {
			d.order = nil
		}
		d.mu.Unlock()
		d.center.Success("Order cancelled successfully!")
	})
}

func (d *Detail) setLoading(v bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.loading = v
}

func (d *Detail) setCancelling(v bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelling = v
}
