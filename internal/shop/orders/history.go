package orders

import (
	"context"
	"strings"
	"sync"

	"finitefield.org/shopfront/internal/shop/api"
	"finitefield.org/shopfront/internal/shop/notify"
)

// History is the orchestration unit behind the order-history page. It caches
// the last successfully fetched listing together with the filter that
// produced it; a failed load leaves the previous data untouched.
type History struct {
	svc    Service
	center *notify.Center

	mu      sync.Mutex
	orders  []HistoryItem
	filter  string
	loading bool
}

// NewHistory wires a History unit.
func NewHistory(svc Service, center *notify.Center) *History {
	return &History{svc: svc, center: center}
}

// Orders returns the last successfully fetched history items.
func (h *History) Orders() []HistoryItem {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.orders
}

// Filter returns the filter applied by the most recent load attempt.
func (h *History) Filter() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.filter
}

// Loading reports whether a fetch is in flight.
func (h *History) Loading() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.loading
}

// Load fetches the history with the given order-number filter, replacing the
// cached listing on success.
func (h *History) Load(ctx context.Context, filter string) api.Result[ListResult] {
	filter = strings.TrimSpace(filter)
	h.mu.Lock()
	h.filter = filter
	h.loading = true
	h.mu.Unlock()

	return notify.Run(h.center, func() api.Result[ListResult] {
		defer h.setLoading(false)
		return h.svc.List(ctx, filter)
	}, func(result ListResult) {
		h.mu.Lock()
		h.orders = result.Orders
		h.mu.Unlock()
	})
}

func (h *History) setLoading(v bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.loading = v
}
