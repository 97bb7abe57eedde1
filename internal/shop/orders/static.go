package orders

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"finitefield.org/shopfront/internal/shop/api"
)

// StaticService provides deterministic order data suitable for local
// development and tests when no backend is configured. It applies the same
// pricing arithmetic the backend uses, with a tiny fixed catalogue.
type StaticService struct {
	mu     sync.Mutex
	orders map[string]Order
	seq    int
	now    func() time.Time

	// Fail, when set, makes every operation return this error. Tests use it
	// to exercise the error paths without a network.
	Fail *api.APIError
}

// NewStaticService returns a StaticService seeded with representative orders.
func NewStaticService() *StaticService {
	s := &StaticService{
		orders: make(map[string]Order),
		now:    time.Now,
	}
	s.seed()
	return s
}

func (s *StaticService) seed() {
	base := time.Date(2025, 5, 20, 9, 30, 0, 0, time.UTC)

	s.store(Order{
		OrderNumber:    "ORD-1001",
		OrderTimestamp: base,
		SKU:            "WIDGET",
		Country:        "US",
		Quantity:       2,
		Status:         StatusPlaced,
	})
	s.store(Order{
		OrderNumber:       "ORD-1002",
		OrderTimestamp:    base.Add(26 * time.Hour),
		SKU:               "GADGET",
		Country:           "DE",
		Quantity:          1,
		Status:            StatusCancelled,
		AppliedCouponCode: "SAVE1000",
	})
}

// store recomputes derived pricing and saves the order.
func (s *StaticService) store(o Order) {
	o = priced(o)
	s.orders[o.OrderNumber] = o
}

// Place assigns a sequential order number and persists the order in memory.
func (s *StaticService) Place(_ context.Context, req PlaceRequest) api.Result[PlaceResponse] {
	if s.Fail != nil {
		return api.Err[PlaceResponse](s.Fail)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	number := fmt.Sprintf("ORD-%d", 2000+s.seq)
	s.store(Order{
		OrderNumber:       number,
		OrderTimestamp:    s.now().UTC(),
		SKU:               req.SKU,
		Country:           req.Country,
		Quantity:          req.Quantity,
		Status:            StatusPlaced,
		AppliedCouponCode: strings.TrimSpace(req.CouponCode),
	})
	return api.Ok(PlaceResponse{OrderNumber: number})
}

// Get returns the stored order or a not-found error in the backend's shape.
func (s *StaticService) Get(_ context.Context, orderNumber string) api.Result[Order] {
	if s.Fail != nil {
		return api.Err[Order](s.Fail)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[strings.TrimSpace(orderNumber)]
	if !ok {
		return api.Err[Order](api.NewError(fmt.Sprintf("Order %s does not exist.", orderNumber), http.StatusNotFound))
	}
	return api.Ok(order)
}

// List returns stored orders newest first, filtered by order number substring.
func (s *StaticService) List(_ context.Context, orderNumberFilter string) api.Result[ListResult] {
	if s.Fail != nil {
		return api.Err[ListResult](s.Fail)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	filter := strings.ToLower(strings.TrimSpace(orderNumberFilter))
	items := make([]HistoryItem, 0, len(s.orders))
	for _, o := range s.orders {
		if filter != "" && !strings.Contains(strings.ToLower(o.OrderNumber), filter) {
			continue
		}
		items = append(items, HistoryItem{
			OrderNumber:       o.OrderNumber,
			OrderTimestamp:    o.OrderTimestamp,
			SKU:               o.SKU,
			Country:           o.Country,
			Quantity:          o.Quantity,
			TotalPrice:        o.TotalPrice,
			Status:            o.Status,
			AppliedCouponCode: o.AppliedCouponCode,
		})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].OrderTimestamp.After(items[j].OrderTimestamp)
	})
	return api.Ok(ListResult{Orders: items})
}

// Cancel transitions a placed order to cancelled, rejecting repeats the way
// the backend does.
func (s *StaticService) Cancel(_ context.Context, orderNumber string) api.Result[struct{}] {
	if s.Fail != nil {
		return api.Err[struct{}](s.Fail)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[strings.TrimSpace(orderNumber)]
	if !ok {
		return api.Err[struct{}](api.NewError(fmt.Sprintf("Order %s does not exist.", orderNumber), http.StatusNotFound))
	}
	if order.Status == StatusCancelled {
		return api.Err[struct{}](api.NewError("Order has already been cancelled", http.StatusBadRequest))
	}
	order.Status = StatusCancelled
	s.orders[order.OrderNumber] = order
	return api.Ok(struct{}{})
}

var staticUnitPrices = map[string]float64{
	"WIDGET": 10.00,
	"GADGET": 25.00,
	"GIZMO":  7.50,
}

var staticTaxRates = map[string]float64{
	"US": 0.10,
	"DE": 0.19,
	"JP": 0.10,
}

// priced fills the derived pricing fields from quantity, SKU, and country,
// mirroring the backend's arithmetic. Unknown SKUs and countries fall back
// to fixed defaults; the fake does not reject them.
func priced(o Order) Order {
	unit, ok := staticUnitPrices[o.SKU]
	if !ok {
		unit = 10.00
	}
	tax, ok := staticTaxRates[o.Country]
	if !ok {
		tax = 0.10
	}
	discount := 0.0
	if o.AppliedCouponCode != "" {
		discount = 0.10
	}

	o.UnitPrice = unit
	o.BasePrice = unit * float64(o.Quantity)
	o.DiscountRate = discount
	o.DiscountAmount = o.BasePrice * discount
	o.SubtotalPrice = o.BasePrice - o.DiscountAmount
	o.TaxRate = tax
	o.TaxAmount = o.SubtotalPrice * tax
	o.TotalPrice = o.SubtotalPrice + o.TaxAmount
	return o
}
