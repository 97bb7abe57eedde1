package coupons

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"finitefield.org/shopfront/internal/shop/api"
)

// StaticService provides deterministic coupon data suitable for local
// development and tests when no backend is configured.
type StaticService struct {
	mu      sync.Mutex
	coupons map[string]Coupon
	now     func() time.Time

	// Fail, when set, makes every operation return this error.
	Fail *api.APIError
}

// NewStaticService returns a StaticService seeded with representative
// coupons covering every display status.
func NewStaticService() *StaticService {
	s := &StaticService{
		coupons: make(map[string]Coupon),
		now:     time.Now,
	}
	s.seed()
	return s
}

func (s *StaticService) seed() {
	now := time.Now().UTC()
	past := now.Add(-30 * 24 * time.Hour)
	recent := now.Add(-24 * time.Hour)
	future := now.Add(14 * 24 * time.Hour)
	farFuture := now.Add(60 * 24 * time.Hour)

	limit := func(n int) *int { return &n }
	ts := func(t time.Time) *time.Time { return &t }

	s.coupons["SAVE1000"] = Coupon{
		Code:         "SAVE1000",
		DiscountRate: 0.10,
		ValidFrom:    ts(past),
		ValidTo:      ts(future),
		UsageLimit:   limit(100),
		UsedCount:    12,
	}
	s.coupons["SAVE2025"] = Coupon{
		Code:         "SAVE2025",
		DiscountRate: 0.25,
		ValidFrom:    ts(future),
		ValidTo:      ts(farFuture),
		UsageLimit:   limit(UnlimitedUsageSentinel),
		UsedCount:    0,
	}
	s.coupons["SAVE9999"] = Coupon{
		Code:         "SAVE9999",
		DiscountRate: 0.05,
		ValidFrom:    ts(past),
		ValidTo:      ts(recent),
		UsedCount:    40,
	}
}

// Create stores the coupon, rejecting duplicate codes the way the backend
// does.
func (s *StaticService) Create(_ context.Context, req CreateRequest) api.Result[CreateResponse] {
	if s.Fail != nil {
		return api.Err[CreateResponse](s.Fail)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	code := strings.TrimSpace(req.Code)
	if _, exists := s.coupons[code]; exists {
		return api.Err[CreateResponse](api.NewError("Coupon code already exists: "+code, http.StatusConflict))
	}
	s.coupons[code] = Coupon{
		Code:         code,
		DiscountRate: req.DiscountRate,
		ValidFrom:    req.ValidFrom,
		ValidTo:      req.ValidTo,
		UsageLimit:   req.UsageLimit,
	}
	return api.Ok(CreateResponse{Code: code})
}

// List returns the stored coupons sorted by code.
func (s *StaticService) List(_ context.Context) api.Result[ListResult] {
	if s.Fail != nil {
		return api.Err[ListResult](s.Fail)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Coupon, 0, len(s.coupons))
	for _, c := range s.coupons {
		items = append(items, c)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Code < items[j].Code })
	return api.Ok(ListResult{Coupons: items})
}
