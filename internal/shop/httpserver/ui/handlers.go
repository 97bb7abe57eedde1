// Package ui contains the HTTP handlers for the storefront pages. Every GET
// resets the notification center before loading data; every POST performs its
// action and re-renders the page inline so the resulting notification is
// displayed exactly once.
package ui

import (
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"finitefield.org/shopfront/internal/shop/coupons"
	"finitefield.org/shopfront/internal/shop/notify"
	"finitefield.org/shopfront/internal/shop/orders"
	"finitefield.org/shopfront/internal/shop/templates"
)

// Dependencies collects the units and services required by the UI handlers.
type Dependencies struct {
	BasePath string
	Logger   *zap.Logger

	Center  *notify.Center
	Orders  orders.Service
	Coupons coupons.Service
}

// Handlers exposes the HTTP handlers for the storefront pages.
type Handlers struct {
	basePath string
	logger   *zap.Logger

	center  *notify.Center
	placer  *orders.Placer
	history *orders.History
	detail  *orders.Detail
	browser *coupons.Browser
}

// NewHandlers wires the handler set from its dependencies. Nil services fall
// back to the in-memory static implementations.
func NewHandlers(deps Dependencies) *Handlers {
	center := deps.Center
	if center == nil {
		center = notify.NewCenter()
	}
	orderSvc := deps.Orders
	if orderSvc == nil {
		orderSvc = orders.NewStaticService()
	}
	couponSvc := deps.Coupons
	if couponSvc == nil {
		couponSvc = coupons.NewStaticService()
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{
		basePath: deps.BasePath,
		logger:   logger,
		center:   center,
		placer:   orders.NewPlacer(orderSvc, center),
		history:  orders.NewHistory(orderSvc, center),
		detail:   orders.NewDetail(orderSvc, center),
		browser:  coupons.NewBrowser(couponSvc, center),
	}
}

// Home renders the landing page. The two listings load concurrently; a
// failure of either surfaces through the notification banner while the other
// still renders.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	h.center.Clear()

	group, ctx := errgroup.WithContext(r.Context())
	group.Go(func() error {
		h.history.Load(ctx, "")
		return nil
	})
	group.Go(func() error {
		h.browser.Load(ctx)
		return nil
	})
	_ = group.Wait()

	recent := h.history.Orders()
	if len(recent) > 5 {
		recent = recent[:5]
	}
	h.render(w, r, templates.HomePage(templates.HomeData{
		BasePath:      h.basePath,
		Notification:  h.center.State(),
		RecentOrders:  recent,
		ActiveCoupons: h.browser.Coupons(),
		Now:           time.Now(),
	}))
}

// OrderForm renders the order entry page with a fresh form.
func (h *Handlers) OrderForm(w http.ResponseWriter, r *http.Request) {
	h.center.Clear()
	h.placer.SetForm(orders.DefaultForm())
	h.renderOrderForm(w, r)
}

// PlaceOrder handles the order form submission.
func (h *Handlers) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	h.placer.SetForm(orders.Form{
		SKU:           r.PostFormValue("sku"),
		QuantityInput: r.PostFormValue("quantity"),
		Country:       r.PostFormValue("country"),
		CouponCode:    r.PostFormValue("couponCode"),
	})
	if result := h.placer.Submit(r.Context()); !result.OK() {
		h.logger.Warn("place order failed", zap.String("message", result.Err().Message))
	}
	h.renderOrderForm(w, r)
}

func (h *Handlers) renderOrderForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, templates.OrderFormPage(templates.OrderFormData{
		BasePath:     h.basePath,
		Notification: h.center.State(),
		Form:         h.placer.Form(),
		Submitting:   h.placer.Submitting(),
	}))
}

// OrderHistory renders the history listing, filtered by the orderNumber
// query parameter when present.
func (h *Handlers) OrderHistory(w http.ResponseWriter, r *http.Request) {
	h.center.Clear()
	filter := r.URL.Query().Get("orderNumber")
	h.history.Load(r.Context(), filter)
	h.render(w, r, templates.OrderHistoryPage(templates.OrderHistoryData{
		BasePath:     h.basePath,
		Notification: h.center.State(),
		Filter:       h.history.Filter(),
		Loading:      h.history.Loading(),
		Orders:       h.history.Orders(),
	}))
}

// OrderDetail renders a single order.
func (h *Handlers) OrderDetail(w http.ResponseWriter, r *http.Request) {
	h.center.Clear()
	orderNumber := chi.URLParam(r, "orderNumber")
	h.detail.Load(r.Context(), orderNumber)
	h.renderOrderDetail(w, r, orderNumber)
}

// CancelOrder handles the cancel action and re-renders the detail page with
// the refetched order.
func (h *Handlers) CancelOrder(w http.ResponseWriter, r *http.Request) {
	orderNumber := chi.URLParam(r, "orderNumber")
	if result := h.detail.Cancel(r.Context(), orderNumber); !result.OK() {
		h.logger.Warn("cancel order failed",
			zap.String("order_number", orderNumber),
			zap.String("message", result.Err().Message))
	}
	h.renderOrderDetail(w, r, orderNumber)
}

func (h *Handlers) renderOrderDetail(w http.ResponseWriter, r *http.Request, orderNumber string) {
	h.render(w, r, templates.OrderDetailPage(templates.OrderDetailData{
		BasePath:     h.basePath,
		Notification: h.center.State(),
		OrderNumber:  orderNumber,
		Order:        h.detail.Order(),
		Cancelling:   h.detail.Cancelling(),
	}))
}

// Coupons renders the coupon administration page with a suggested code
// prefilled in the creation form.
func (h *Handlers) Coupons(w http.ResponseWriter, r *http.Request) {
	h.center.Clear()
	h.browser.SetForm(coupons.Form{Code: coupons.SuggestCode()})
	h.browser.Load(r.Context())
	h.renderCoupons(w, r)
}

// CreateCoupon handles the coupon form submission. A successful create
// refetches the listing before the page renders, so the new coupon and its
// success notification appear together.
func (h *Handlers) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	h.browser.SetForm(coupons.Form{
		Code:              r.PostFormValue("code"),
		DiscountRateInput: r.PostFormValue("discountRate"),
		ValidFromInput:    r.PostFormValue("validFrom"),
		ValidToInput:      r.PostFormValue("validTo"),
		UsageLimitInput:   r.PostFormValue("usageLimit"),
	})
	if result := h.browser.Create(r.Context()); !result.OK() {
		h.logger.Warn("create coupon failed", zap.String("message", result.Err().Message))
	}
	h.renderCoupons(w, r)
}

func (h *Handlers) renderCoupons(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, templates.CouponsPage(templates.CouponsData{
		BasePath:     h.basePath,
		Notification: h.center.State(),
		Form:         h.browser.Form(),
		Coupons:      h.browser.Coupons(),
		Loading:      h.browser.Loading(),
		Creating:     h.browser.Creating(),
		Now:          time.Now(),
	}))
}

func (h *Handlers) render(w http.ResponseWriter, r *http.Request, component templ.Component) {
	templ.Handler(component).ServeHTTP(w, r)
}
