package coupons_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"finitefield.org/shopfront/internal/shop/api"
	"finitefield.org/shopfront/internal/shop/coupons"
	"finitefield.org/shopfront/internal/shop/notify"
)

type stubService struct {
	create api.Result[coupons.CreateResponse]
	list   api.Result[coupons.ListResult]

	created   []coupons.CreateRequest
	listCalls int
}

func (s *stubService) Create(_ context.Context, req coupons.CreateRequest) api.Result[coupons.CreateResponse] {
	s.created = append(s.created, req)
	return s.create
}

func (s *stubService) List(_ context.Context) api.Result[coupons.ListResult] {
	s.listCalls++
	return s.list
}

func TestBrowserLoadCachesCoupons(t *testing.T) {
	t.Parallel()

	svc := &stubService{list: api.Ok(coupons.ListResult{Coupons: []coupons.Coupon{{Code: "SAVE1"}}})}
	center := notify.NewCenter()
	browser := coupons.NewBrowser(svc, center)

	res := browser.Load(context.Background())
	require.True(t, res.OK())
	require.Len(t, browser.Coupons(), 1)
	require.False(t, browser.Loading())
}

func TestBrowserCreateRefetchesThenReportsSuccess(t *testing.T) {
	t.Parallel()

	svc := &stubService{
		create: api.Ok(coupons.CreateResponse{Code: "SAVE7777"}),
		list:   api.Ok(coupons.ListResult{Coupons: []coupons.Coupon{{Code: "SAVE7777"}}}),
	}
	center := notify.NewCenter()
	browser := coupons.NewBrowser(svc, center)

	browser.SetForm(coupons.Form{Code: "SAVE7777", DiscountRateInput: "0.2", UsageLimitInput: "10"})

	res := browser.Create(context.Background())
	require.True(t, res.OK())

	require.Len(t, svc.created, 1)
	require.Equal(t, "SAVE7777", svc.created[0].Code)
	require.InDelta(t, 0.2, svc.created[0].DiscountRate, 1e-9)
	require.NotNil(t, svc.created[0].UsageLimit)
	require.Equal(t, 10, *svc.created[0].UsageLimit)

	require.Equal(t, 1, svc.listCalls, "create success refetches the listing")
	require.Len(t, browser.Coupons(), 1)
	require.Equal(t, coupons.Form{}, browser.Form(), "form resets on success")

	state := center.State()
	require.Equal(t, notify.KindSuccess, state.Kind)
	require.Equal(t, "Coupon SAVE7777 created successfully!", state.Message)
}

func TestBrowserCreateValidationFailureSkipsNetwork(t *testing.T) {
	t.Parallel()

	svc := &stubService{create: api.Ok(coupons.CreateResponse{Code: "X"})}
	center := notify.NewCenter()
	browser := coupons.NewBrowser(svc, center)

	form := coupons.Form{Code: "", DiscountRateInput: "5"}
	browser.SetForm(form)

	res := browser.Create(context.Background())
	require.False(t, res.OK())
	require.Empty(t, svc.created)
	require.Zero(t, svc.listCalls)
	require.Equal(t, form, browser.Form(), "keystrokes survive a validation failure")

	state := center.State()
	require.Equal(t, notify.KindError, state.Kind)
	require.Equal(t, []string{
		"code: Coupon code must not be blank",
		"discountRate: Discount rate must be at most 1.00",
	}, state.Err.FieldErrors)
}

func TestBrowserCreateServerRejectionKeepsListing(t *testing.T) {
	t.Parallel()

	svc := &stubService{
		create: api.Err[coupons.CreateResponse](api.NewError("Coupon code already exists: SAVE1", http.StatusConflict)),
		list:   api.Ok(coupons.ListResult{Coupons: []coupons.Coupon{{Code: "SAVE1"}}}),
	}
	center := notify.NewCenter()
	browser := coupons.NewBrowser(svc, center)
	browser.Load(context.Background())
	require.Equal(t, 1, svc.listCalls)

	browser.SetForm(coupons.Form{Code: "SAVE1", DiscountRateInput: "0.1"})
	res := browser.Create(context.Background())
	require.False(t, res.OK())

	require.Equal(t, 1, svc.listCalls, "no refetch after a failed create")
	require.Len(t, browser.Coupons(), 1)
	require.Equal(t, notify.KindError, center.State().Kind)
}
