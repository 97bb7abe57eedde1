package coupons_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"finitefield.org/shopfront/internal/shop/api"
	"finitefield.org/shopfront/internal/shop/coupons"
)

func newHTTPService(t *testing.T, handler http.HandlerFunc) *coupons.HTTPService {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client, err := api.NewClient(ts.URL, ts.Client())
	require.NoError(t, err)
	return coupons.NewHTTPService(client)
}

func TestCreateSendsRFC3339BoundsAndOmitsAbsentFields(t *testing.T) {
	t.Parallel()

	var raw map[string]json.RawMessage
	svc := newHTTPService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/coupons", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"code":"SAVE1234"}`))
	})

	from := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	res := svc.Create(context.Background(), coupons.CreateRequest{
		Code:         "SAVE1234",
		DiscountRate: 0.15,
		ValidFrom:    &from,
	})
	require.True(t, res.OK())
	require.Equal(t, "SAVE1234", res.Value().Code)

	require.JSONEq(t, `"2025-06-01T09:00:00Z"`, string(raw["validFrom"]))
	_, hasValidTo := raw["validTo"]
	require.False(t, hasValidTo)
	_, hasLimit := raw["usageLimit"]
	require.False(t, hasLimit)
}

func TestCreateSurfacesFieldErrorsFromServer(t *testing.T) {
	t.Parallel()

	svc := newHTTPService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{
			"detail": "The request contains one or more validation errors",
			"errors": [{"field": "code", "message": "Coupon code already exists"}]
		}`))
	})

	res := svc.Create(context.Background(), coupons.CreateRequest{Code: "SAVE1", DiscountRate: 0.1})
	require.False(t, res.OK())
	require.Equal(t, []string{"code: Coupon code already exists"}, res.Err().FieldErrors)
}

func TestListDecodesCoupons(t *testing.T) {
	t.Parallel()

	svc := newHTTPService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/coupons", r.URL.Path)
		require.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"coupons":[
			{"code":"SAVE1000","discountRate":0.1,"validFrom":"2025-06-01T00:00:00Z","usageLimit":100,"usedCount":12},
			{"code":"SAVE2025","discountRate":0.25,"usageLimit":2147483647,"usedCount":0}
		]}`))
	})

	res := svc.List(context.Background())
	require.True(t, res.OK())

	list := res.Value().Coupons
	require.Len(t, list, 2)
	require.Equal(t, "SAVE1000", list[0].Code)
	require.NotNil(t, list[0].ValidFrom)
	require.Equal(t, "100", list[0].UsageLimitLabel())
	require.Equal(t, "Unlimited", list[1].UsageLimitLabel())
}
