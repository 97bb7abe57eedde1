package orders

import (
	"context"
	"fmt"
	"sync"

	"finitefield.org/shopfront/internal/shop/api"
	"finitefield.org/shopfront/internal/shop/notify"
)

// Placer is the orchestration unit behind the place-order page: it owns the
// form state and the in-flight flag, and routes every submission outcome
// through the notification center.
type Placer struct {
	svc    Service
	center *notify.Center

	mu         sync.Mutex
	form       Form
	submitting bool
}

// NewPlacer wires a Placer with the form at its defaults.
func NewPlacer(svc Service, center *notify.Center) *Placer {
	return &Placer{svc: svc, center: center, form: DefaultForm()}
}

// Form returns a snapshot of the current form state.
func (p *Placer) Form() Form {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.form
}

// SetForm replaces the form state with the view's latest field values.
func (p *Placer) SetForm(form Form) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.form = form
}

// Submitting reports whether a submission is in flight.
func (p *Placer) Submitting() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.submitting
}

// Submit validates the form locally and, when valid, places the order. A
// validation failure synthesizes an APIError without touching the network.
// On success the form resets to its defaults and a success notification
// carrying the order number is reported. Concurrent submissions are not
// deduplicated; the last response to resolve wins.
func (p *Placer) Submit(ctx context.Context) api.Result[PlaceResponse] {
	form := p.Form()

	return notify.Run(p.center, func() api.Result[PlaceResponse] {
		if err := form.Validate(); err != nil {
			return api.Err[PlaceResponse](err)
		}

		p.setSubmitting(true)
		defer p.setSubmitting(false)
		return p.svc.Place(ctx, form.request())
	}, func(resp PlaceResponse) {
		p.SetForm(DefaultForm())
		p.center.Success(fmt.Sprintf("Success! Order has been created with Order Number %s", resp.OrderNumber))
	})
}

func (p *Placer) setSubmitting(v bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.submitting = v
}
