package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// ErrPaymentIntentCanceled is returned for intents that can no longer be paid.
var ErrPaymentIntentCanceled = errors.New("payment intent is canceled")

// PaymentVerifier checks a client-supplied payment intent before it is recorded.
type PaymentVerifier interface {
	VerifyPaymentIntent(ctx context.Context, id string) error
}

// StripeVerifier looks payment intents up in Stripe.
type StripeVerifier struct {
	client paymentintent.Client
}

// NewStripeVerifier creates a verifier using key. A nil backend uses the Stripe API.
func NewStripeVerifier(key string, backend stripe.Backend) *StripeVerifier {
	if backend == nil {
		backend = stripe.GetBackend(stripe.APIBackend)
	}
	return &StripeVerifier{client: paymentintent.Client{B: backend, Key: key}}
}

// VerifyPaymentIntent fails when the intent does not exist or was canceled.
func (v *StripeVerifier) VerifyPaymentIntent(ctx context.Context, id string) error {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := v.client.Get(id, params)
	if err != nil {
		return fmt.Errorf("failed to fetch payment intent %s: %w", id, err)
	}
	if pi.Status == stripe.PaymentIntentStatusCanceled {
		return ErrPaymentIntentCanceled
	}
	return nil
}
