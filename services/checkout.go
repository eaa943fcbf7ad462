package services

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v84"
	"github.com/stripe/stripe-go/v84/checkout/session"
)

// CheckoutRequest describes a funding checkout to open with the processor.
// Amount is in whole currency units.
type CheckoutRequest struct {
	Amount        int64
	CustomerEmail string
	ProductName   string
}

// CheckoutSession is the processor-neutral view of a checkout transaction.
type CheckoutSession struct {
	ID            string
	URL           string
	PaymentStatus string
	AmountTotal   int64
	CustomerEmail string
	CustomerName  string
}

// Paid reports whether the processor confirmed the payment.
func (s *CheckoutSession) Paid() bool {
	return s.PaymentStatus == string(stripe.CheckoutSessionPaymentStatusPaid)
}

// CheckoutProvider is the external payment processor. Session creation and
// payment verification happen on the provider's side; the ledger only
// persists confirmed results.
type CheckoutProvider interface {
	CreateSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
	GetSession(ctx context.Context, id string) (*CheckoutSession, error)
}

// StripeCheckout implements CheckoutProvider with Stripe hosted checkout.
type StripeCheckout struct {
	ClientURL string
}

func NewStripeCheckout(secretKey, clientURL string) *StripeCheckout {
	stripe.Key = secretKey
	return &StripeCheckout{ClientURL: clientURL}
}

func (s *StripeCheckout) CreateSession(_ context.Context, req CheckoutRequest) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.ProductName),
					},
					UnitAmount: stripe.Int64(req.Amount * 100),
				},
				Quantity: stripe.Int64(1),
			},
		},
		CustomerEmail: stripe.String(req.CustomerEmail),
		SuccessURL:    stripe.String(s.ClientURL + "/funding/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:     stripe.String(s.ClientURL + "/funding"),
	}

	created, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	return fromStripe(created), nil
}

func (s *StripeCheckout) GetSession(_ context.Context, id string) (*CheckoutSession, error) {
	found, err := session.Get(id, nil)
	if err != nil {
		return nil, fmt.Errorf("retrieve checkout session: %w", err)
	}
	return fromStripe(found), nil
}

func fromStripe(s *stripe.CheckoutSession) *CheckoutSession {
	out := &CheckoutSession{
		ID:            s.ID,
		URL:           s.URL,
		PaymentStatus: string(s.PaymentStatus),
		AmountTotal:   s.AmountTotal / 100,
	}
	if s.CustomerDetails != nil {
		out.CustomerEmail = s.CustomerDetails.Email
		out.CustomerName = s.CustomerDetails.Name
	}
	if out.CustomerEmail == "" {
		out.CustomerEmail = s.CustomerEmail
	}
	return out
}
