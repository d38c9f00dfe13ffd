// File: services/booking/payment.go
package booking

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// PaymentHandler creates Stripe payment intents for booking deposits.
type PaymentHandler struct {
	logger *zap.Logger
}

func NewPaymentHandler(logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{logger: logger}
}

// CreateDepositIntent creates a payment intent for the booking deposit.
// Amount is in the currency's smallest unit. The booking reference is
// attached as metadata so reconciliation can tie the charge back.
func (h *PaymentHandler) CreateDepositIntent(amount int64, currency, reference string) (*stripe.PaymentIntent, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("deposit amount must be positive, got %d", amount)
	}
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("booking_reference", reference)

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	h.logger.Info("created deposit payment intent",
		zap.String("intent", intent.ID),
		zap.String("reference", reference))
	return intent, nil
}
