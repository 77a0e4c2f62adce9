package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

var ErrInvalidAmount = errors.New("price must be greater than zero")

// PaymentGateway creates the client secret the browser uses to pay.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, price float64) (string, error)
}

// ToCents แปลงราคาเป็นหน่วยย่อยที่สุดของสกุลเงิน (ปัดเศษเป็นสตางค์/เซนต์)
func ToCents(price float64) (int64, error) {
	cents := decimal.NewFromFloat(price).Mul(decimal.NewFromInt(100)).Round(0)
	if !cents.IsPositive() {
		return 0, ErrInvalidAmount
	}
	return cents.IntPart(), nil
}

type StripeGateway struct {
	api      *client.API
	currency string
}

func NewStripeGateway(secretKey, currency string) *StripeGateway {
	return &StripeGateway{
		api:      client.New(secretKey, nil),
		currency: currency,
	}
}

func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	amount, err := ToCents(price)
	if err != nil {
		return "", err
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(g.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}

// LocalGateway returns fake secrets. Used with the memory store driver when
// no Stripe key is configured.
type LocalGateway struct{}

func (LocalGateway) CreatePaymentIntent(_ context.Context, price float64) (string, error) {
	if _, err := ToCents(price); err != nil {
		return "", err
	}
	return "pi_local_secret_" + uuid.NewString(), nil
}

var (
	_ PaymentGateway = (*StripeGateway)(nil)
	_ PaymentGateway = LocalGateway{}
)
