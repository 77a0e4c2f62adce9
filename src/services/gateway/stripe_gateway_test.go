package gateway

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCents(t *testing.T) {
	cases := []struct {
		price float64
		want  int64
	}{
		{price: 1, want: 100},
		{price: 49.99, want: 4999},
		{price: 0.1 + 0.2, want: 30},
		{price: 19.995, want: 2000},
	}
	for _, tc := range cases {
		got, err := ToCents(tc.price)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "price %v", tc.price)
	}
}

func TestToCentsRejectsNonPositive(t *testing.T) {
	for _, price := range []float64{0, -5, 0.001} {
		_, err := ToCents(price)
		assert.ErrorIs(t, err, ErrInvalidAmount, "price %v", price)
	}
}

func TestLocalGateway(t *testing.T) {
	secret, err := LocalGateway{}.CreatePaymentIntent(context.Background(), 25)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(secret, "pi_local_secret_"))

	_, err = LocalGateway{}.CreatePaymentIntent(context.Background(), 0)
	assert.Error(t, err)
}
