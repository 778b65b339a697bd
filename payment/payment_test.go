package payment_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/playday-app/playday-backend/payment"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func validCard() payment.Card {
	return payment.Card{
		Name:   "John Doe",
		Number: "9012 2434 5678 9012",
		Expiry: "12/27",
		CVC:    "123",
	}
}

func TestCardValidate(t *testing.T) {

	t.Run("valid card", func(t *testing.T) {
		require.NoError(t, validCard().Validate(testNow))
	})

	t.Run("valid card without spaces", func(t *testing.T) {
		c := validCard()
		c.Number = "9012243456789012"

		require.NoError(t, c.Validate(testNow))
	})

	t.Run("missing fields", func(t *testing.T) {
		cards := []payment.Card{
			{Number: "9012243456789012", Expiry: "12/27", CVC: "123"},
			{Name: "John Doe", Expiry: "12/27", CVC: "123"},
			{Name: "John Doe", Number: "9012243456789012", CVC: "123"},
			{Name: "John Doe", Number: "9012243456789012", Expiry: "12/27"},
		}

		for _, c := range cards {
			require.ErrorIs(t, c.Validate(testNow), payment.ErrIncompleteDetails)
		}
	})

	t.Run("wrong length", func(t *testing.T) {
		c := validCard()
		c.Number = "90122434567890"

		require.ErrorIs(t, c.Validate(testNow), payment.ErrInvalidCard)
	})

	t.Run("non digits", func(t *testing.T) {
		c := validCard()
		c.Number = "9012a434567890ab"

		require.ErrorIs(t, c.Validate(testNow), payment.ErrInvalidCard)
	})

	t.Run("unsupported prefix digits", func(t *testing.T) {
		c := validCard()
		c.Number = "1234 1234 1234 1234"

		require.ErrorIs(t, c.Validate(testNow), payment.ErrInvalidCard)
	})

	t.Run("wrong digits at positions four and five", func(t *testing.T) {
		c := validCard()
		c.Number = "9012 9934 5678 9012"

		require.ErrorIs(t, c.Validate(testNow), payment.ErrInvalidCard)
	})

	t.Run("expired card", func(t *testing.T) {
		c := validCard()
		c.Expiry = "02/26"

		require.ErrorIs(t, c.Validate(testNow), payment.ErrCardExpired)
	})

	t.Run("expiry in current month is rejected", func(t *testing.T) {
		c := validCard()
		c.Expiry = "03/26"

		require.ErrorIs(t, c.Validate(testNow), payment.ErrCardExpired)
	})

	t.Run("expiry next month is accepted", func(t *testing.T) {
		c := validCard()
		c.Expiry = "04/26"

		require.NoError(t, c.Validate(testNow))
	})

	t.Run("malformed expiry", func(t *testing.T) {
		for _, expiry := range []string{"1227", "13/27", "0/27", "12/2027", "ab/cd"} {
			c := validCard()
			c.Expiry = expiry

			require.ErrorIs(t, c.Validate(testNow), payment.ErrCardExpired, "expiry %q", expiry)
		}
	})
}

func TestGatewayCharge(t *testing.T) {
	gateway := payment.NewGateway(slog.Default())

	t.Run("accepts a valid card", func(t *testing.T) {
		require.NoError(t, gateway.Charge(context.Background(), validCard(), 30))
	})

	t.Run("rejects an invalid card", func(t *testing.T) {
		c := validCard()
		c.Number = "1234 1234 1234 1234"

		err := gateway.Charge(context.Background(), c, 30)

		require.ErrorIs(t, err, payment.ErrInvalidCard)
	})
}
