// Package payment emulates the card gateway used to gate rental creation.
// The validation rules mirror the real form: a 16 digit card number with
// fixed digits at positions 0-1 and 4-5, and a MM/YY expiry that is not in
// the past.
package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode"
)

var ErrIncompleteDetails = errors.New("payment details are incomplete")

var ErrInvalidCard = errors.New("card number is invalid or unsupported")

var ErrCardExpired = errors.New("card expiry is invalid or in the past")

type Card struct {
	Name   string `json:"cardName"`
	Number string `json:"cardNumber"`
	Expiry string `json:"expiry"`
	CVC    string `json:"cvc"`
}

// Validate checks the card against the emulator's rule set, using now for the
// expiry comparison.
func (c Card) Validate(now time.Time) error {
	if c.Name == "" || c.Number == "" || c.Expiry == "" || c.CVC == "" {
		return ErrIncompleteDetails
	}

	number := strings.Join(strings.Fields(c.Number), "")

	if len(number) != 16 || !isDigits(number) {
		return ErrInvalidCard
	}

	if number[0:2] != "90" || number[4:6] != "24" {
		return ErrInvalidCard
	}

	monthStr, yearStr, ok := strings.Cut(c.Expiry, "/")

	if !ok {
		return ErrCardExpired
	}

	month, err := strconv.Atoi(monthStr)

	if err != nil || month < 1 || month > 12 {
		return ErrCardExpired
	}

	year, err := strconv.Atoi(yearStr)

	if err != nil || len(yearStr) != 2 {
		return ErrCardExpired
	}

	// The expiry month's first instant must not lie before now, so a card
	// expiring in the current month is already rejected.
	expiry := time.Date(2000+year, time.Month(month), 1, 0, 0, 0, 0, now.Location())

	if expiry.Before(now) {
		return ErrCardExpired
	}

	return nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return len(s) != 0
}

// Gateway simulates the payment provider: a charge succeeds whenever the card
// passes validation. No settlement state is kept.
type Gateway struct {
	logger *slog.Logger
}

func NewGateway(logger *slog.Logger) *Gateway {
	return &Gateway{logger: logger}
}

func (g *Gateway) Charge(ctx context.Context, card Card, amount float64) error {
	if err := card.Validate(time.Now()); err != nil {
		return fmt.Errorf("charge rejected: %w", err)
	}

	g.logger.Info("simulated charge accepted", "amount", amount)

	return nil
}
