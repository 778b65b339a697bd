package rental

import (
	"context"
	"math"
	"time"

	"github.com/playday-app/playday-backend/field"
	"github.com/playday-app/playday-backend/payment"
	"github.com/playday-app/playday-backend/timeline"
)

type RentalRepository interface {
	Insert(ctx context.Context, rental Rental) (Rental, error)
	GetByID(ctx context.Context, id string) (Rental, error)
	ListByOwner(ctx context.Context, owner string) ([]Rental, error)
}

type FieldCatalog interface {
	GetByName(ctx context.Context, name string) (field.Field, error)
}

type PaymentGateway interface {
	Charge(ctx context.Context, card payment.Card, amount float64) error
}

type Service struct {
	repo    RentalRepository
	fields  FieldCatalog
	gateway PaymentGateway
	now     func() time.Time
}

func NewService(repo RentalRepository, fields FieldCatalog, gateway PaymentGateway) *Service {
	return &Service{repo: repo, fields: fields, gateway: gateway, now: time.Now}
}

// Quote computes the billable hours and total price for a slot on a field.
// Hours is the ceiling of the slot span; a span below one hour is rejected
// before any payment step is reached.
func (s *Service) Quote(ctx context.Context, fieldName string, start, end time.Time) (Quote, error) {
	f, err := s.fields.GetByName(ctx, fieldName)

	if err != nil {
		return Quote{}, err
	}

	hours := ComputeHours(start, end)

	if hours < 1 {
		return Quote{}, ErrInvalidTimeRange
	}

	return Quote{
		FieldName:  f.FieldName,
		Location:   f.Location,
		PriceToPay: float64(hours) * f.Price,
		StartDate:  start,
		EndDate:    end,
		Hours:      hours,
	}, nil
}

// Create writes a rental after a successful simulated payment. Reaching the
// payment step without a quote is an access violation, not a validation
// error: nothing is charged and nothing is written. The submitted quote only
// names the slot; hours and price are recomputed from the catalog before the
// charge, so priceToPay is always hours times the field's current price.
func (s *Service) Create(ctx context.Context, owner string, quote *Quote, card payment.Card) (Rental, error) {
	if quote == nil {
		return Rental{}, ErrMissingQuote
	}

	hours := ComputeHours(quote.StartDate, quote.EndDate)

	if hours < 1 || hours != quote.Hours {
		return Rental{}, ErrInvalidTimeRange
	}

	f, err := s.fields.GetByName(ctx, quote.FieldName)

	if err != nil {
		return Rental{}, err
	}

	price := float64(hours) * f.Price

	if err := s.gateway.Charge(ctx, card, price); err != nil {
		return Rental{}, err
	}

	return s.repo.Insert(ctx, Rental{
		FieldName:  f.FieldName,
		Location:   f.Location,
		PriceToPay: price,
		StartDate:  quote.StartDate,
		EndDate:    quote.EndDate,
		Hours:      hours,
		Owner:      owner,
	})
}

// ListByOwner returns the owner's rentals ordered upcoming-first, each group
// ascending by start instant. Classification happens here, per call, against
// the current wall clock.
func (s *Service) ListByOwner(ctx context.Context, owner string) ([]Rental, error) {
	rentals, err := s.repo.ListByOwner(ctx, owner)

	if err != nil {
		return nil, err
	}

	timeline.OrderUpcomingFirst(rentals, s.now())

	return rentals, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Rental, error) {
	return s.repo.GetByID(ctx, id)
}

// ComputeHours returns the billable hours for a slot: the ceiling of the span
// in hours. Non-positive spans yield 0.
func ComputeHours(start, end time.Time) int {
	span := end.Sub(start)

	if span <= 0 {
		return 0
	}

	return int(math.Ceil(span.Hours()))
}
