package rental

import "time"

// Rental is a booked time slot on a field. Field name, location and price are
// denormalized copies taken at booking time and never recomputed. Rentals are
// never updated or deleted.
type Rental struct {
	ID         string    `json:"id"`
	FieldName  string    `json:"fieldName"`
	Location   string    `json:"location"`
	PriceToPay float64   `json:"priceToPay"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	Hours      int       `json:"hours"`
	Owner      string    `json:"owner"`
}

func (r Rental) StartsAt() time.Time {
	return r.StartDate
}

// IsPast reports whether the rental's slot started strictly before now.
func (r Rental) IsPast(now time.Time) bool {
	return r.StartDate.Before(now)
}

// Quote carries the computed totals and slot metadata between the booking
// step and the payment step. It is transient: nothing is persisted until the
// simulated payment succeeds.
type Quote struct {
	FieldName  string    `json:"fieldName"`
	Location   string    `json:"location"`
	PriceToPay float64   `json:"priceToPay"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	Hours      int       `json:"hours"`
}
