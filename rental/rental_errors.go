package rental

import "errors"

var ErrRentalNotFound = errors.New("rental not found")

var ErrInvalidTimeRange = errors.New("selected time range is invalid")

var ErrMissingQuote = errors.New("payment attempted without a booking quote")
