package cashbook

import "errors"

var (
	// ErrInvalidDate is returned for dates that cannot be parsed or are in the future.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidAmount is returned for amounts that cannot be parsed or are zero.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNoData is returned when a chart or extrema is requested on an empty ledger.
	ErrNoData = errors.New("no data")
)
