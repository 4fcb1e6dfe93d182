package planner

import "errors"

var (
	// ErrNoDataForCity means the city is unknown or has no places at all.
	ErrNoDataForCity = errors.New("no data for city")
	// ErrInvalidRequest means the request was rejected before filtering.
	ErrInvalidRequest = errors.New("invalid trip request")
	ErrInvalidPolicy  = errors.New("invalid planner policy")
)
