package planner

import "fmt"

type Capacity struct {
	Candidates    int
	RequestedDays int
	MaxDays       int
	ResolvedDays  int
}

// EstimateCapacity works out how many distinct sightseeing days the
// candidate set supports and clamps the requested length to it.
func EstimateCapacity(candidates, requestedDays int, policy Policy, fb *FallbackPolicy) (Capacity, error) {
	if candidates <= 0 {
		return Capacity{}, fmt.Errorf("%w: no candidate places", ErrNoDataForCity)
	}

	maxDays := candidates / policy.MinPlacesPerDay
	if maxDays < 1 {
		maxDays = 1
	}

	resolved := requestedDays
	if resolved > maxDays {
		resolved = maxDays
		fb.ShortenTrip(requestedDays, resolved, candidates)
	}

	return Capacity{
		Candidates:    candidates,
		RequestedDays: requestedDays,
		MaxDays:       maxDays,
		ResolvedDays:  resolved,
	}, nil
}
