// Package planner turns a trip request and a read-only place catalog into
// a day-by-day itinerary. It does no I/O and keeps no state between calls.
package planner

import "fmt"

// GenerateItinerary runs filter, capacity estimate, allocation and cost
// summary for req. It fails only with ErrInvalidRequest, ErrInvalidPolicy
// or ErrNoDataForCity; every other degenerate case is absorbed and
// reported in Itinerary.Warnings.
func GenerateItinerary(req TripRequest, catalog CatalogView, policy Policy) (*Itinerary, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	city, places, ok := catalog.CityPlaces(req.City)
	if !ok || len(places) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoDataForCity, req.City)
	}

	fb := NewFallbackPolicy()
	candidates := FilterPlaces(places, req.Interests, req.TravelType, fb)

	capacity, err := EstimateCapacity(len(candidates), req.Days, policy, fb)
	if err != nil {
		return nil, fmt.Errorf("%w (city %q)", err, city)
	}

	plans, perDay := AllocateDays(candidates, capacity.ResolvedDays, req.Budget, policy, fb)
	total, status := Summarize(plans, req.Budget, policy, fb)

	return &Itinerary{
		City:           city,
		RequestedDays:  req.Days,
		Days:           len(plans),
		MaxDays:        capacity.MaxDays,
		CandidateCount: capacity.Candidates,
		PerDayBudget:   perDay,
		DayPlans:       plans,
		TotalCost:      total,
		Budget:         req.Budget,
		BudgetStatus:   status,
		Warnings:       fb.Warnings(),
	}, nil
}
