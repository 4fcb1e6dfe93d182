package planner

import (
	"fmt"
	"math"
	"strings"
)

type Policy struct {
	// MinPlacesPerDay drives the capacity estimate: a city supports
	// floor(candidates / MinPlacesPerDay) days.
	MinPlacesPerDay int `json:"min_places_per_day"`
	// MaxPlacesPerDay caps how many places the allocator puts in one day.
	MaxPlacesPerDay int `json:"max_places_per_day"`
	// AtBudgetTolerance is the fraction over budget still reported as "at".
	AtBudgetTolerance float64 `json:"at_budget_tolerance"`
}

func DefaultPolicy() Policy {
	return Policy{
		MinPlacesPerDay:   3,
		MaxPlacesPerDay:   3,
		AtBudgetTolerance: 0.01,
	}
}

func (p Policy) Validate() error {
	if p.MinPlacesPerDay < 1 {
		return fmt.Errorf("%w: min places per day must be at least 1, got %d", ErrInvalidPolicy, p.MinPlacesPerDay)
	}
	if p.MaxPlacesPerDay < p.MinPlacesPerDay {
		return fmt.Errorf("%w: max places per day (%d) below min (%d)", ErrInvalidPolicy, p.MaxPlacesPerDay, p.MinPlacesPerDay)
	}
	if p.AtBudgetTolerance < 0 || math.IsNaN(p.AtBudgetTolerance) {
		return fmt.Errorf("%w: budget tolerance must be non-negative", ErrInvalidPolicy)
	}
	return nil
}

// Validate rejects malformed requests. Interests and travel type are
// expected in canonical lower-case form; see NormalizeRequest.
func (r TripRequest) Validate() error {
	if strings.TrimSpace(r.City) == "" {
		return fmt.Errorf("%w: city is required", ErrInvalidRequest)
	}
	if r.Days <= 0 {
		return fmt.Errorf("%w: days must be positive, got %d", ErrInvalidRequest, r.Days)
	}
	if r.Budget < 0 || math.IsNaN(r.Budget) || math.IsInf(r.Budget, 0) {
		return fmt.Errorf("%w: budget must be a non-negative number", ErrInvalidRequest)
	}
	if r.TravelType != TravelSolo && r.TravelType != TravelFriends {
		return fmt.Errorf("%w: unknown travel type %q", ErrInvalidRequest, r.TravelType)
	}
	for _, i := range r.Interests {
		if _, ok := ParseCategory(string(i)); !ok || string(i) != strings.ToLower(string(i)) {
			return fmt.Errorf("%w: unknown interest %q", ErrInvalidRequest, i)
		}
	}
	return nil
}

// NormalizeRequest builds a canonical request from loosely formatted
// input: trimmed city, lower-case de-duplicated interests in vocabulary
// order, lower-case travel type.
func NormalizeRequest(city string, days int, budget float64, interests []string, travelType string) (TripRequest, error) {
	req := TripRequest{
		City:   strings.TrimSpace(city),
		Days:   days,
		Budget: budget,
	}

	t, ok := ParseTravelType(travelType)
	if !ok || t == TravelAny {
		return req, fmt.Errorf("%w: unknown travel type %q", ErrInvalidRequest, travelType)
	}
	req.TravelType = t

	seen := make(map[Category]bool, len(interests))
	for _, raw := range interests {
		c, ok := ParseCategory(raw)
		if !ok {
			return req, fmt.Errorf("%w: unknown interest %q", ErrInvalidRequest, raw)
		}
		seen[c] = true
	}
	for _, c := range Categories {
		if seen[c] {
			req.Interests = append(req.Interests, c)
		}
	}

	return req, req.Validate()
}
