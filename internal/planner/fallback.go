package planner

import (
	"fmt"
	"strings"
)

type WarningCode string

const (
	WarnInterestsRelaxed    WarningCode = "interests_relaxed"
	WarnTravelTypeRelaxed   WarningCode = "travel_type_relaxed"
	WarnTripShortened       WarningCode = "trip_shortened"
	WarnBudgetRelaxed       WarningCode = "budget_relaxed"
	WarnCandidatesExhausted WarningCode = "candidates_exhausted"
	WarnOverBudget          WarningCode = "over_budget"
)

type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}

// FallbackPolicy holds the relaxation rules shared by the filter and the
// allocator. Every rule it applies is recorded as a Warning; nothing is
// relaxed silently. A FallbackPolicy belongs to a single request.
type FallbackPolicy struct {
	warnings []Warning
}

func NewFallbackPolicy() *FallbackPolicy {
	return &FallbackPolicy{}
}

func (f *FallbackPolicy) record(code WarningCode, format string, args ...any) {
	f.warnings = append(f.warnings, Warning{Code: code, Message: fmt.Sprintf(format, args...)})
}

// Warnings returns the recorded warnings in the order they were applied.
func (f *FallbackPolicy) Warnings() []Warning {
	out := make([]Warning, len(f.warnings))
	copy(out, f.warnings)
	return out
}

// WidenInterests replaces an empty interest match with every place that
// suits the travel type.
func (f *FallbackPolicy) WidenInterests(interests []Category, typeMatched []Place) []Place {
	names := make([]string, len(interests))
	for i, c := range interests {
		names[i] = string(c)
	}
	f.record(WarnInterestsRelaxed,
		"interests relaxed: no place matches %s, showing all %d places for this trip type",
		strings.Join(names, ", "), len(typeMatched))
	return typeMatched
}

// WidenTravelType replaces an empty travel-type match with the whole city.
func (f *FallbackPolicy) WidenTravelType(t TravelType, all []Place) []Place {
	f.record(WarnTravelTypeRelaxed,
		"travel type relaxed: no place is marked for %s trips, showing all %d places", t, len(all))
	return all
}

func (f *FallbackPolicy) ShortenTrip(requested, resolved, candidates int) {
	f.record(WarnTripShortened,
		"trip shortened from %d to %d days: only %d distinct attractions match", requested, resolved, candidates)
}

// ForcePlace records that p was put into day regardless of the per-day budget.
func (f *FallbackPolicy) ForcePlace(day int, p Place, perDayBudget float64) {
	f.record(WarnBudgetRelaxed,
		"budget relaxed for day %d: %s costs %.0f against a daily budget of %.0f", day, p.Name, p.ApproxCost, perDayBudget)
}

func (f *FallbackPolicy) TrimDays(planned, filled int) {
	f.record(WarnCandidatesExhausted,
		"ran out of places after day %d, trip trimmed from %d to %d days", filled, planned, filled)
}

func (f *FallbackPolicy) OverBudget(total, budget float64) {
	f.record(WarnOverBudget, "plan exceeds budget by about %.0f", total-budget)
}
