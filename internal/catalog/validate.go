package catalog

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"tripplanner/internal/planner"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidCatalog, fmt.Sprintf(format, args...))
}

func validateCity(city City) error {
	if city.Name == "" {
		return invalidf("city without a name")
	}
	if city.AverageDailyCost < 0 || math.IsNaN(city.AverageDailyCost) {
		return invalidf("city %q: negative average daily cost", city.Name)
	}

	seen := make(map[string]bool, len(city.Places))
	for i, p := range city.Places {
		if err := validatePlace(p); err != nil {
			return fmt.Errorf("city %q place %d: %w", city.Name, i, err)
		}
		key := strings.ToLower(strings.TrimSpace(p.Name))
		if seen[key] {
			return invalidf("city %q: duplicate place %q", city.Name, p.Name)
		}
		seen[key] = true
	}
	return nil
}

func validatePlace(p planner.Place) error {
	if strings.TrimSpace(p.Name) == "" {
		return invalidf("place without a name")
	}
	if p.ApproxCost < 0 || math.IsNaN(p.ApproxCost) || math.IsInf(p.ApproxCost, 0) {
		return invalidf("%q: cost must be a non-negative number", p.Name)
	}
	if p.DurationHours < 0 || math.IsNaN(p.DurationHours) {
		return invalidf("%q: negative duration", p.Name)
	}
	if len(p.Categories) == 0 {
		return invalidf("%q: no categories", p.Name)
	}
	for _, c := range p.Categories {
		if parsed, ok := planner.ParseCategory(string(c)); !ok || parsed != c {
			return invalidf("%q: unknown category %q", p.Name, c)
		}
	}
	for _, t := range p.BestFor {
		if parsed, ok := planner.ParseTravelType(string(t)); !ok || parsed != t {
			return invalidf("%q: unknown travel type %q", p.Name, t)
		}
	}
	return nil
}
