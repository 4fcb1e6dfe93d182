package services

import (
	"fmt"
	"math"
	"strings"

	"tripplanner/internal/catalog"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/planner"
	"tripplanner/pkg/utils"
)

// PresentItinerary turns an engine result into the API shape and adds the
// display extras: per-day focus and description, resolved map links, city
// tips, the budget buffer and a budget-based trip length suggestion.
func PresentItinerary(it *planner.Itinerary, city catalog.City, req planner.TripRequest, version string) *response_models.ItineraryResponse {
	focus := dayFocus(req.Interests, city.DefaultFocus)
	label := titleCase(focus)
	if label == "" {
		label = "Highlights"
	}

	days := make([]response_models.DayPlanResponse, 0, len(it.DayPlans))
	for _, d := range it.DayPlans {
		places := make([]response_models.PlaceResponse, 0, len(d.Places))
		for _, p := range d.Places {
			places = append(places, PresentPlace(p, it.City))
		}
		days = append(days, response_models.DayPlanResponse{
			Day:   d.Day,
			Focus: label,
			Description: fmt.Sprintf(
				"Day %d: Focus on %s in and around %s. The plan mixes student-friendly and budget-conscious options.",
				d.Day, strings.ToLower(focus), it.City),
			Places:    places,
			Cost:      d.Cost,
			ExtraTips: nonNil(city.LocalTips),
		})
	}

	warnings := it.Warnings
	if warnings == nil {
		warnings = []planner.Warning{}
	}

	return &response_models.ItineraryResponse{
		City:           it.City,
		RequestedDays:  it.RequestedDays,
		Days:           it.Days,
		MaxDays:        it.MaxDays,
		SuggestedDays:  suggestedDays(req.Budget, city.AverageDailyCost, it.MaxDays),
		CandidateCount: it.CandidateCount,
		Budget:         it.Budget,
		PerDayBudget:   it.PerDayBudget,
		TotalCost:      it.TotalCost,
		BudgetBuffer:   it.Budget - it.TotalCost,
		BudgetStatus:   string(it.BudgetStatus),
		DayPlans:       days,
		GeneralTips:    nonNil(city.GeneralTips),
		Warnings:       warnings,
		CatalogVersion: version,
	}
}

func PresentPlace(p planner.Place, city string) response_models.PlaceResponse {
	out := response_models.PlaceResponse{
		Name:          p.Name,
		Categories:    make([]string, 0, len(p.Categories)),
		ApproxCost:    p.ApproxCost,
		DurationHours: p.DurationHours,
		Why:           p.Why,
		Tip:           p.StudentTip,
		MapLink:       utils.ResolveMapLink(p.MapLink, p.Name, city),
	}
	for _, c := range p.Categories {
		out.Categories = append(out.Categories, string(c))
	}
	for _, t := range p.BestFor {
		out.BestFor = append(out.BestFor, string(t))
	}
	return out
}

func dayFocus(interests []planner.Category, defaultFocus string) string {
	if len(interests) == 0 {
		if defaultFocus == "" {
			return "top highlights"
		}
		return defaultFocus
	}
	names := make([]string, len(interests))
	for i, c := range interests {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// suggestedDays is how many days the budget covers at the city's average
// daily cost, capped by the days the city supports. Zero means unknown.
func suggestedDays(budget, averageDailyCost float64, maxDays int) int {
	if budget <= 0 || averageDailyCost <= 0 {
		return 0
	}
	days := int(math.Floor(budget / averageDailyCost))
	if maxDays > 0 && days > maxDays {
		days = maxDays
	}
	if days < 1 {
		days = 1
	}
	return days
}
