package catalogbuild

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"tripplanner/internal/catalog"
	"tripplanner/internal/planner"
	"tripplanner/pkg/utils"
)

const (
	unknownCity      = "Unknown City"
	minDailyCost     = 300
	defaultDailyCost = 1000
)

var (
	generalTips = []string{
		"Travel with friends to share room and cab costs.",
		"Prefer public transport or walking instead of point-to-point cabs.",
		"Carry a refillable water bottle and some snacks.",
		"Check for student discounts at museums and attractions.",
	}
	localTips = []string{
		"Try to group nearby places on the same day to save travel cost and time.",
		"Start your day a bit early to avoid crowds and heat wherever possible.",
	}
)

// Report counts what Build did with the input rows.
type Report struct {
	Rows           int
	Places         int
	Cities         int
	SkippedNoName  int
	DuplicateNames int
}

// Build converts attraction rows into catalog cities sorted by name.
// accommodation maps a city to its lowest nightly cost and may be nil.
func Build(t *Table, accommodation map[string]int) ([]catalog.City, Report, error) {
	report := Report{Rows: t.Len()}

	cityCol, ok := t.Pick(cityColumns...)
	if !ok {
		return nil, report, fmt.Errorf("%w: city (tried %s)", ErrColumnNotFound, strings.Join(cityColumns, ", "))
	}
	nameCol, ok := t.Pick(nameColumns...)
	if !ok {
		return nil, report, fmt.Errorf("%w: place name (tried %s)", ErrColumnNotFound, strings.Join(nameColumns, ", "))
	}
	categoryCol, hasCategory := t.Pick(categoryColumns...)
	descCol, hasDesc := t.Pick(descriptionColumns...)

	var order []string
	byCity := make(map[string][]planner.Place)
	names := make(map[string]map[string]bool)

	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)

		city := row.Get(cityCol)
		if city == "" {
			city = unknownCity
		}
		name := row.Get(nameCol)
		if name == "" {
			report.SkippedNoName++
			continue
		}

		if _, seen := byCity[city]; !seen {
			order = append(order, city)
			byCity[city] = nil
			names[city] = map[string]bool{}
		}
		key := strings.ToLower(name)
		if names[city][key] {
			report.DuplicateNames++
			continue
		}
		names[city][key] = true

		var rawCategory string
		if hasCategory {
			rawCategory = row.Get(categoryCol)
		}
		if rawCategory == "" && hasDesc {
			rawCategory = row.Get(descCol)
		}

		cost := InferCost(row.Values(costColumns))
		byCity[city] = append(byCity[city], planner.Place{
			Name:          name,
			City:          city,
			Categories:    InferCategories(rawCategory),
			BestFor:       []planner.TravelType{planner.TravelSolo, planner.TravelFriends},
			ApproxCost:    cost,
			DurationHours: InferDurationHours(row.Values(durationColumns)),
			Why:           InferWhy(row.Values(descriptionColumns), city),
			StudentTip:    StudentTip(cost),
			MapLink:       utils.MapSearchURL(name, city),
		})
		report.Places++
	}

	cities := make([]catalog.City, 0, len(order))
	for _, name := range order {
		places := byCity[name]
		if len(places) == 0 {
			continue
		}
		accom, hasAccom := accommodation[name]
		cities = append(cities, catalog.City{
			Name:             name,
			DefaultFocus:     DefaultFocus(places),
			AverageDailyCost: AverageDailyCost(places, accom, hasAccom),
			GeneralTips:      append([]string(nil), generalTips...),
			LocalTips:        append([]string(nil), localTips...),
			Places:           places,
		})
	}
	catalog.SortCities(cities)
	report.Cities = len(cities)
	return cities, report, nil
}

// DefaultFocus names the three most common categories, most frequent
// first; ties keep first-seen order.
func DefaultFocus(places []planner.Place) string {
	var order []planner.Category
	counts := map[planner.Category]int{}
	for _, p := range places {
		for _, c := range p.Categories {
			if counts[c] == 0 {
				order = append(order, c)
			}
			counts[c]++
		}
	}
	if len(order) == 0 {
		return "top highlights"
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > 3 {
		order = order[:3]
	}
	top := make([]string, len(order))
	for i, c := range order {
		top[i] = string(c)
	}
	return strings.Join(top, ", ")
}

// AverageDailyCost estimates a student's daily spend in a city: two
// median-priced places plus the cheapest stay when known, never below 300.
// Without accommodation data a zero place estimate becomes 1000.
func AverageDailyCost(places []planner.Place, accommodation int, hasAccommodation bool) float64 {
	var placeDaily float64
	if len(places) > 0 {
		costs := make([]float64, len(places))
		for i, p := range places {
			costs[i] = p.ApproxCost
		}
		sort.Float64s(costs)
		placeDaily = math.Max(0, costs[len(costs)/2]*2)
	}

	if hasAccommodation {
		return math.Trunc(math.Max(minDailyCost, float64(accommodation)+placeDaily))
	}
	if placeDaily == 0 {
		placeDaily = defaultDailyCost
	}
	return math.Trunc(math.Max(minDailyCost, placeDaily))
}
