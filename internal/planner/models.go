package planner

import "strings"

type Category string

const (
	CategoryNature    Category = "nature"
	CategoryFood      Category = "food"
	CategoryCulture   Category = "culture"
	CategoryAdventure Category = "adventure"
	CategoryShopping  Category = "shopping"
	CategoryHistory   Category = "history"
)

// Categories is the fixed interest vocabulary, in display order.
var Categories = []Category{
	CategoryNature,
	CategoryFood,
	CategoryCulture,
	CategoryAdventure,
	CategoryShopping,
	CategoryHistory,
}

func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories {
		if c == known {
			return c, true
		}
	}
	return "", false
}

type TravelType string

const (
	TravelSolo    TravelType = "solo"
	TravelFriends TravelType = "friends"
	// TravelAny only appears on places, never on requests.
	TravelAny TravelType = "any"
)

// TravelTypes lists the values a request may carry.
var TravelTypes = []TravelType{TravelSolo, TravelFriends}

func ParseTravelType(s string) (TravelType, bool) {
	switch t := TravelType(strings.ToLower(strings.TrimSpace(s))); t {
	case TravelSolo, TravelFriends, TravelAny:
		return t, true
	}
	return "", false
}

type Place struct {
	Name          string       `json:"name"`
	City          string       `json:"city"`
	Categories    []Category   `json:"categories"`
	BestFor       []TravelType `json:"best_for,omitempty"`
	ApproxCost    float64      `json:"approx_cost"`
	DurationHours float64      `json:"duration_hours,omitempty"`
	Why           string       `json:"why,omitempty"`
	StudentTip    string       `json:"student_tip,omitempty"`
	MapLink       string       `json:"map_link,omitempty"`
}

// AcceptsTravelType reports whether the place suits t. A place without
// group types, or one marked "any", suits everyone.
func (p Place) AcceptsTravelType(t TravelType) bool {
	if len(p.BestFor) == 0 {
		return true
	}
	for _, b := range p.BestFor {
		if b == t || b == TravelAny {
			return true
		}
	}
	return false
}

func (p Place) HasAnyCategory(interests []Category) bool {
	for _, c := range p.Categories {
		for _, i := range interests {
			if c == i {
				return true
			}
		}
	}
	return false
}

type TripRequest struct {
	City       string     `json:"city"`
	Days       int        `json:"days"`
	Budget     float64    `json:"budget"`
	Interests  []Category `json:"interests"`
	TravelType TravelType `json:"travel_type"`
}

type DayPlan struct {
	Day    int     `json:"day"`
	Places []Place `json:"places"`
	Cost   float64 `json:"cost"`
}

type BudgetStatus string

const (
	BudgetUnder BudgetStatus = "under"
	BudgetAt    BudgetStatus = "at"
	BudgetOver  BudgetStatus = "over"
)

type Itinerary struct {
	City           string       `json:"city"`
	RequestedDays  int          `json:"requested_days"`
	Days           int          `json:"days"`
	MaxDays        int          `json:"max_days"`
	CandidateCount int          `json:"candidate_count"`
	PerDayBudget   float64      `json:"per_day_budget"`
	DayPlans       []DayPlan    `json:"day_plans"`
	TotalCost      float64      `json:"total_cost"`
	Budget         float64      `json:"budget"`
	BudgetStatus   BudgetStatus `json:"budget_status"`
	Warnings       []Warning    `json:"warnings"`
}

// CatalogView is the read-only slice of a catalog the engine needs.
// Implementations must match city names case-insensitively and must not
// expect the returned slice to be modified.
type CatalogView interface {
	CityPlaces(city string) (name string, places []Place, ok bool)
}

// CityMap is the plain city -> places form of a catalog.
type CityMap map[string][]Place

func (m CityMap) CityPlaces(city string) (string, []Place, bool) {
	want := strings.TrimSpace(city)
	if places, ok := m[want]; ok {
		return want, places, true
	}
	for name, places := range m {
		if strings.EqualFold(name, want) {
			return name, places, true
		}
	}
	return "", nil, false
}
