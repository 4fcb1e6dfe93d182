package response_models

import "tripplanner/internal/planner"

type ItineraryResponse struct {
	City           string            `json:"city"`
	RequestedDays  int               `json:"requested_days"`
	Days           int               `json:"days"`
	MaxDays        int               `json:"max_days"`
	SuggestedDays  int               `json:"suggested_days,omitempty"`
	CandidateCount int               `json:"candidate_count"`
	Budget         float64           `json:"budget"`
	PerDayBudget   float64           `json:"per_day_budget"`
	TotalCost      float64           `json:"total_cost"`
	BudgetBuffer   float64           `json:"budget_buffer"`
	BudgetStatus   string            `json:"budget_status"`
	DayPlans       []DayPlanResponse `json:"day_plans"`
	GeneralTips    []string          `json:"general_tips"`
	Warnings       []planner.Warning `json:"warnings"`
	CatalogVersion string            `json:"catalog_version"`
	Cached         bool              `json:"cached"`
}

type DayPlanResponse struct {
	Day         int             `json:"day"`
	Focus       string          `json:"focus"`
	Description string          `json:"description"`
	Places      []PlaceResponse `json:"places"`
	Cost        float64         `json:"cost"`
	ExtraTips   []string        `json:"extra_tips"`
}

type PlaceResponse struct {
	Name          string   `json:"name"`
	Categories    []string `json:"categories"`
	BestFor       []string `json:"best_for,omitempty"`
	ApproxCost    float64  `json:"approx_cost"`
	DurationHours float64  `json:"duration_hours,omitempty"`
	Why           string   `json:"why,omitempty"`
	Tip           string   `json:"tip,omitempty"`
	MapLink       string   `json:"map_link"`
}
