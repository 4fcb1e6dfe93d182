package request_models

type ItineraryRequest struct {
	City       string   `json:"city" binding:"required"`
	Days       int      `json:"days" binding:"required,min=1"`
	Budget     *float64 `json:"budget" binding:"required,gte=0"`
	Interests  []string `json:"interests"`
	TravelType string   `json:"travel_type" binding:"required"`
}

// BudgetValue returns the budget, or 0 when it was omitted.
func (r ItineraryRequest) BudgetValue() float64 {
	if r.Budget == nil {
		return 0
	}
	return *r.Budget
}
