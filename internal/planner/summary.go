package planner

// Summarize recomputes every day cost from its places, totals them, and
// classifies the total against budget. Totals up to AtBudgetTolerance over
// (or under) the budget count as "at".
func Summarize(plans []DayPlan, budget float64, policy Policy, fb *FallbackPolicy) (float64, BudgetStatus) {
	var total float64
	for i := range plans {
		var cost float64
		for _, p := range plans[i].Places {
			cost += p.ApproxCost
		}
		plans[i].Cost = cost
		total += cost
	}

	status := ClassifyBudget(total, budget, policy.AtBudgetTolerance)
	if status == BudgetOver {
		fb.OverBudget(total, budget)
	}
	return total, status
}

func ClassifyBudget(total, budget, tolerance float64) BudgetStatus {
	slack := budget * tolerance
	switch diff := total - budget; {
	case diff > slack:
		return BudgetOver
	case diff >= -slack:
		return BudgetAt
	default:
		return BudgetUnder
	}
}
