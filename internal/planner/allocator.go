package planner

import "sort"

// AllocateDays greedily packs candidates into days, cheapest first.
//
// Candidates are sorted once by ascending cost (ties keep catalog order)
// and consumed through a single cursor, so no place is used twice. A day
// keeps taking the next place while it fits the per-day budget, the day
// is below MaxPlacesPerDay, and enough places remain to give every later
// day at least one. A day that would end up empty gets the cheapest
// remaining place anyway, and fb records it when that place breaks the
// per-day budget. If places run out before the last day the
// result is shorter than days and fb records the trim.
func AllocateDays(candidates []Place, days int, budget float64, policy Policy, fb *FallbackPolicy) ([]DayPlan, float64) {
	if days <= 0 {
		days = 1
	}
	perDay := budget / float64(days)

	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return candidates[order[a]].ApproxCost < candidates[order[b]].ApproxCost
	})

	plans := make([]DayPlan, 0, days)
	next := 0
	for day := 1; day <= days && next < len(order); day++ {
		plan := DayPlan{Day: day, Places: make([]Place, 0, policy.MaxPlacesPerDay)}
		laterDays := days - day

		for next < len(order) && len(plan.Places) < policy.MaxPlacesPerDay && len(order)-next > laterDays {
			p := candidates[order[next]]
			if plan.Cost+p.ApproxCost > perDay {
				break
			}
			plan.Places = append(plan.Places, p)
			plan.Cost += p.ApproxCost
			next++
		}

		if len(plan.Places) == 0 {
			p := candidates[order[next]]
			plan.Places = append(plan.Places, p)
			plan.Cost += p.ApproxCost
			next++
			if p.ApproxCost > perDay {
				fb.ForcePlace(day, p, perDay)
			}
		}

		plans = append(plans, plan)
	}

	if len(plans) < days {
		fb.TrimDays(days, len(plans))
	}
	return plans, perDay
}
