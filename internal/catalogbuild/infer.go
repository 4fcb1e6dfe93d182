package catalogbuild

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"tripplanner/internal/planner"
)

const (
	fallbackCost     = 300
	fallbackDuration = 3.0
)

type keywordRule struct {
	words      []string
	categories []planner.Category
}

// categoryRules are applied in order; a text can match several.
var categoryRules = []keywordRule{
	{[]string{"beach", "lake", "river", "waterfall", "hill", "mountain", "park", "garden"}, []planner.Category{planner.CategoryNature}},
	{[]string{"trek", "adventure", "paragliding", "rafting", "water sports"}, []planner.Category{planner.CategoryAdventure}},
	{[]string{"temple", "church", "mosque", "monastery", "gurudwara", "shrine"}, []planner.Category{planner.CategoryCulture, planner.CategoryHistory}},
	{[]string{"fort", "palace", "museum", "monument", "heritage"}, []planner.Category{planner.CategoryHistory, planner.CategoryCulture}},
	{[]string{"market", "bazaar", "shopping", "mall"}, []planner.Category{planner.CategoryShopping}},
	{[]string{"food", "restaurant", "dhaba", "cafe", "street food"}, []planner.Category{planner.CategoryFood}},
}

// InferCategories maps free text to vocabulary categories by keyword,
// falling back to culture.
func InferCategories(text string) []planner.Category {
	text = strings.ToLower(text)

	var out []planner.Category
	seen := map[planner.Category]bool{}
	for _, rule := range categoryRules {
		if !containsAny(text, rule.words) {
			continue
		}
		for _, c := range rule.categories {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	if len(out) == 0 {
		out = append(out, planner.CategoryCulture)
	}
	return out
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// InferCost reads the first usable fee value: a non-negative number, a
// text containing "free", or the first integer in the text.
func InferCost(values []string) float64 {
	for _, v := range values {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			if n < 0 || math.IsNaN(n) || math.IsInf(n, 0) {
				continue
			}
			return math.Trunc(n)
		}

		s := strings.ToLower(v)
		if strings.Contains(s, "free") {
			return 0
		}
		if n, ok := firstInt(s); ok {
			return float64(n)
		}
	}
	return fallbackCost
}

// InferDurationHours reads the first usable visit duration. Plain numbers
// below 24 are hours and larger ones minutes; texts mentioning "min" are
// minutes. Text values never go below one hour.
func InferDurationHours(values []string) float64 {
	for _, v := range values {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			if n <= 0 || math.IsNaN(n) || math.IsInf(n, 0) {
				continue
			}
			if n < 24 {
				return n
			}
			return n / 60
		}

		s := strings.ToLower(v)
		n, ok := firstInt(s)
		if !ok {
			continue
		}
		if strings.Contains(s, "min") {
			return math.Max(1, float64(n)/60)
		}
		return math.Max(1, float64(n))
	}
	return fallbackDuration
}

func firstInt(s string) (int, bool) {
	start := strings.IndexFunc(s, isDigit)
	if start < 0 {
		return 0, false
	}
	end := start
	for end < len(s) && isDigit(rune(s[end])) {
		end++
	}
	n, err := strconv.Atoi(s[start:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func InferWhy(descriptions []string, city string) string {
	if len(descriptions) > 0 {
		return descriptions[0]
	}
	return fmt.Sprintf("Popular place in %s visited by many tourists and students.", city)
}

func StudentTip(cost float64) string {
	switch {
	case cost == 0:
		return "Great free spot, perfect when your budget is tight."
	case cost <= 200:
		return "Low-cost place, you can easily fit this into a student budget."
	case cost <= 500:
		return "Plan this along with one or two free or low-cost spots to balance your budget."
	}
	return "Consider sharing transport and food with friends to keep the overall day cost under control."
}
