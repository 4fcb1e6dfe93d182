package catalogbuild

import (
	"fmt"
	"io"
	"strings"
)

// LoadTravelCosts reads the accommodation-cost CSV and returns the lowest
// positive per-night cost found for each city. A cost cell may be a range
// such as "500 - 3,000"; its lowest number counts. Commas are read as
// thousands separators.
func LoadTravelCosts(r io.Reader) (map[string]int, error) {
	t, err := ReadTable(r)
	if err != nil {
		return nil, err
	}
	if !t.Has("City") {
		return nil, fmt.Errorf("%w: City", ErrColumnNotFound)
	}
	costCol, ok := t.Pick(accommodationCostColumns...)
	if !ok {
		return nil, fmt.Errorf("%w: accommodation cost", ErrColumnNotFound)
	}

	costs := make(map[string]int)
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)
		city := row.Get("City")
		if city == "" {
			continue
		}
		cost, ok := lowestInt(row.Get(costCol))
		if !ok || cost <= 0 {
			continue
		}
		if prev, seen := costs[city]; !seen || cost < prev {
			costs[city] = cost
		}
	}
	return costs, nil
}

func lowestInt(text string) (int, bool) {
	text = strings.ReplaceAll(text, ",", "")
	lowest, found := 0, false
	for text != "" {
		n, ok := firstInt(text)
		if !ok {
			break
		}
		if !found || n < lowest {
			lowest, found = n, true
		}
		// skip past the number just read
		i := strings.IndexFunc(text, isDigit)
		for i < len(text) && isDigit(rune(text[i])) {
			i++
		}
		text = text[i:]
	}
	return lowest, found
}
