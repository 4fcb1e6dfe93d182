package planner

// FilterPlaces keeps the places that suit the travel type and share at
// least one category with interests. Empty interests keep every
// type-matching place. When a stage would leave nothing, fb widens it, so
// a non-empty city never produces an empty candidate set. Catalog order
// is preserved.
func FilterPlaces(places []Place, interests []Category, travelType TravelType, fb *FallbackPolicy) []Place {
	if len(places) == 0 {
		return nil
	}

	typed := make([]Place, 0, len(places))
	for _, p := range places {
		if p.AcceptsTravelType(travelType) {
			typed = append(typed, p)
		}
	}
	if len(typed) == 0 {
		typed = fb.WidenTravelType(travelType, places)
	}

	if len(interests) == 0 {
		return typed
	}

	matched := make([]Place, 0, len(typed))
	for _, p := range typed {
		if p.HasAnyCategory(interests) {
			matched = append(matched, p)
		}
	}
	if len(matched) == 0 {
		return fb.WidenInterests(interests, typed)
	}
	return matched
}
