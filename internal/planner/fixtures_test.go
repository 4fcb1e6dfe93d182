package planner

import "fmt"

func place(name string, cost float64, cats []Category, bestFor ...TravelType) Place {
	return Place{
		Name:       name,
		City:       "Goa",
		Categories: cats,
		BestFor:    bestFor,
		ApproxCost: cost,
	}
}

// goaPlaces has ten places open to solo travellers and two friends-only
// places. Nothing in it is tagged adventure.
func goaPlaces() []Place {
	return []Place{
		place("Baga Beach", 0, []Category{CategoryNature}, TravelSolo, TravelFriends),
		place("Fort Aguada", 50, []Category{CategoryHistory, CategoryCulture}, TravelAny),
		place("Basilica of Bom Jesus", 0, []Category{CategoryCulture, CategoryHistory}),
		place("Anjuna Flea Market", 200, []Category{CategoryShopping}, TravelSolo, TravelFriends),
		place("Dudhsagar Falls", 400, []Category{CategoryNature}, TravelSolo, TravelFriends),
		place("Fontainhas", 0, []Category{CategoryCulture}, TravelSolo),
		place("Mapusa Market", 100, []Category{CategoryShopping, CategoryFood}, TravelAny),
		place("Chapora Fort", 0, []Category{CategoryHistory}, TravelSolo, TravelFriends),
		place("Spice Plantation", 500, []Category{CategoryNature, CategoryFood}, TravelSolo),
		place("Goa State Museum", 20, []Category{CategoryHistory, CategoryCulture}, TravelSolo),
		place("Club Cubana", 1500, []Category{CategoryFood}, TravelFriends),
		place("Casino Cruise", 2500, []Category{CategoryFood}, TravelFriends),
	}
}

func goaCatalog() CityMap {
	return CityMap{"Goa": goaPlaces()}
}

func bigCatalog(n int) CityMap {
	places := make([]Place, 0, n)
	for i := 0; i < n; i++ {
		cats := []Category{Categories[i%len(Categories)]}
		places = append(places, place(fmt.Sprintf("Spot %02d", i), float64((i*37)%11)*50, cats, TravelAny))
	}
	return CityMap{"Jaipur": places}
}

func names(places []Place) []string {
	out := make([]string, len(places))
	for i, p := range places {
		out[i] = p.Name
	}
	return out
}

func warningCodes(ws []Warning) []WarningCode {
	out := make([]WarningCode, len(ws))
	for i, w := range ws {
		out[i] = w.Code
	}
	return out
}
