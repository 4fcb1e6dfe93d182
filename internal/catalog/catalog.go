// Package catalog holds the read-only place catalog the planner runs
// against, the sources it is loaded from, and the store that swaps it
// atomically on reload.
package catalog

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/google/uuid"
	"tripplanner/internal/planner"
)

// City is one catalog entry with its display metadata.
type City struct {
	Name             string          `json:"name"`
	DefaultFocus     string          `json:"default_focus"`
	AverageDailyCost float64         `json:"average_daily_cost"`
	GeneralTips      []string        `json:"general_tips"`
	LocalTips        []string        `json:"local_tips"`
	Places           []planner.Place `json:"places"`
}

// Catalog is immutable once built. Callers must not modify slices it returns.
type Catalog struct {
	version string
	cities  []City
	index   map[string]int
	places  int
}

// NewCatalog validates cities and builds the lookup index. Each place gets
// its City field set to the owning city.
func NewCatalog(cities []City) (*Catalog, error) {
	c := &Catalog{
		cities: make([]City, len(cities)),
		index:  make(map[string]int, len(cities)),
	}

	for i, city := range cities {
		city.Name = strings.TrimSpace(city.Name)
		if err := validateCity(city); err != nil {
			return nil, err
		}
		key := foldName(city.Name)
		if _, dup := c.index[key]; dup {
			return nil, invalidf("duplicate city %q", city.Name)
		}

		places := make([]planner.Place, len(city.Places))
		for j, p := range city.Places {
			p.City = city.Name
			places[j] = p
		}
		city.Places = places

		c.cities[i] = city
		c.index[key] = i
		c.places += len(places)
	}

	raw, err := json.Marshal(c.cities)
	if err != nil {
		return nil, err
	}
	c.version = uuid.NewSHA1(uuid.NameSpaceOID, raw).String()
	return c, nil
}

func foldName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Version is derived from the catalog content; equal content gives an
// equal version.
func (c *Catalog) Version() string {
	return c.version
}

func (c *Catalog) Cities() []City {
	return c.cities
}

func (c *Catalog) City(name string) (City, bool) {
	i, ok := c.index[foldName(name)]
	if !ok {
		return City{}, false
	}
	return c.cities[i], true
}

// CityPlaces implements planner.CatalogView.
func (c *Catalog) CityPlaces(name string) (string, []planner.Place, bool) {
	city, ok := c.City(name)
	if !ok {
		return "", nil, false
	}
	return city.Name, city.Places, true
}

func (c *Catalog) PlaceCount() int {
	return c.places
}

// CategoryCount is how many places carry a category across the catalog.
type CategoryCount struct {
	Category planner.Category `json:"category"`
	Places   int              `json:"places"`
}

// CategoryCounts lists every vocabulary category, including unused ones,
// in vocabulary order.
func (c *Catalog) CategoryCounts() []CategoryCount {
	counts := make(map[planner.Category]int, len(planner.Categories))
	for _, city := range c.cities {
		for _, p := range city.Places {
			for _, cat := range p.Categories {
				counts[cat]++
			}
		}
	}

	out := make([]CategoryCount, 0, len(planner.Categories))
	for _, cat := range planner.Categories {
		out = append(out, CategoryCount{Category: cat, Places: counts[cat]})
	}
	return out
}

// SortCities orders cities case-insensitively by name.
func SortCities(cities []City) {
	sort.SliceStable(cities, func(i, j int) bool {
		return foldName(cities[i].Name) < foldName(cities[j].Name)
	})
}
