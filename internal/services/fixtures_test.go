package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"tripplanner/internal/catalog"
	"tripplanner/internal/planner"
)

func place(name string, cost float64, cats ...planner.Category) planner.Place {
	return planner.Place{
		Name:          name,
		Categories:    cats,
		BestFor:       []planner.TravelType{planner.TravelSolo, planner.TravelFriends},
		ApproxCost:    cost,
		DurationHours: 2,
		Why:           name + " is worth a visit",
		StudentTip:    "Go early",
	}
}

func jaipurCity() catalog.City {
	city := catalog.City{
		Name:             "Jaipur",
		DefaultFocus:     "history, culture",
		AverageDailyCost: 1000,
		GeneralTips:      []string{"Carry water"},
		LocalTips:        []string{"Bargain in the bazaars"},
	}
	for i := 0; i < 9; i++ {
		cat := planner.CategoryHistory
		if i%3 == 0 {
			cat = planner.CategoryFood
		}
		city.Places = append(city.Places, place(fmt.Sprintf("Spot %d", i+1), float64(50*(i+1)), cat))
	}
	city.Places[0].MapLink = "https://maps.example.com/spot-1"
	return city
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.NewCatalog([]catalog.City{jaipurCity()})
	require.NoError(t, err)
	return c
}

type fakeStore struct {
	current   *catalog.Catalog
	reloadErr error
	next      *catalog.Catalog
	reloads   int
}

func (f *fakeStore) Current() (*catalog.Catalog, error) {
	if f.current == nil {
		return nil, catalog.ErrNotLoaded
	}
	return f.current, nil
}

func (f *fakeStore) Reload(ctx context.Context) (*catalog.Catalog, error) {
	f.reloads++
	if f.reloadErr != nil {
		return nil, f.reloadErr
	}
	f.current = f.next
	return f.next, nil
}

func (f *fakeStore) SourceName() string { return "fake" }

type failingCache struct{ sets int }

func (f *failingCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("connection refused")
}

func (f *failingCache) Set(context.Context, string, []byte) error {
	f.sets++
	return errors.New("connection refused")
}

func (f *failingCache) Backend() string { return "broken" }

func catalogOf(cities ...catalog.City) (*catalog.Catalog, error) {
	return catalog.NewCatalog(cities)
}
