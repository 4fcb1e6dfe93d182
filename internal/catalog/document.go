package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"tripplanner/internal/planner"
)

//go:embed schema.json
var documentSchema []byte

var schemaLoader = gojsonschema.NewBytesLoader(documentSchema)

// FilePlace is a place as stored in places_data.json.
type FilePlace struct {
	Name              string   `json:"name"`
	Categories        []string `json:"categories"`
	ApproxCost        float64  `json:"approx_cost"`
	TimeRequiredHours float64  `json:"time_required_hours,omitempty"`
	BestFor           []string `json:"best_for,omitempty"`
	Why               string   `json:"why,omitempty"`
	StudentTip        string   `json:"student_tip,omitempty"`
	MapLink           string   `json:"map_link,omitempty"`
}

// FileCity is the value stored under each city key in places_data.json.
type FileCity struct {
	CityName         string      `json:"city_name,omitempty"`
	DefaultFocus     string      `json:"default_focus,omitempty"`
	AverageDailyCost float64     `json:"average_daily_cost"`
	GeneralTips      []string    `json:"general_tips"`
	LocalTips        []string    `json:"local_tips"`
	Places           []FilePlace `json:"places"`
}

type documentEntry struct {
	key  string
	city FileCity
}

// Document is the places_data.json object. Cities keep a case-insensitive
// name order in both directions.
type Document struct {
	entries []documentEntry
}

// ParseDocument validates data against the catalog schema and decodes it.
func ParseDocument(data []byte) (*Document, error) {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return nil, fmt.Errorf("%w: schema validation failed: %s", ErrInvalidCatalog, strings.Join(errs, "; "))
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return &doc, nil
}

func (d *Document) UnmarshalJSON(data []byte) error {
	var raw map[string]FileCity
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.entries = make([]documentEntry, 0, len(raw))
	for key, city := range raw {
		d.entries = append(d.entries, documentEntry{key: key, city: city})
	}
	sort.Slice(d.entries, func(i, j int) bool {
		a, b := foldName(d.entries[i].key), foldName(d.entries[j].key)
		if a == b {
			return d.entries[i].key < d.entries[j].key
		}
		return a < b
	})
	return nil
}

func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range d.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(e.city)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// NewDocument converts cities to the file shape, sorted by name.
func NewDocument(cities []City) *Document {
	sorted := make([]City, len(cities))
	copy(sorted, cities)
	SortCities(sorted)

	doc := &Document{entries: make([]documentEntry, 0, len(sorted))}
	for _, c := range sorted {
		name := strings.TrimSpace(c.Name)
		fc := FileCity{
			CityName:         name,
			DefaultFocus:     c.DefaultFocus,
			AverageDailyCost: c.AverageDailyCost,
			GeneralTips:      nonNil(c.GeneralTips),
			LocalTips:        nonNil(c.LocalTips),
			Places:           make([]FilePlace, 0, len(c.Places)),
		}
		for _, p := range c.Places {
			fp := FilePlace{
				Name:              p.Name,
				ApproxCost:        p.ApproxCost,
				TimeRequiredHours: p.DurationHours,
				Why:               p.Why,
				StudentTip:        p.StudentTip,
				MapLink:           p.MapLink,
			}
			for _, cat := range p.Categories {
				fp.Categories = append(fp.Categories, string(cat))
			}
			for _, t := range p.BestFor {
				fp.BestFor = append(fp.BestFor, string(t))
			}
			fc.Places = append(fc.Places, fp)
		}
		doc.entries = append(doc.entries, documentEntry{key: name, city: fc})
	}
	return doc
}

// Cities converts the document to catalog cities. Category and travel-type
// tags are matched case-insensitively; tags outside the vocabulary are
// dropped, and a place left without a category is filed under culture.
func (d *Document) Cities() []City {
	cities := make([]City, 0, len(d.entries))
	for _, e := range d.entries {
		city := City{
			Name:             e.key,
			DefaultFocus:     e.city.DefaultFocus,
			AverageDailyCost: e.city.AverageDailyCost,
			GeneralTips:      nonNil(e.city.GeneralTips),
			LocalTips:        nonNil(e.city.LocalTips),
			Places:           make([]planner.Place, 0, len(e.city.Places)),
		}
		for _, fp := range e.city.Places {
			city.Places = append(city.Places, planner.Place{
				Name:          strings.TrimSpace(fp.Name),
				City:          e.key,
				Categories:    parseCategories(fp.Categories),
				BestFor:       parseTravelTypes(fp.BestFor),
				ApproxCost:    fp.ApproxCost,
				DurationHours: fp.TimeRequiredHours,
				Why:           fp.Why,
				StudentTip:    fp.StudentTip,
				MapLink:       fp.MapLink,
			})
		}
		cities = append(cities, city)
	}
	return cities
}

func (d *Document) Len() int {
	return len(d.entries)
}

func parseCategories(raw []string) []planner.Category {
	seen := make(map[planner.Category]bool, len(raw))
	out := make([]planner.Category, 0, len(raw))
	for _, r := range raw {
		c, ok := planner.ParseCategory(r)
		if !ok || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	if len(out) == 0 {
		out = append(out, planner.CategoryCulture)
	}
	return out
}

func parseTravelTypes(raw []string) []planner.TravelType {
	var out []planner.TravelType
	for _, r := range raw {
		if t, ok := planner.ParseTravelType(r); ok {
			out = append(out, t)
		}
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
