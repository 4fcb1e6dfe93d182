package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateCapacity(t *testing.T) {
	tests := []struct {
		name       string
		candidates int
		requested  int
		minPerDay  int
		wantMax    int
		wantDays   int
		shortened  bool
	}{
		{name: "ten places, three per day", candidates: 10, requested: 5, minPerDay: 3, wantMax: 3, wantDays: 3, shortened: true},
		{name: "request fits", candidates: 10, requested: 2, minPerDay: 3, wantMax: 3, wantDays: 2},
		{name: "exact fit", candidates: 9, requested: 3, minPerDay: 3, wantMax: 3, wantDays: 3},
		{name: "single place still gives a day", candidates: 1, requested: 4, minPerDay: 3, wantMax: 1, wantDays: 1, shortened: true},
		{name: "fewer than min per day", candidates: 2, requested: 1, minPerDay: 3, wantMax: 1, wantDays: 1},
		{name: "two per day", candidates: 7, requested: 7, minPerDay: 2, wantMax: 3, wantDays: 3, shortened: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := NewFallbackPolicy()
			policy := Policy{MinPlacesPerDay: tt.minPerDay, MaxPlacesPerDay: tt.minPerDay}

			got, err := EstimateCapacity(tt.candidates, tt.requested, policy, fb)
			require.NoError(t, err)

			assert.Equal(t, tt.wantMax, got.MaxDays)
			assert.Equal(t, tt.wantDays, got.ResolvedDays)
			assert.LessOrEqual(t, got.ResolvedDays, tt.requested)
			if tt.shortened {
				require.Len(t, fb.Warnings(), 1)
				assert.Equal(t, WarnTripShortened, fb.Warnings()[0].Code)
			} else {
				assert.Empty(t, fb.Warnings())
			}
		})
	}
}

func TestEstimateCapacity_NoCandidates(t *testing.T) {
	_, err := EstimateCapacity(0, 3, DefaultPolicy(), NewFallbackPolicy())
	assert.ErrorIs(t, err, ErrNoDataForCity)
}
