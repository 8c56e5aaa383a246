package optimizer

import (
	"math/rand"
	"testing"

	"github.com/jonathan/troop-optimizer/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestMaxAffordable(t *testing.T) {
	tests := []struct {
		name      string
		available types.Resources
		cost      types.Resources
		want      int
	}{
		{
			name:      "uniform",
			available: types.NewResources(1000, 1000, 1000, 1000),
			cost:      types.NewResources(100, 100, 100, 100),
			want:      10,
		},
		{
			name:      "bottleneck kind decides",
			available: types.NewResources(5500, 3900, 7100, 3000),
			cost:      types.NewResources(555, 445, 330, 110),
			want:      8, // clay: 3900/445
		},
		{
			name:      "zero cost kinds ignored",
			available: types.NewResources(0, 0, 0, 95),
			cost:      types.NewResources(0, 0, 0, 10),
			want:      9,
		},
		{
			name:      "scarce crop",
			available: types.NewResources(1000, 1000, 1000, 10),
			cost:      types.NewResources(100, 100, 100, 35),
			want:      0,
		},
		{
			name:      "free unit",
			available: types.NewResources(1000, 1000, 1000, 1000),
			cost:      types.Resources{},
			want:      0,
		},
		{
			name:      "non-positive cost",
			available: types.NewResources(1000, 1000, 1000, 1000),
			cost:      types.NewResources(-5, 0, -1, 0),
			want:      0,
		},
		{
			name:      "negative budget floors",
			available: types.NewResources(-5, 100, 100, 100),
			cost:      types.NewResources(10, 10, 10, 10),
			want:      -1,
		},
		{
			name:      "empty budget",
			available: types.Resources{},
			cost:      types.NewResources(1, 1, 1, 1),
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaxAffordable(tt.available, tt.cost))
		})
	}
}

func TestMaxAffordable_IsLargestFeasibleCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		budget := types.NewResources(rng.Int63n(10000), rng.Int63n(10000), rng.Int63n(10000), rng.Int63n(10000))
		cost := types.NewResources(rng.Int63n(300), rng.Int63n(300), rng.Int63n(300), rng.Int63n(300))
		if cost.Total() == 0 {
			cost.Crop = 1
		}

		m := MaxAffordable(budget, cost)
		assert.GreaterOrEqual(t, m, 0)
		assert.False(t, budget.Sub(cost.Scale(m)).IsInfeasible(), "budget=%s cost=%s m=%d", budget, cost, m)
		assert.True(t, budget.Sub(cost.Scale(m+1)).IsInfeasible(), "budget=%s cost=%s m=%d", budget, cost, m)
	}
}

func TestMaxAffordable_NonPositiveCostIsZero(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		budget := types.NewResources(rng.Int63n(20000)-10000, rng.Int63n(20000), rng.Int63n(20000), rng.Int63n(20000))
		cost := types.NewResources(-rng.Int63n(50), -rng.Int63n(50), 0, -rng.Int63n(50))
		assert.Equal(t, 0, MaxAffordable(budget, cost))
	}
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, int64(3), floorDiv(7, 2))
	assert.Equal(t, int64(-4), floorDiv(-7, 2))
	assert.Equal(t, int64(-1), floorDiv(-5, 10))
	assert.Equal(t, int64(-2), floorDiv(-20, 10))
	assert.Equal(t, int64(0), floorDiv(0, 10))
}
