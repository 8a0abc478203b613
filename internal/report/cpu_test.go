package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dicklesworthstone/hostfetch/internal/model"
)

func TestGroupCPUsEmpty(t *testing.T) {
	groups := GroupCPUs(nil)
	require.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestGroupCPUsSingleton(t *testing.T) {
	groups := GroupCPUs([]model.CPUSample{
		{Brand: "Model X", UsagePercent: 37.5, FrequencyMHz: 2400},
	})
	require.Len(t, groups, 1)
	g := groups["Model X"]
	assert.Equal(t, 1, g.NumCores)
	assert.Equal(t, 37.5, g.AvgUsage)
	assert.Equal(t, 2400.0, g.MaxFrequencyMHz)
}

func TestGroupCPUsAveragesAndMax(t *testing.T) {
	groups := GroupCPUs([]model.CPUSample{
		{Brand: "Model X", UsagePercent: 10, FrequencyMHz: 2000},
		{Brand: "Model X", UsagePercent: 30, FrequencyMHz: 3000},
		{Brand: "Model X", UsagePercent: 50, FrequencyMHz: 2500},
		{Brand: "Model Y", UsagePercent: 80, FrequencyMHz: 1800},
	})
	require.Len(t, groups, 2)

	x := groups["Model X"]
	assert.Equal(t, 3, x.NumCores)
	assert.InDelta(t, 30.0, x.AvgUsage, 1e-9)
	assert.Equal(t, 3000.0, x.MaxFrequencyMHz)

	y := groups["Model Y"]
	assert.Equal(t, 1, y.NumCores)
	assert.Equal(t, 80.0, y.AvgUsage)
	assert.Equal(t, 1800.0, y.MaxFrequencyMHz)
}

// Core counts are conserved: every sample lands in exactly one group.
func TestGroupCPUsCoreConservation(t *testing.T) {
	samples := []model.CPUSample{
		{Brand: "A", UsagePercent: 1},
		{Brand: "B", UsagePercent: 2},
		{Brand: "A", UsagePercent: 3},
		{Brand: "C", UsagePercent: 4},
		{Brand: "B", UsagePercent: 5},
		{Brand: "A", UsagePercent: 6},
	}
	groups := GroupCPUs(samples)
	total := 0
	for _, g := range groups {
		total += g.NumCores
	}
	assert.Equal(t, len(samples), total)
}

// Brand strings group by exact bytes: capitalization and whitespace
// variants stay separate.
func TestGroupCPUsExactBrandMatch(t *testing.T) {
	groups := GroupCPUs([]model.CPUSample{
		{Brand: "Model X", UsagePercent: 10},
		{Brand: "model x", UsagePercent: 20},
		{Brand: "Model X ", UsagePercent: 30},
	})
	assert.Len(t, groups, 3)
	assert.Equal(t, 1, groups["Model X"].NumCores)
	assert.Equal(t, 1, groups["model x"].NumCores)
	assert.Equal(t, 1, groups["Model X "].NumCores)
}
