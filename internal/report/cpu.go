package report

import "github.com/Dicklesworthstone/hostfetch/internal/model"

// GroupCPUs folds per-core samples into per-brand groups. Brands are
// compared byte-for-byte, with no trimming or case folding: two spellings of
// the same model name stay separate groups. Empty input yields an empty map.
func GroupCPUs(samples []model.CPUSample) map[string]model.CPUGroup {
	groups := make(map[string]model.CPUGroup)
	for _, s := range samples {
		g := groups[s.Brand]
		g.NumCores++
		g.AvgUsage += s.UsagePercent
		if s.FrequencyMHz > g.MaxFrequencyMHz {
			g.MaxFrequencyMHz = s.FrequencyMHz
		}
		groups[s.Brand] = g
	}
	for brand, g := range groups {
		g.AvgUsage /= float64(g.NumCores)
		groups[brand] = g
	}
	return groups
}
