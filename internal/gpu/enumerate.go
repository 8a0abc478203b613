// Package gpu turns raw graphics-adapter descriptors into the reportable
// device list. Enumeration is split in two: a best-effort backend that asks
// the platform for adapters, and a pure core that filters, labels, and
// orders them.
package gpu

import (
	"sort"

	"github.com/Dicklesworthstone/hostfetch/internal/model"
)

// Enumerate filters and labels raw adapters. Software rasterizers and
// unclassifiable devices are dropped without renumbering, so surviving
// device indices may have gaps. Output is sorted by device index even when
// the backend yields adapters out of order.
func Enumerate(adapters []model.Adapter) []model.GPU {
	gpus := make([]model.GPU, 0, len(adapters))
	for _, a := range adapters {
		switch a.Kind {
		case model.KindSoftware, model.KindUnknown:
			continue
		}
		gpus = append(gpus, model.GPU{
			DeviceIndex: a.Index,
			Name:        a.Name + " (" + a.Kind.Label() + ")",
		})
	}
	sort.Slice(gpus, func(i, j int) bool { return gpus[i].DeviceIndex < gpus[j].DeviceIndex })
	return gpus
}
