package model

// CPUSample is one logical core's reading as supplied by the host probe.
type CPUSample struct {
	Brand        string  // processor model string, exact as reported
	UsagePercent float64 // percent over the sampling window
	FrequencyMHz float64
}

// CPUGroup summarizes all logical cores sharing one brand string.
type CPUGroup struct {
	NumCores        int
	AvgUsage        float64 // percent
	MaxFrequencyMHz float64
}

// DeviceKind classifies a graphics adapter.
type DeviceKind int

const (
	KindUnknown DeviceKind = iota
	KindIntegrated
	KindDiscrete
	KindVirtual
	KindSoftware // software rasterizer
)

// Label returns the parenthetical suffix used in report lines. Kinds that
// are filtered out before display have no label.
func (k DeviceKind) Label() string {
	switch k {
	case KindIntegrated:
		return "Integrated GPU"
	case KindDiscrete:
		return "Discrete GPU"
	case KindVirtual:
		return "Virtual GPU"
	}
	return ""
}

// Adapter is a raw descriptor from the graphics backend. Index is the
// position in the backend's enumeration order.
type Adapter struct {
	Index int
	Name  string
	Kind  DeviceKind
}

// GPU is one reportable graphics device. DeviceIndex keeps the original
// enumeration position, so filtered-out adapters leave gaps.
type GPU struct {
	DeviceIndex int
	Name        string
}

// Report is the full host snapshot handed to the composer. Built once at
// startup, rendered once, then discarded.
type Report struct {
	Username      string
	Hostname      string
	OS            string
	SerialNumber  string
	Kernel        string
	UptimeSeconds uint64
	CPUs          map[string]CPUGroup
	GPUs          []GPU
	MemoryUsedMB  uint64
	MemoryTotalMB uint64
}
