package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Dicklesworthstone/hostfetch/internal/model"
)

// Compose lays out the report as an ordered line sequence: header, separator,
// identity facts, one line per CPU group, one line per GPU, memory. CPU
// groups print in brand order so repeated runs line up; callers must not rely
// on any particular cross-group order.
func Compose(r model.Report) []string {
	lines := []string{
		r.Username + "@" + r.Hostname,
		strings.Repeat("-", len(r.Username)+len(r.Hostname)+1),
		"OS:        " + r.OS,
		"Serial:    " + r.SerialNumber,
		"Kernel:    " + r.Kernel,
		"Uptime:    " + FormatUptime(r.UptimeSeconds),
	}

	brands := make([]string, 0, len(r.CPUs))
	for brand := range r.CPUs {
		brands = append(brands, brand)
	}
	sort.Strings(brands)
	for _, brand := range brands {
		g := r.CPUs[brand]
		lines = append(lines, fmt.Sprintf("CPU:       %s - %d cores, %.2f%% avg, %.2f MHz (max)",
			brand, g.NumCores, g.AvgUsage, g.MaxFrequencyMHz))
	}

	for _, gpu := range r.GPUs {
		lines = append(lines, fmt.Sprintf("GPU %s:   %s", padIndex(gpu.DeviceIndex, 3), gpu.Name))
	}

	lines = append(lines, fmt.Sprintf("Memory:    %d/%d MB used", r.MemoryUsedMB, r.MemoryTotalMB))
	return lines
}

// padIndex right-aligns n to width with '.' fill, e.g. 0 -> "..0".
func padIndex(n, width int) string {
	s := strconv.Itoa(n)
	for len(s) < width {
		s = "." + s
	}
	return s
}
