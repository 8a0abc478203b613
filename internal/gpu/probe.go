package gpu

import (
	"bufio"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Dicklesworthstone/hostfetch/internal/model"
)

// Probe asks lspci for display-class devices. Best effort: a missing lspci,
// a timeout, or unparseable output all yield an empty adapter list rather
// than an error.
func Probe(logger zerolog.Logger) []model.Adapter {
	out, err := runCmd(2*time.Second, "lspci", "-mm")
	if err != nil {
		logger.Debug().Err(err).Msg("lspci unavailable, no GPU adapters")
		return nil
	}
	return parseAdapters(out)
}

// parseAdapters reads lspci -mm output. Each line carries a slot followed by
// quoted fields: class, vendor, device, then subsystem fields. Adapter index
// is the position among display-class rows.
func parseAdapters(out string) []model.Adapter {
	var adapters []model.Adapter
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		fields := splitQuoted(sc.Text())
		if len(fields) < 3 || !isDisplayClass(fields[0]) {
			continue
		}
		vendor, device := fields[1], fields[2]
		adapters = append(adapters, model.Adapter{
			Index: len(adapters),
			Name:  strings.TrimSpace(vendor + " " + device),
			Kind:  classifyVendor(vendor),
		})
	}
	return adapters
}

// splitQuoted returns the quoted fields of one lspci -mm line in order; the
// unquoted slot prefix and option flags are skipped.
func splitQuoted(line string) []string {
	var fields []string
	for {
		start := strings.IndexByte(line, '"')
		if start < 0 {
			break
		}
		line = line[start+1:]
		end := strings.IndexByte(line, '"')
		if end < 0 {
			break
		}
		fields = append(fields, line[:end])
		line = line[end+1:]
	}
	return fields
}

func isDisplayClass(class string) bool {
	return strings.Contains(class, "VGA") ||
		strings.Contains(class, "3D controller") ||
		strings.Contains(class, "Display controller")
}

// classifyVendor maps a PCI vendor string to a device kind. Hypervisor
// vendors are checked first since e.g. VMware adapters also carry VGA class
// codes. Unrecognized vendors stay unknown and get filtered downstream.
func classifyVendor(vendor string) model.DeviceKind {
	switch {
	case containsAny(vendor, "VMware", "Virtio", "Red Hat", "Bochs", "Microsoft", "Parallels", "InnoTek", "Oracle"):
		return model.KindVirtual
	case strings.Contains(vendor, "Intel"):
		return model.KindIntegrated
	case containsAny(vendor, "NVIDIA", "Advanced Micro Devices", "AMD", "ATI"):
		return model.KindDiscrete
	}
	return model.KindUnknown
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func runCmd(timeout time.Duration, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if ctx.Err() == context.DeadlineExceeded {
		return "", ctx.Err()
	}
	return string(out), err
}
