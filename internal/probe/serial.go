package probe

import (
	"os"
	"os/exec"
	"strings"
)

// serialFallback stands in when no machine serial is readable. Expected on
// unprivileged runs and most virtual machines.
const serialFallback = "xxxxxxxxxx"

var dmiSerialPaths = []string{
	"/sys/devices/virtual/dmi/id/product_serial",
	"/sys/devices/virtual/dmi/id/board_serial",
	"/sys/devices/virtual/dmi/id/chassis_serial",
}

// SerialNumber reads the machine serial from DMI sysfs, then dmidecode,
// then falls back to a fixed placeholder. Never fails.
func SerialNumber() string {
	for _, path := range dmiSerialPaths {
		if v := readDMIFile(path); isUsefulDMIValue(v) {
			return v
		}
	}
	if v := dmidecodeSerial(); isUsefulDMIValue(v) {
		return v
	}
	return serialFallback
}

func readDMIFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// isUsefulDMIValue rejects the junk placeholders firmware vendors leave in
// unset DMI fields.
func isUsefulDMIValue(value string) bool {
	if value == "" {
		return false
	}
	lower := strings.ToLower(value)
	if lower == "unknown" || lower == "none" || lower == "default string" {
		return false
	}
	return !strings.Contains(lower, "to be filled")
}

func dmidecodeSerial() string {
	for _, bin := range []string{"dmidecode", "/usr/sbin/dmidecode", "/sbin/dmidecode"} {
		out, err := exec.Command(bin, "-s", "system-serial-number").Output()
		if err != nil {
			continue
		}
		return strings.TrimSpace(string(out))
	}
	return ""
}
