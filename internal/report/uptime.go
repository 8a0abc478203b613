package report

import "fmt"

// FormatUptime renders a seconds count as a compact duration string. The
// seconds component is dropped; sub-minute uptimes render as "0m".
func FormatUptime(seconds uint64) string {
	days := seconds / 86400
	hours := seconds / 3600 % 24
	minutes := seconds / 60 % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
