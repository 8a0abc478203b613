// Package probe reads host facts in one pass: identity, kernel, uptime,
// memory, and per-core CPU samples. Missing optional facts resolve to
// documented fallbacks here so downstream transforms never see errors.
package probe

import (
	"os"
	"os/user"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/Dicklesworthstone/hostfetch/internal/model"
)

// settleInterval is the minimum sampling window for CPU utilization; an
// instantaneous read has no elapsed delta to compute usage from.
const settleInterval = 200 * time.Millisecond

// Facts carries everything read from the host in one collection pass.
type Facts struct {
	Username      string
	Hostname      string
	OS            string
	Kernel        string
	UptimeSeconds uint64
	MemoryUsedMB  uint64
	MemoryTotalMB uint64
	CPUs          []model.CPUSample
}

// Supported reports whether the host platform is one the underlying queries
// can answer on.
func Supported() bool {
	switch runtime.GOOS {
	case "linux", "darwin", "windows", "freebsd", "openbsd", "solaris":
		return true
	}
	return false
}

// Collect reads all host facts. It blocks for the CPU settling window.
func Collect(logger zerolog.Logger) Facts {
	facts := Facts{
		Username: username(),
		Hostname: hostname(logger),
	}

	if info, err := host.Info(); err == nil {
		facts.OS = osName(info)
		facts.Kernel = info.KernelVersion
		facts.UptimeSeconds = info.Uptime
	} else {
		logger.Debug().Err(err).Msg("host info unavailable")
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		facts.MemoryUsedMB = vm.Used / 1024 / 1024
		facts.MemoryTotalMB = vm.Total / 1024 / 1024
	} else {
		logger.Debug().Err(err).Msg("memory info unavailable")
	}

	facts.CPUs = cpuSamples(logger)
	return facts
}

// cpuSamples pairs per-core utilization with per-core model info. Percent
// blocks for the settling window so the usage delta covers a real interval.
func cpuSamples(logger zerolog.Logger) []model.CPUSample {
	percents, err := cpu.Percent(settleInterval, true)
	if err != nil {
		logger.Debug().Err(err).Msg("cpu utilization unavailable")
		return nil
	}
	infos, err := cpu.Info()
	if err != nil {
		logger.Debug().Err(err).Msg("cpu info unavailable")
		infos = nil
	}

	samples := make([]model.CPUSample, 0, len(percents))
	for i, pct := range percents {
		sample := model.CPUSample{UsagePercent: pct}
		if len(infos) > 0 {
			// Linux reports one entry per logical core; some platforms
			// report a single summary entry for the whole package.
			info := infos[0]
			if i < len(infos) {
				info = infos[i]
			}
			sample.Brand = info.ModelName
			sample.FrequencyMHz = info.Mhz
		}
		samples = append(samples, sample)
	}
	return samples
}

func username() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if v := os.Getenv("USER"); v != "" {
		return v
	}
	return "unknown"
}

func hostname(logger zerolog.Logger) string {
	name, err := os.Hostname()
	if err != nil || name == "" {
		logger.Debug().Err(err).Msg("hostname lookup failed")
		return "unknown"
	}
	return name
}

func osName(info *host.InfoStat) string {
	name := strings.TrimSpace(info.Platform + " " + info.PlatformVersion)
	if name == "" {
		return info.OS
	}
	return name
}
