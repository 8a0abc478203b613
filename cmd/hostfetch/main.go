package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/Dicklesworthstone/hostfetch/internal/config"
	"github.com/Dicklesworthstone/hostfetch/internal/gpu"
	"github.com/Dicklesworthstone/hostfetch/internal/model"
	"github.com/Dicklesworthstone/hostfetch/internal/probe"
	"github.com/Dicklesworthstone/hostfetch/internal/report"
	"github.com/Dicklesworthstone/hostfetch/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.FromEnv()

	level := zerolog.WarnLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().Level(level)

	if !probe.Supported() {
		fmt.Println("System not supported. Aborting.")
		return 1
	}

	facts := probe.Collect(logger)
	rep := model.Report{
		Username:      facts.Username,
		Hostname:      facts.Hostname,
		OS:            facts.OS,
		SerialNumber:  probe.SerialNumber(),
		Kernel:        facts.Kernel,
		UptimeSeconds: facts.UptimeSeconds,
		CPUs:          report.GroupCPUs(facts.CPUs),
		GPUs:          gpu.Enumerate(gpu.Probe(logger)),
		MemoryUsedMB:  facts.MemoryUsedMB,
		MemoryTotalMB: facts.MemoryTotalMB,
	}

	ui.Render(os.Stdout, report.Compose(rep), cfg.NoColor)
	return 0
}
