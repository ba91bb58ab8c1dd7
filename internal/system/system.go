// Package system reports host resources at startup.
package system

import (
	"runtime"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Report describes the host the server is running on.
type Report struct {
	LogicalCPUs   int
	TotalMemoryMB uint64
	UsedMemoryPct float64
	GoMaxProcs    int
}

// Snapshot collects a host resource report. Probe failures degrade to
// runtime-only information rather than failing startup.
func Snapshot() Report {
	r := Report{
		LogicalCPUs: runtime.NumCPU(),
		GoMaxProcs:  runtime.GOMAXPROCS(0),
	}

	if count, err := cpu.Counts(true); err == nil {
		r.LogicalCPUs = count
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		r.TotalMemoryMB = vm.Total / (1024 * 1024)
		r.UsedMemoryPct = vm.UsedPercent
	}
	return r
}

// Log writes the report through the given logger.
func (r Report) Log(log zerolog.Logger) {
	log.Info().
		Int("cpus", r.LogicalCPUs).
		Int("gomaxprocs", r.GoMaxProcs).
		Uint64("memory_total_mb", r.TotalMemoryMB).
		Float64("memory_used_pct", r.UsedMemoryPct).
		Msg("host resources")
}
