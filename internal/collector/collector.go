package collector

import (
	"time"

	"sysglance/internal/model"
)

const (
	bytesPerGB = 1024 * 1024 * 1024
	bytesPerMB = 1024 * 1024
)

// DefaultSettle is the pause between the two CPU usage samples. Usage
// percentages are deltas, so reading them without this window yields a
// meaningless first value.
const DefaultSettle = 200 * time.Millisecond

// DefaultTopProcesses bounds the ranked process list.
const DefaultTopProcesses = 10

// Collector produces one-shot host snapshots. It holds no provider state
// between calls; every Snapshot acquires and releases its own handles, so a
// Collector is safe for concurrent use.
type Collector struct {
	settle time.Duration
	topN   int
}

func New(settle time.Duration, topN int) *Collector {
	if settle <= 0 {
		settle = DefaultSettle
	}
	if topN <= 0 {
		topN = DefaultTopProcesses
	}
	return &Collector{settle: settle, topN: topN}
}

// Snapshot gathers all domains into one aggregate. It never fails: a domain
// that cannot be read contributes zero/empty values instead. The call blocks
// for the settle window while CPU usage is sampled.
func (c *Collector) Snapshot() *model.FullSystemInfo {
	return &model.FullSystemInfo{
		Overview:     collectOverview(),
		CPU:          collectCPU(c.settle),
		Memory:       collectMemory(),
		Disks:        collectDisks(),
		Networks:     collectNetworks(),
		Temperatures: collectTemperatures(),
		TopProcesses: collectTopProcesses(c.topN),
	}
}

func toGB(bytes uint64) float64 {
	return float64(bytes) / bytesPerGB
}

func toMB(bytes uint64) float64 {
	return float64(bytes) / bytesPerMB
}

// percentOf guards the zero-denominator case so ratios never become NaN.
func percentOf(used, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return used / total * 100
}
