package collector

import (
	"time"

	"github.com/shirou/gopsutil/v3/cpu"

	"sysglance/internal/model"
)

func collectCPU(settle time.Duration) model.CPUInfo {
	var name string
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		name = infos[0].ModelName
	}

	// cpu.Percent with a positive interval takes a sample, sleeps for the
	// settle window, then takes the second sample the delta needs.
	perCore, err := cpu.Percent(settle, true)
	if err != nil || len(perCore) == 0 {
		count, _ := cpu.Counts(true)
		perCore = make([]float64, count)
	}

	return cpuInfoFrom(name, perCore)
}

// cpuInfoFrom shapes the per-core samples into the output entity. The
// aggregate is the mean over cores, and core count always matches the
// per-core slice length.
func cpuInfoFrom(name string, perCore []float64) model.CPUInfo {
	var sum float64
	for _, u := range perCore {
		sum += u
	}

	usage := 0.0
	if len(perCore) > 0 {
		usage = sum / float64(len(perCore))
	}

	return model.CPUInfo{
		Name:         name,
		UsagePercent: usage,
		CoreCount:    len(perCore),
		PerCoreUsage: perCore,
	}
}
