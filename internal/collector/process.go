package collector

import (
	"sort"

	ps "github.com/mitchellh/go-ps"
	"github.com/shirou/gopsutil/v3/process"

	"sysglance/internal/model"
)

func collectTopProcesses(n int) []model.ProcessInfo {
	procs, err := process.Processes()
	if err != nil {
		return []model.ProcessInfo{}
	}

	fallbackNames := executableNames()

	infos := make([]model.ProcessInfo, 0, len(procs))
	for _, p := range procs {
		name, err := p.Name()
		if err != nil || name == "" {
			name = fallbackNames[int(p.Pid)]
		}

		cpuPct, _ := p.CPUPercent()

		var memMB float64
		if mi, err := p.MemoryInfo(); err == nil && mi != nil {
			memMB = toMB(mi.RSS)
		}

		infos = append(infos, model.ProcessInfo{
			Name:            name,
			PID:             uint32(p.Pid),
			CPUUsagePercent: cpuPct,
			MemoryMB:        memMB,
		})
	}

	return rankTop(infos, n)
}

// executableNames lists pid -> executable for processes whose name the
// primary handle cannot read (e.g. permission-restricted /proc entries).
func executableNames() map[int]string {
	listed, err := ps.Processes()
	if err != nil {
		return nil
	}
	names := make(map[int]string, len(listed))
	for _, p := range listed {
		names[p.Pid()] = p.Executable()
	}
	return names
}

// rankTop orders by descending CPU usage and truncates to at most n entries.
// The comparison treats any unorderable pair (NaN involved) as equal, so
// ranking never faults on undefined usage values.
func rankTop(infos []model.ProcessInfo, n int) []model.ProcessInfo {
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].CPUUsagePercent > infos[j].CPUUsagePercent
	})
	if len(infos) > n {
		infos = infos[:n]
	}
	return infos
}
