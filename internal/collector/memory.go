package collector

import (
	"github.com/shirou/gopsutil/v3/mem"

	"sysglance/internal/model"
)

func collectMemory() model.MemoryInfo {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return model.MemoryInfo{}
	}
	return memoryInfoFrom(vm.Total, vm.Used)
}

func memoryInfoFrom(total, used uint64) model.MemoryInfo {
	totalGB := toGB(total)
	usedGB := toGB(used)
	return model.MemoryInfo{
		TotalGB:      totalGB,
		UsedGB:       usedGB,
		UsagePercent: percentOf(usedGB, totalGB),
	}
}
