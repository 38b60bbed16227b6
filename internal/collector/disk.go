package collector

import (
	"github.com/shirou/gopsutil/v3/disk"

	"sysglance/internal/model"
)

func collectDisks() []model.DiskInfo {
	parts, err := disk.Partitions(false)
	if err != nil {
		return []model.DiskInfo{}
	}

	disks := make([]model.DiskInfo, 0, len(parts))
	for _, p := range parts {
		usage, err := disk.Usage(p.Mountpoint)
		if err != nil {
			continue
		}
		disks = append(disks, diskInfoFrom(p.Device, p.Mountpoint, p.Fstype, usage.Total, usage.Free))
	}
	return disks
}

// diskInfoFrom derives used space from total minus available so the three
// sizes always reconcile, and reports 0% usage for zero-sized filesystems.
func diskInfoFrom(name, mount, fstype string, total, free uint64) model.DiskInfo {
	totalGB := toGB(total)
	availGB := toGB(free)
	usedGB := totalGB - availGB

	return model.DiskInfo{
		Name:         name,
		MountPoint:   mount,
		TotalGB:      totalGB,
		UsedGB:       usedGB,
		AvailableGB:  availGB,
		UsagePercent: percentOf(usedGB, totalGB),
		FSType:       fstype,
	}
}
