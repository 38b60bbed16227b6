package collector

import (
	"math"
	"testing"

	"github.com/shirou/gopsutil/v3/host"

	"sysglance/internal/model"
)

const tolerance = 1e-6

func almostEqual(a, b float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	largest := math.Max(math.Abs(a), math.Abs(b))
	return diff <= tolerance*largest
}

func TestDiskInfoFrom(t *testing.T) {
	tests := []struct {
		name        string
		total, free uint64
		wantPercent float64
	}{
		{"half full", 100 * bytesPerGB, 50 * bytesPerGB, 50},
		{"empty", 100 * bytesPerGB, 100 * bytesPerGB, 0},
		{"zero total", 0, 0, 0},
		{"nearly full", 10 * bytesPerGB, 1 * bytesPerGB, 90},
	}

	for _, tt := range tests {
		d := diskInfoFrom("/dev/sda1", "/", "ext4", tt.total, tt.free)

		if !almostEqual(d.UsagePercent, tt.wantPercent) {
			t.Errorf("%s: UsagePercent = %v, want %v", tt.name, d.UsagePercent, tt.wantPercent)
		}
		if !almostEqual(d.UsedGB+d.AvailableGB, d.TotalGB) {
			t.Errorf("%s: used %v + available %v != total %v", tt.name, d.UsedGB, d.AvailableGB, d.TotalGB)
		}
		if d.TotalGB > 0 && !almostEqual(d.UsagePercent, d.UsedGB/d.TotalGB*100) {
			t.Errorf("%s: UsagePercent %v does not match used/total", tt.name, d.UsagePercent)
		}
	}
}

func TestDiskInfoFromKeepsIdentity(t *testing.T) {
	d := diskInfoFrom("/dev/nvme0n1p2", "/home", "btrfs", bytesPerGB, 0)
	if d.Name != "/dev/nvme0n1p2" || d.MountPoint != "/home" || d.FSType != "btrfs" {
		t.Errorf("identity fields not preserved: %+v", d)
	}
}

func TestMemoryInfoFrom(t *testing.T) {
	m := memoryInfoFrom(16*bytesPerGB, 4*bytesPerGB)

	if !almostEqual(m.TotalGB, 16) {
		t.Errorf("TotalGB = %v, want 16", m.TotalGB)
	}
	if !almostEqual(m.UsedGB, 4) {
		t.Errorf("UsedGB = %v, want 4", m.UsedGB)
	}
	if !almostEqual(m.UsagePercent, m.UsedGB/m.TotalGB*100) {
		t.Errorf("UsagePercent = %v, want used/total*100", m.UsagePercent)
	}
}

func TestMemoryInfoFromZeroTotal(t *testing.T) {
	m := memoryInfoFrom(0, 0)
	if m.UsagePercent != 0 {
		t.Errorf("UsagePercent = %v, want 0 for zero total", m.UsagePercent)
	}
}

func TestCPUInfoFrom(t *testing.T) {
	perCore := []float64{10, 20, 30, 40}
	c := cpuInfoFrom("TestCPU", perCore)

	if c.CoreCount != len(c.PerCoreUsage) {
		t.Errorf("CoreCount %d != len(PerCoreUsage) %d", c.CoreCount, len(c.PerCoreUsage))
	}
	if !almostEqual(c.UsagePercent, 25) {
		t.Errorf("UsagePercent = %v, want mean 25", c.UsagePercent)
	}
}

func TestCPUInfoFromNoCores(t *testing.T) {
	c := cpuInfoFrom("TestCPU", nil)
	if c.CoreCount != 0 || c.UsagePercent != 0 {
		t.Errorf("empty sample should yield zero values, got %+v", c)
	}
}

func TestFilterTemperatures(t *testing.T) {
	readings := []host.TemperatureStat{
		{SensorKey: "coretemp_core0", Temperature: 45.5},
		{SensorKey: "dead_sensor", Temperature: 0},
		{SensorKey: "barely_warm", Temperature: 0.1},
		{SensorKey: "negative", Temperature: -3},
	}

	temps := filterTemperatures(readings)

	if len(temps) != 2 {
		t.Fatalf("got %d temps, want 2: %+v", len(temps), temps)
	}
	if temps[0].Label != "coretemp_core0" || temps[1].Label != "barely_warm" {
		t.Errorf("unexpected sensors kept: %+v", temps)
	}
}

func TestRankTop(t *testing.T) {
	usages := []float64{5.0, 90.0, 3.0, 99.5, 1.0, 42, 17, 8, 63, 2, 0.5, 11, 76, 33, 24}
	infos := make([]model.ProcessInfo, len(usages))
	for i, u := range usages {
		infos[i] = model.ProcessInfo{PID: uint32(i + 1), CPUUsagePercent: u}
	}

	top := rankTop(infos, 10)

	if len(top) != 10 {
		t.Fatalf("got %d entries, want 10", len(top))
	}
	if top[0].CPUUsagePercent != 99.5 {
		t.Errorf("top entry usage = %v, want 99.5", top[0].CPUUsagePercent)
	}
	for i := 1; i < len(top); i++ {
		if top[i].CPUUsagePercent > top[i-1].CPUUsagePercent {
			t.Errorf("not sorted descending at %d: %v > %v", i, top[i].CPUUsagePercent, top[i-1].CPUUsagePercent)
		}
	}
}

func TestRankTopFewerThanN(t *testing.T) {
	infos := []model.ProcessInfo{
		{PID: 1, CPUUsagePercent: 2},
		{PID: 2, CPUUsagePercent: 7},
	}

	top := rankTop(infos, 10)

	if len(top) != 2 {
		t.Fatalf("got %d entries, want 2", len(top))
	}
	if top[0].PID != 2 {
		t.Errorf("top entry PID = %d, want 2", top[0].PID)
	}
}

func TestRankTopToleratesNaN(t *testing.T) {
	infos := []model.ProcessInfo{
		{PID: 1, CPUUsagePercent: 10},
		{PID: 2, CPUUsagePercent: math.NaN()},
		{PID: 3, CPUUsagePercent: 50},
		{PID: 4, CPUUsagePercent: math.NaN()},
		{PID: 5, CPUUsagePercent: 30},
	}

	top := rankTop(infos, 3)

	if len(top) != 3 {
		t.Fatalf("got %d entries, want 3", len(top))
	}
	// The ordered values must still lead; NaN pairs compare as equal and
	// must not fault the sort.
	if top[0].CPUUsagePercent != 50 {
		t.Errorf("top entry usage = %v, want 50", top[0].CPUUsagePercent)
	}
}

func TestPercentOf(t *testing.T) {
	if got := percentOf(5, 0); got != 0 {
		t.Errorf("percentOf(5, 0) = %v, want 0", got)
	}
	if got := percentOf(1, 4); !almostEqual(got, 25) {
		t.Errorf("percentOf(1, 4) = %v, want 25", got)
	}
}
