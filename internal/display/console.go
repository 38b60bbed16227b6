package display

import (
	"fmt"
	"strings"

	"sysglance/internal/model"
)

const (
	colorReset = "\033[0m"
	colorKey   = "\033[96m" // Bright cyan
)

// Render formats a snapshot as aligned key/value lines. With color enabled
// the keys are highlighted the way a terminal fetch tool would show them.
func Render(info *model.FullSystemInfo, color bool) string {
	var b strings.Builder

	line := func(key, format string, args ...interface{}) {
		if color {
			fmt.Fprintf(&b, "%s%s:%s ", colorKey, key, colorReset)
		} else {
			fmt.Fprintf(&b, "%s: ", key)
		}
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	line("Host", "%s", info.Overview.HostName)
	line("OS", "%s", info.Overview.OSName)
	line("Uptime", "%s", formatUptime(info.Overview.UptimeSeconds))
	line("CPU", "%s (%d cores) %.1f%%", info.CPU.Name, info.CPU.CoreCount, info.CPU.UsagePercent)
	line("Memory", "%.1fGiB / %.1fGiB (%.1f%%)", info.Memory.UsedGB, info.Memory.TotalGB, info.Memory.UsagePercent)

	for _, d := range info.Disks {
		line("Disk", "%s on %s [%s] %.1fGiB / %.1fGiB (%.1f%%)",
			d.Name, d.MountPoint, d.FSType, d.UsedGB, d.TotalGB, d.UsagePercent)
	}
	for _, n := range info.Networks {
		line("Net", "%s rx %s tx %s", n.Name, formatBytes(n.ReceivedBytes), formatBytes(n.TransmittedBytes))
	}
	for _, t := range info.Temperatures {
		line("Temp", "%s %.1f°C", t.Label, t.TemperatureCelsius)
	}
	if len(info.TopProcesses) > 0 {
		b.WriteString("Top processes:\n")
		for _, p := range info.TopProcesses {
			fmt.Fprintf(&b, "  %6d %-24s %5.1f%% %8.1fMiB\n", p.PID, p.Name, p.CPUUsagePercent, p.MemoryMB)
		}
	}

	return b.String()
}

// RenderBattery formats battery status, handling the no-battery case.
func RenderBattery(info *model.BatteryInfo) string {
	if info == nil {
		return "No battery present\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Battery: %.0f%% (%s, health %.0f%%)\n", info.Percentage, info.State, info.HealthPercent)
	if info.TimeToEmptyMinutes != nil {
		fmt.Fprintf(&b, "Time to empty: %.0f min\n", *info.TimeToEmptyMinutes)
	}
	if info.TimeToFullMinutes != nil {
		fmt.Fprintf(&b, "Time to full: %.0f min\n", *info.TimeToFullMinutes)
	}
	return b.String()
}

func formatUptime(seconds uint64) string {
	days := seconds / 86400
	hours := seconds % 86400 / 3600
	mins := seconds % 3600 / 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%d days", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d hours", hours))
	}
	if mins > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%d mins", mins))
	}
	return strings.Join(parts, ", ")
}

func formatBytes(n uint64) string {
	switch {
	case n >= 1<<30:
		return fmt.Sprintf("%.1fGiB", float64(n)/(1<<30))
	case n >= 1<<20:
		return fmt.Sprintf("%.1fMiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1fKiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%dB", n)
	}
}
