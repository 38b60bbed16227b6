package collector

import (
	"strings"

	"github.com/shirou/gopsutil/v3/host"

	"sysglance/internal/model"
)

func collectOverview() model.SystemOverview {
	info, err := host.Info()
	if err != nil {
		return model.SystemOverview{}
	}

	return model.SystemOverview{
		OSName:        osName(info),
		HostName:      info.Hostname,
		UptimeSeconds: info.Uptime,
	}
}

// osName prefers the distribution name and version over the bare kernel
// identifier, e.g. "Ubuntu 24.04" instead of "linux".
func osName(info *host.InfoStat) string {
	name := strings.TrimSpace(info.Platform + " " + info.PlatformVersion)
	if name == "" {
		name = info.OS
	}
	return name
}
