package model

// SystemOverview holds static or slow-changing host identity facts.
type SystemOverview struct {
	OSName        string `json:"os_name"`
	HostName      string `json:"host_name"`
	UptimeSeconds uint64 `json:"uptime_seconds"`
}

type CPUInfo struct {
	Name         string    `json:"name"`
	UsagePercent float64   `json:"usage_percent"`
	CoreCount    int       `json:"core_count"`
	PerCoreUsage []float64 `json:"per_core_usage"`
}

type MemoryInfo struct {
	TotalGB      float64 `json:"total_gb"`
	UsedGB       float64 `json:"used_gb"`
	UsagePercent float64 `json:"usage_percent"`
}

type DiskInfo struct {
	Name         string  `json:"name"`
	MountPoint   string  `json:"mount_point"`
	TotalGB      float64 `json:"total_gb"`
	UsedGB       float64 `json:"used_gb"`
	AvailableGB  float64 `json:"available_gb"`
	UsagePercent float64 `json:"usage_percent"`
	FSType       string  `json:"fs_type"`
}

// NetworkInterface counters are cumulative since interface init, not deltas.
type NetworkInterface struct {
	Name             string   `json:"name"`
	ReceivedBytes    uint64   `json:"received_bytes"`
	TransmittedBytes uint64   `json:"transmitted_bytes"`
	MACAddress       string   `json:"mac_address"`
	IPAddresses      []string `json:"ip_addresses"`
}

type TempInfo struct {
	Label              string  `json:"label"`
	TemperatureCelsius float64 `json:"temperature_celsius"`
}

type ProcessInfo struct {
	Name            string  `json:"name"`
	PID             uint32  `json:"pid"`
	CPUUsagePercent float64 `json:"cpu_usage_percent"`
	MemoryMB        float64 `json:"memory_mb"`
}

// BatteryInfo describes the first available power source. The time and
// cycle fields are only populated when the hardware reports them.
type BatteryInfo struct {
	Percentage         float64  `json:"percentage"`
	IsCharging         bool     `json:"is_charging"`
	State              string   `json:"state"`
	HealthPercent      float64  `json:"health_percent"`
	TimeToEmptyMinutes *float64 `json:"time_to_empty_minutes,omitempty"`
	TimeToFullMinutes  *float64 `json:"time_to_full_minutes,omitempty"`
	CycleCount         *uint32  `json:"cycle_count,omitempty"`
}

// PublicIPInfo is the decoded geolocation lookup. Everything past the IP
// itself is best-effort and may be absent.
type PublicIPInfo struct {
	IP      string  `json:"ip"`
	City    *string `json:"city,omitempty"`
	Region  *string `json:"region,omitempty"`
	Country *string `json:"country,omitempty"`
	Org     *string `json:"org,omitempty"`
}

// HardwareInfo identifies the machine itself: system vendor/product,
// baseboard and firmware.
type HardwareInfo struct {
	Vendor       string `json:"vendor"`
	Product      string `json:"product"`
	SerialNumber string `json:"serial_number,omitempty"`
	BoardVendor  string `json:"board_vendor"`
	BoardName    string `json:"board_name"`
	BIOSVendor   string `json:"bios_vendor"`
	BIOSVersion  string `json:"bios_version"`
	BIOSDate     string `json:"bios_date"`
}

// FullSystemInfo is the aggregate returned by one snapshot pass.
type FullSystemInfo struct {
	Overview     SystemOverview     `json:"overview"`
	CPU          CPUInfo            `json:"cpu"`
	Memory       MemoryInfo         `json:"memory"`
	Disks        []DiskInfo         `json:"disks"`
	Networks     []NetworkInterface `json:"networks"`
	Temperatures []TempInfo         `json:"temperatures"`
	TopProcesses []ProcessInfo      `json:"top_processes"`
}
