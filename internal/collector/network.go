package collector

import (
	gnet "github.com/shirou/gopsutil/v3/net"

	"sysglance/internal/model"
)

func collectNetworks() []model.NetworkInterface {
	counters, err := gnet.IOCounters(true)
	if err != nil {
		return []model.NetworkInterface{}
	}

	type ifaceIdentity struct {
		mac string
		ips []string
	}
	identities := make(map[string]ifaceIdentity)
	if ifaces, err := gnet.Interfaces(); err == nil {
		for _, iface := range ifaces {
			ips := make([]string, 0, len(iface.Addrs))
			for _, addr := range iface.Addrs {
				ips = append(ips, addr.Addr)
			}
			identities[iface.Name] = ifaceIdentity{mac: iface.HardwareAddr, ips: ips}
		}
	}

	networks := make([]model.NetworkInterface, 0, len(counters))
	for _, c := range counters {
		id := identities[c.Name]
		networks = append(networks, model.NetworkInterface{
			Name:             c.Name,
			ReceivedBytes:    c.BytesRecv,
			TransmittedBytes: c.BytesSent,
			MACAddress:       id.mac,
			IPAddresses:      id.ips,
		})
	}
	return networks
}
