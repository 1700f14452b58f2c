package sysinfo

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"strings"

	psnet "github.com/shirou/gopsutil/v4/net"
)

// NIC is one network interface with its first IPv4 address.
type NIC struct {
	Name     string
	Type     string // "ethernet", "wifi", "loopback", "virtual"
	IPv4     string
	Up       bool
	Loopback bool
}

// LocalIP returns the primary local IPv4 address. Physical interfaces win
// over virtual ones; interface order breaks ties.
func LocalIP(ctx context.Context) (string, error) {
	ifaces, err := psnet.InterfacesWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("listing interfaces: %w", err)
	}
	nics := make([]NIC, 0, len(ifaces))
	for _, iface := range ifaces {
		nics = append(nics, siNICFromStat(iface, runtime.GOOS))
	}
	if ip := siPrimaryIPv4(nics); ip != "" {
		return ip, nil
	}
	return "", ErrNoData
}

func siNICFromStat(iface psnet.InterfaceStat, goos string) NIC {
	nic := NIC{
		Name:     iface.Name,
		Type:     siClassifyNIC(iface.Name, goos),
		Up:       slices.Contains(iface.Flags, "up"),
		Loopback: slices.Contains(iface.Flags, "loopback"),
	}
	for _, a := range iface.Addrs {
		ip := siExtractIP(a.Addr)
		if ip != "" && !strings.Contains(ip, ":") {
			nic.IPv4 = ip
			break
		}
	}
	return nic
}

// siPrimaryIPv4 picks an up, non-loopback interface with an IPv4 address,
// preferring ethernet and wifi.
func siPrimaryIPv4(nics []NIC) string {
	var fallback string
	for _, n := range nics {
		if !n.Up || n.Loopback || n.Type == "loopback" || n.IPv4 == "" || strings.HasPrefix(n.IPv4, "127.") {
			continue
		}
		if n.Type == "ethernet" || n.Type == "wifi" {
			return n.IPv4
		}
		if fallback == "" {
			fallback = n.IPv4
		}
	}
	return fallback
}

// siClassifyNIC classifies a network interface by its name and the current OS.
// The goos parameter allows testing without runtime dependency.
func siClassifyNIC(name, goos string) string {
	lower := strings.ToLower(name)

	if strings.HasPrefix(lower, "lo") {
		return "loopback"
	}

	// VPN, container and bridge interfaces.
	if strings.HasPrefix(lower, "veth") ||
		strings.HasPrefix(lower, "br-") ||
		strings.HasPrefix(lower, "docker") ||
		strings.HasPrefix(lower, "cni") ||
		strings.HasPrefix(lower, "flannel") ||
		strings.HasPrefix(lower, "vxlan") ||
		strings.HasPrefix(lower, "virbr") ||
		strings.HasPrefix(lower, "tailscale") ||
		strings.HasPrefix(lower, "wg") ||
		strings.HasPrefix(lower, "tun") ||
		strings.HasPrefix(lower, "tap") {
		return "virtual"
	}

	switch goos {
	case "darwin":
		return siClassifyNICDarwin(lower)
	case "linux":
		return siClassifyNICLinux(lower)
	case "windows":
		return siClassifyNICWindows(lower)
	}

	if strings.HasPrefix(lower, "eth") || strings.HasPrefix(lower, "em") || strings.HasPrefix(lower, "re") {
		return "ethernet"
	}
	if strings.HasPrefix(lower, "wl") {
		return "wifi"
	}
	return "virtual"
}

// siClassifyNICDarwin classifies macOS interface names.
func siClassifyNICDarwin(lower string) string {
	switch {
	case strings.HasPrefix(lower, "en"):
		return "ethernet"
	case strings.HasPrefix(lower, "awdl"), strings.HasPrefix(lower, "llw"), strings.HasPrefix(lower, "ap"):
		return "wifi"
	default:
		// utun and bridge interfaces belong to VPNs and sharing.
		return "virtual"
	}
}

// siClassifyNICLinux classifies Linux interface names.
func siClassifyNICLinux(lower string) string {
	switch {
	case strings.HasPrefix(lower, "eth"),
		strings.HasPrefix(lower, "enp"), strings.HasPrefix(lower, "eno"),
		strings.HasPrefix(lower, "ens"), strings.HasPrefix(lower, "enx"):
		return "ethernet"
	case strings.HasPrefix(lower, "wl"), strings.HasPrefix(lower, "ww"):
		return "wifi"
	default:
		return "virtual"
	}
}

// siClassifyNICWindows classifies Windows adapter names such as
// "Ethernet 2" or "Wi-Fi".
func siClassifyNICWindows(lower string) string {
	switch {
	case strings.Contains(lower, "vethernet"), strings.Contains(lower, "virtual"), strings.Contains(lower, "vpn"):
		return "virtual"
	case strings.HasPrefix(lower, "ethernet"):
		return "ethernet"
	case strings.HasPrefix(lower, "wi-fi"), strings.HasPrefix(lower, "wlan"), strings.Contains(lower, "wireless"):
		return "wifi"
	default:
		return "virtual"
	}
}

// siExtractIP strips the CIDR mask from an address string like "192.168.1.1/24".
func siExtractIP(addr string) string {
	if idx := strings.IndexByte(addr, '/'); idx >= 0 {
		return addr[:idx]
	}
	return addr
}
