package providers

import (
	"errors"
	"fmt"
	"net"
	"os"

	"oledpanel/container"
)

var errNoAddress = errors.New("providers: no address")

// Hostname returns a source reading the machine's hostname.
func Hostname() container.TextSource {
	return os.Hostname
}

// IPAddress returns a source reading the machine's primary IPv4
// address. With a non-empty iface only that interface is considered;
// otherwise the first global unicast IPv4 on any interface wins.
func IPAddress(iface string) container.TextSource {
	return func() (string, error) {
		if iface != "" {
			ifi, err := net.InterfaceByName(iface)
			if err != nil {
				return "", err
			}
			addrs, err := ifi.Addrs()
			if err != nil {
				return "", err
			}
			if ip, ok := firstIPv4(addrs); ok {
				return ip, nil
			}
			return "", fmt.Errorf("%w on %s", errNoAddress, iface)
		}

		addrs, err := net.InterfaceAddrs()
		if err != nil {
			return "", err
		}
		if ip, ok := firstIPv4(addrs); ok {
			return ip, nil
		}
		return "", errNoAddress
	}
}

func firstIPv4(addrs []net.Addr) (string, bool) {
	for _, a := range addrs {
		ipnet, ok := a.(*net.IPNet)
		if !ok {
			continue
		}
		ip := ipnet.IP.To4()
		if ip == nil || ip.IsLoopback() || !ip.IsGlobalUnicast() {
			continue
		}
		return ip.String(), true
	}
	return "", false
}
