package providers

import (
	"net"
	"testing"
)

func TestFormatUptime(t *testing.T) {
	cases := []struct {
		secs uint64
		want string
	}{
		{59, "0m"},
		{60, "1m"},
		{3600, "1h 0m"},
		{3*3600 + 25*60, "3h 25m"},
		{86400, "1d 0h 0m"},
		{2*86400 + 5*3600 + 7*60, "2d 5h 7m"},
	}
	for _, tc := range cases {
		if got := formatUptime(tc.secs); got != tc.want {
			t.Errorf("formatUptime(%d) = %q, want %q", tc.secs, got, tc.want)
		}
	}
}

func mustCIDR(t *testing.T, s string) net.Addr {
	t.Helper()
	ip, ipnet, err := net.ParseCIDR(s)
	if err != nil {
		t.Fatalf("ParseCIDR(%q) error = %v", s, err)
	}
	ipnet.IP = ip
	return ipnet
}

func TestFirstIPv4(t *testing.T) {
	addrs := []net.Addr{
		mustCIDR(t, "127.0.0.1/8"),       // loopback skipped
		mustCIDR(t, "fe80::1/64"),        // link-local v6 skipped
		mustCIDR(t, "2001:db8::1/64"),    // v6 skipped
		mustCIDR(t, "192.168.1.20/24"),   // first usable
		mustCIDR(t, "10.0.0.5/8"),
	}

	ip, ok := firstIPv4(addrs)
	if !ok || ip != "192.168.1.20" {
		t.Fatalf("firstIPv4() = %q, %v, want 192.168.1.20, true", ip, ok)
	}

	ip, ok = firstIPv4(addrs[:3])
	if ok {
		t.Fatalf("firstIPv4() without usable v4 = %q, true, want false", ip)
	}
}
