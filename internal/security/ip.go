package security

import "net/netip"

// privatePrefixes is the set of address ranges the outbound fetch gate refuses
// to connect to: RFC 1918, loopback, link-local and IPv6 unique-local. This
// list is the primary SSRF defense and must stay exhaustive.
var privatePrefixes = []netip.Prefix{
	netip.MustParsePrefix("10.0.0.0/8"),
	netip.MustParsePrefix("172.16.0.0/12"),
	netip.MustParsePrefix("192.168.0.0/16"),
	netip.MustParsePrefix("127.0.0.0/8"),
	netip.MustParsePrefix("169.254.0.0/16"),
	netip.MustParsePrefix("::1/128"),
	netip.MustParsePrefix("fc00::/7"),
	netip.MustParsePrefix("fe80::/10"),
}

// IsPrivateIP reports whether the string is an IPv4 or IPv6 address inside a
// private, loopback or link-local range. Strings that do not parse as an
// address return false; callers are expected to have already validated the
// input syntactically.
func IsPrivateIP(s string) bool {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return false
	}
	return isPrivateAddr(addr)
}

// isPrivateAddr checks an already-parsed address against the private ranges.
// IPv4-mapped IPv6 addresses (::ffff:127.0.0.1) are unmapped first so they
// cannot slip past the IPv4 prefixes.
func isPrivateAddr(addr netip.Addr) bool {
	addr = addr.Unmap()
	for _, prefix := range privatePrefixes {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}
