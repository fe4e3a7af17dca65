package checker

import (
	"net"
	"net/netip"
	"strconv"
	"strings"

	sharedErrors "github.com/khanhnv2901/scorecheck/internal/shared/errors"
)

// ParseAddress accepts only a bare dotted-quad IPv4 literal. Hostnames, IPv6,
// IPv4-mapped IPv6, zones and CIDR prefixes are all rejected.
func ParseAddress(address string) (netip.Addr, error) {
	if strings.Contains(address, "/") {
		return netip.Addr{}, wrapf(sharedErrors.ErrInvalidAddress,
			"%q: format as a standard IPv4 address, do not use CIDR postfixes (i.e. /24, /17)", address)
	}
	addr, err := netip.ParseAddr(address)
	if err != nil || !addr.Is4() || addr.Zone() != "" {
		return netip.Addr{}, wrapf(sharedErrors.ErrInvalidAddress,
			"%q: format as a standard IPv4 address", address)
	}
	return addr, nil
}

func validPort(port int) bool {
	return port >= 0 && port <= 65535
}

// hostPort joins address and port, substituting fallback when port is 0.
func hostPort(address string, port, fallback int) string {
	if port == 0 {
		port = fallback
	}
	return net.JoinHostPort(address, strconv.Itoa(port))
}

// resolveProtocol picks http or https for a fetch. An explicit protocol
// argument wins; otherwise the well-known web ports decide.
func resolveProtocol(protocol string, port int) (string, error) {
	switch p := strings.ToLower(strings.TrimSpace(protocol)); p {
	case "http", "https":
		return p, nil
	}
	switch port {
	case 443:
		return "https", nil
	case 80:
		return "http", nil
	}
	return "", wrapf(sharedErrors.ErrProtocolRequired,
		"cannot infer http or https for port %d; pass %q or %q as the protocol argument", port, "http", "https")
}

// normalizePath strips leading and trailing slashes and backslashes.
func normalizePath(path string) string {
	return strings.Trim(path, `/\`)
}

func fetchURL(protocol, address string, port int, path string) string {
	return protocol + "://" + net.JoinHostPort(address, strconv.Itoa(port)) + "/" + normalizePath(path)
}
