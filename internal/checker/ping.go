package checker

import (
	"context"
	"net"
	"strconv"
)

// Ping opens a TCP connection to address:port and closes it straight away.
// Refused, timed out and every other dial error all read as unreachable.
func (p *Prober) Ping(ctx context.Context, address string, port int) bool {
	dialer := &net.Dialer{Timeout: p.opts.PingTimeout}
	target := net.JoinHostPort(address, strconv.Itoa(port))

	conn, err := dialer.DialContext(ctx, "tcp", target)
	if err != nil {
		p.logger.Debugw("ping failed", "target", target, "error", err)
		return false
	}
	_ = conn.Close()
	return true
}
