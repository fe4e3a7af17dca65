package checker

import (
	"context"
	"net"
	"time"

	"github.com/jlaffaye/ftp"

	consts "github.com/khanhnv2901/scorecheck/internal/shared/constants"
)

const anonymousFTPUser = "anonymous"

// FTP connects and logs in, anonymously when no username is given. Dial,
// greeting and login errors are all reported as false.
func (p *Prober) FTP(ctx context.Context, address string, port int, args FTPArgs) bool {
	ctx, cancel := context.WithTimeout(ctx, p.opts.FTPTimeout)
	defer cancel()

	// The deadline on the control connection bounds a server that accepts
	// but never sends its greeting.
	deadline := time.Now().Add(p.opts.FTPTimeout)
	dialer := &net.Dialer{Timeout: p.opts.FTPTimeout}
	dial := func(network, addr string) (net.Conn, error) {
		conn, err := dialer.DialContext(ctx, network, addr)
		if err != nil {
			return nil, err
		}
		_ = conn.SetDeadline(deadline)
		return conn, nil
	}

	target := hostPort(address, port, consts.DefaultFTPPort)
	c, err := ftp.Dial(target, ftp.DialWithDialFunc(dial))
	if err != nil {
		p.logger.Debugw("ftp dial failed", "target", target, "error", err)
		return false
	}
	defer func() { _ = c.Quit() }()

	user := args.Username
	if user == "" {
		user = anonymousFTPUser
	}
	if err := c.Login(user, args.Password); err != nil {
		p.logger.Debugw("ftp login failed", "target", target, "user", user, "error", err)
		return false
	}
	return true
}
