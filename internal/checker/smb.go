package checker

import (
	"context"
	"net"
	"time"

	"github.com/hirochachacha/go-smb2"

	consts "github.com/khanhnv2901/scorecheck/internal/shared/constants"
)

// SMB authenticates with NTLM and mounts \\address\share, then opens the
// optional file inside it. Any failure along the way, including bad
// credentials or a missing share or file, is reported as false.
func (p *Prober) SMB(ctx context.Context, address string, port int, args SMBArgs) bool {
	ctx, cancel := context.WithTimeout(ctx, p.opts.SMBTimeout)
	defer cancel()

	target := hostPort(address, port, consts.DefaultSMBPort)
	dialer := &net.Dialer{Timeout: p.opts.SMBTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", target)
	if err != nil {
		p.logger.Debugw("smb dial failed", "target", target, "error", err)
		return false
	}
	defer conn.Close()
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	} else {
		_ = conn.SetDeadline(time.Now().Add(p.opts.SMBTimeout))
	}

	d := &smb2.Dialer{
		Initiator: &smb2.NTLMInitiator{
			User:     args.Username,
			Password: args.Password,
		},
	}
	session, err := d.DialContext(ctx, conn)
	if err != nil {
		p.logger.Debugw("smb session failed", "target", target, "user", args.Username, "error", err)
		return false
	}
	defer func() { _ = session.Logoff() }()

	sharePath := `\\` + address + `\` + args.Share
	share, err := session.WithContext(ctx).Mount(sharePath)
	if err != nil {
		p.logger.Debugw("smb mount failed", "share", sharePath, "error", err)
		return false
	}
	defer func() { _ = share.Umount() }()

	if args.File == "" {
		return true
	}
	f, err := share.WithContext(ctx).Open(args.File)
	if err != nil {
		p.logger.Debugw("smb open failed", "share", sharePath, "file", args.File, "error", err)
		return false
	}
	_ = f.Close()
	return true
}
