package checker

// Type is the declared kind of a check. It selects the probe Execute runs.
type Type string

const (
	TypePing       Type = "ping"
	TypeURL        Type = "url"
	TypeContent    Type = "content"
	TypePageExists Type = "pageExists"
	TypeDNS        Type = "dns"
	TypeSMB        Type = "smb"
	TypeFTP        Type = "ftp"

	// Recognized but not yet implemented.
	TypeAD   Type = "ad"
	TypeDHCP Type = "dhcp"
	TypeSMTP Type = "smtp"
	TypePOP3 Type = "pop3"
	TypeIMAP Type = "imap"
	TypeNTP  Type = "ntp"
)

var allTypes = []Type{
	TypePing,
	TypeURL,
	TypeContent,
	TypePageExists,
	TypeDNS,
	TypeSMB,
	TypeFTP,
	TypeAD,
	TypeDHCP,
	TypeSMTP,
	TypePOP3,
	TypeIMAP,
	TypeNTP,
}

// Types returns every recognized check type in dispatch order.
func Types() []Type {
	return append([]Type(nil), allTypes...)
}

// ParseType reports whether s names a recognized check type. Matching is exact.
func ParseType(s string) (Type, bool) {
	for _, t := range allTypes {
		if string(t) == s {
			return t, true
		}
	}
	return Type(s), false
}

// Reserved reports whether t is a recognized extension point without a probe.
func (t Type) Reserved() bool {
	switch t {
	case TypeAD, TypeDHCP, TypeSMTP, TypePOP3, TypeIMAP, TypeNTP:
		return true
	}
	return false
}

func (t Type) String() string {
	return string(t)
}
