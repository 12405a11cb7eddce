package validators

import (
	"net"
	"strings"
)

// Normalize lowercases and trims an email address. Every email is
// normalized once at the boundary so storage and uniqueness checks
// compare the same form.
func Normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsEmailDomainValid reports whether the domain part of the address
// resolves to a mail host, or failing that to any address at all.
func IsEmailDomainValid(email string) bool {
	domain, ok := domainPart(email)
	if !ok {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}

func domainPart(email string) (string, bool) {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return "", false
	}
	return email[at+1:], true
}
