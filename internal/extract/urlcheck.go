package extract

import (
	"fmt"
	"net"
	"net/url"
)

// ValidateURL rejects URLs the fetcher must not touch: non-HTTP schemes,
// missing hosts, and (unless allowPrivate) literal private or loopback IPs.
func ValidateURL(rawURL string, allowPrivate bool) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported URL scheme %q", u.Scheme)
	}
	if u.Hostname() == "" {
		return fmt.Errorf("URL has no host")
	}
	if !allowPrivate {
		if ip := net.ParseIP(u.Hostname()); ip != nil && IsPrivateIP(ip) {
			return fmt.Errorf("fetching %s is not allowed", ip)
		}
	}
	return nil
}

// IsPrivateIP reports whether the IP is private, loopback, link-local or
// unspecified.
func IsPrivateIP(ip net.IP) bool {
	return ip.IsPrivate() ||
		ip.IsLoopback() ||
		ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() ||
		ip.IsUnspecified()
}
