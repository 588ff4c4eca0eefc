// Package fetcher fetches article HTML over HTTP and extracts readable text
// for summarization.
package fetcher

import (
	"fmt"
	"net"
	"net/url"

	"article-summarizer/internal/usecase/summarize"
)

// validateURL checks a user-supplied URL before any request is made.
// Only http/https schemes are accepted; with denyPrivateIPs set, hostnames
// resolving to loopback, private, or link-local addresses are rejected so the
// service cannot be used to probe internal networks.
func validateURL(urlStr string, denyPrivateIPs bool) error {
	u, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("%w: parse error: %v", summarize.ErrInvalidURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme %q not allowed", summarize.ErrInvalidURL, u.Scheme)
	}

	hostname := u.Hostname()
	if hostname == "" {
		return fmt.Errorf("%w: empty hostname", summarize.ErrInvalidURL)
	}

	if !denyPrivateIPs {
		return nil
	}

	ips, err := net.LookupIP(hostname)
	if err != nil {
		return fmt.Errorf("%w: DNS lookup failed for %s: %v", summarize.ErrInvalidURL, hostname, err)
	}
	for _, ip := range ips {
		if isPrivateIP(ip) {
			return fmt.Errorf("%w: hostname %q resolves to blocked address %s",
				summarize.ErrInvalidURL, hostname, ip)
		}
	}

	return nil
}

// isPrivateIP reports whether ip is loopback, private, or link-local,
// for both IPv4 and IPv6.
func isPrivateIP(ip net.IP) bool {
	return ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast()
}
