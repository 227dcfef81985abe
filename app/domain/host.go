package domain

import "strings"

// HostInfo is the parsed form of a request hostname.
type HostInfo struct {
	IsLocalDevelopment bool   `json:"is_local_development"`
	HasSubdomain       bool   `json:"has_subdomain"`
	SubdomainToken     string `json:"subdomain_token,omitempty"`
}

// ParseHostname parses a request hostname into its tenant-routing parts.
// A loopback host carries a subdomain only when a synthetic prefix is
// concatenated with a dot (shop1.localhost); any other host carries a
// subdomain only when it has more than two dot-separated labels, so a bare
// registrable domain plus TLD counts as no subdomain. The function is total:
// it never fails, garbage in yields the zero HostInfo.
func ParseHostname(host string) HostInfo {
	host = strings.ToLower(strings.TrimSpace(host))
	if before, _, found := strings.Cut(host, ":"); found {
		host = before
	}

	if host == "" {
		return HostInfo{}
	}

	// Bare loopback addresses never carry a subdomain even though the
	// IPv4 form contains dots.
	if host == "localhost" || host == "127.0.0.1" {
		return HostInfo{IsLocalDevelopment: true}
	}

	labels := strings.Split(host, ".")

	// Simulated subdomain in local development: shop1.localhost
	if labels[len(labels)-1] == "localhost" {
		info := HostInfo{IsLocalDevelopment: true}
		if labels[0] != "" {
			info.HasSubdomain = true
			info.SubdomainToken = labels[0]
		}
		return info
	}

	if len(labels) > 2 && labels[0] != "" {
		return HostInfo{HasSubdomain: true, SubdomainToken: labels[0]}
	}

	return HostInfo{}
}

// ResolveSlug merges an explicit tenant slug with a parsed hostname into one
// effective slug. A non-empty explicit slug always wins over the subdomain
// token; callers rely on being able to override subdomain-based routing.
// Returns "" when neither source supplies a slug.
func ResolveSlug(explicit string, host HostInfo) string {
	if slug := strings.TrimSpace(explicit); slug != "" {
		return slug
	}
	if host.HasSubdomain {
		return host.SubdomainToken
	}
	return ""
}
