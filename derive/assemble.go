package derive

import (
	"strconv"
	"strings"
)

// siteParts is the outcome of splitting a site identifier. Only the host
// information matters for derivation; protocol, userinfo, port and path are
// parsed so they do not pollute the host, then discarded.
type siteParts struct {
	subdomain string // all host labels in front of the registrable domain
	domain    string // the last two host labels (or the whole host if it has fewer)
}

// parseSite splits a site identifier the way users type them: full URLs,
// bare hosts ("www.example.com") and anything in between. It intentionally
// prioritizes "what the user expects" over strict URI conformance — a bare
// host is not a valid URI (the authority is not optional), yet it must work.
func parseSite(input string) siteParts {
	rest := input
	hasProtocol := false
	if i := strings.IndexByte(rest, ':'); i >= 0 {
		hasProtocol = true
		rest = rest[i+1:]
	}
	hasAuthority := strings.HasPrefix(rest, "//")
	if hasAuthority {
		rest = rest[2:]
	}

	// The authority ends at the first slash. With a protocol but no
	// authority marker, everything after the ':' is path.
	authority := rest
	if hasProtocol && !hasAuthority {
		authority = ""
	} else if i := strings.IndexByte(rest, '/'); i >= 0 {
		authority = rest[:i]
	}

	// Userinfo must be stripped before the port, otherwise ':' is ambiguous.
	hostAndPort := authority
	if i := strings.IndexByte(hostAndPort, '@'); i >= 0 {
		hostAndPort = hostAndPort[i+1:]
	}
	address := hostAndPort
	if i := strings.IndexByte(address, ':'); i >= 0 {
		address = address[:i]
	}

	// The registrable domain is taken to be the last two labels; everything
	// in front is subdomain.
	subdomain := ""
	domain := address
	if last := strings.LastIndexByte(address, '.'); last > 0 {
		if second := strings.LastIndexByte(address[:last], '.'); second >= 0 {
			subdomain = address[:second]
			domain = address[second:]
		}
	}
	domain = strings.TrimPrefix(domain, ".")
	return siteParts{subdomain: subdomain, domain: domain}
}

// hostForPolicy trims the parsed host to the configured subdomain depth.
func (p siteParts) hostForPolicy(policy SubdomainPolicy) string {
	switch policy {
	case FullDomain:
		if p.subdomain != "" {
			return p.subdomain + "." + p.domain
		}
	case OneSubdomainLevel:
		if p.subdomain != "" {
			level := p.subdomain
			if i := strings.LastIndexByte(level, '.'); i >= 0 {
				level = level[i+1:]
			}
			return level + "." + p.domain
		}
	case DomainOnly:
	}
	return p.domain
}

// assembleText builds the canonical text that gets hashed: the host fragment
// selected by the subdomain policy, the username, the per-site modifier and,
// if set, the rotation counter in decimal — concatenated in that fixed
// order. The order is part of the output format; changing it changes every
// password.
func assembleText(site, username, modifier string, counter int, policy SubdomainPolicy) (string, error) {
	parts := parseSite(site)
	if parts.domain == "" {
		return "", &ValidationError{Field: "site", Reason: strconv.Quote(site) + " contains no domain"}
	}
	text := parts.hostForPolicy(policy) + username + modifier
	if counter > 0 {
		text += strconv.Itoa(counter)
	}
	return text, nil
}
