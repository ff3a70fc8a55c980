// =======================
// derive/types.go
// =======================

// Package derive turns a master secret, a site identifier and a set of
// generation parameters into a reproducible per-site password. The same
// inputs always yield the same output; nothing is stored anywhere.
//
// The cryptographic digest primitives are injected through the
// HashCapability interface, so the package itself carries no dependency on
// any concrete hash implementation. See the hashers package for a ready-made
// capability.
package derive

// LeetWhen selects at which pipeline stages the leet obfuscation runs.
type LeetWhen int

const (
	// LeetNone disables the leet transform entirely.
	LeetNone LeetWhen = iota
	// LeetBeforeHash obfuscates the hashed inputs (the master secret and the
	// assembled site text).
	LeetBeforeHash
	// LeetAfterHash obfuscates the generated password core. This forces the
	// core to lower-case characters.
	LeetAfterHash
	// LeetBeforeAndAfter applies both passes, each independently.
	LeetBeforeAndAfter
)

// SubdomainPolicy controls how much of the site's host name contributes to
// the hashed text.
type SubdomainPolicy int

const (
	// FullDomain keeps the complete host, subdomains included.
	FullDomain SubdomainPolicy = iota
	// OneSubdomainLevel keeps the registrable domain plus the subdomain
	// label directly in front of it.
	OneSubdomainLevel
	// DomainOnly keeps just the registrable domain.
	DomainOnly
)

const (
	// MinLeetLevel and MaxLeetLevel bound Profile.LeetLevel. Level 0 is the
	// identity transform.
	MinLeetLevel = 0
	MaxLeetLevel = 9

	// MinAlphabetSize is the smallest usable output alphabet. The core is
	// produced by a number system conversion, and there is no base-1 or
	// base-0 number system.
	MinAlphabetSize = 2
)

// Profile holds the per-site generation parameters. A Profile is read-only
// during a derivation; the same Profile value may be shared by concurrent
// calls.
type Profile struct {
	// Alphabet is the ordered set of symbols the password core is composed
	// of. Symbols are grapheme clusters, not bytes; order is significant and
	// duplicates are rejected.
	Alphabet string

	// Length is the number of grapheme clusters in the password core,
	// exclusive of Prefix and Suffix.
	Length int

	// Prefix and Suffix are attached to the core verbatim. They are never
	// truncated and never leet-transformed.
	Prefix string
	Suffix string

	// LeetLevel (0-9) and LeetWhen configure the obfuscation passes.
	LeetLevel int
	LeetWhen  LeetWhen

	// UseHMAC switches from plain digests to HMAC keyed by the master
	// secret.
	UseHMAC bool

	// HashAlgorithm names the digest to use. The identifier is opaque to
	// this package and resolved by the HashCapability.
	HashAlgorithm string

	// Subdomains selects how much of the site's host is hashed.
	Subdomains SubdomainPolicy

	// Modifier is an arbitrary per-site string mixed into the hashed text.
	Modifier string
}

// Request describes one derivation call. The master secret is only ever
// held in memory for the duration of the call.
type Request struct {
	MasterSecret string
	Site         string
	Username     string

	// Counter distinguishes otherwise identical requests, for instance after
	// a forced password rotation. Values greater than zero are mixed into
	// the hashed text; zero means unset.
	Counter int

	Profile *Profile
}
