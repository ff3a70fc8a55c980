package derive

import (
	"fmt"
	"strings"
)

// Deriver is the entry point for password derivation. It owns the shared
// power table, so keeping one Deriver alive across calls reuses the
// memoized conversion exponents. A Deriver is safe for concurrent use.
type Deriver struct {
	caps   HashCapability
	powers *PowerTable
}

// New creates a Deriver backed by the given hash capability.
func New(caps HashCapability) *Deriver {
	return &Deriver{caps: caps, powers: NewPowerTable()}
}

// Derive computes the password for req. Identical requests always yield
// identical passwords; the call either fully succeeds or returns exactly one
// typed error (ValidationError, HashCapabilityError or EncodingError) and no
// partial result.
func (d *Deriver) Derive(req Request) (string, error) {
	if req.Profile == nil {
		return "", &ValidationError{Field: "profile", Reason: "must not be nil"}
	}
	alphabet, err := req.Profile.validate()
	if err != nil {
		return "", err
	}
	if req.MasterSecret == "" {
		return "", &ValidationError{Field: "masterSecret", Reason: "must not be empty"}
	}
	if req.Counter < 0 {
		return "", &ValidationError{Field: "counter", Reason: fmt.Sprintf("must not be negative, got %d", req.Counter)}
	}

	text, err := assembleText(req.Site, req.Username, req.Profile.Modifier, req.Counter, req.Profile.Subdomains)
	if err != nil {
		return "", err
	}

	digestSize, err := d.caps.Size(req.Profile.HashAlgorithm)
	if err != nil {
		return "", &HashCapabilityError{Algorithm: req.Profile.HashAlgorithm, Err: err}
	}
	if digestSize < 1 {
		return "", &HashCapabilityError{
			Algorithm: req.Profile.HashAlgorithm,
			Err:       fmt.Errorf("reported digest size %d", digestSize),
		}
	}
	exponent, err := d.powers.MaxExponent(digestSize, len(alphabet))
	if err != nil {
		return "", err
	}

	chain := &hashChain{
		caps:       d.caps,
		algorithm:  req.Profile.HashAlgorithm,
		useHMAC:    req.Profile.UseHMAC,
		secret:     req.MasterSecret,
		text:       text,
		digestSize: digestSize,
	}
	var postLeet *[26]string
	switch req.Profile.LeetWhen {
	case LeetBeforeHash:
		chain.preLeet = leetTable(req.Profile.LeetLevel)
	case LeetAfterHash:
		postLeet = leetTable(req.Profile.LeetLevel)
	case LeetBeforeAndAfter:
		chain.preLeet = leetTable(req.Profile.LeetLevel)
		postLeet = leetTable(req.Profile.LeetLevel)
	}

	core, err := buildCore(chain, alphabet, exponent+1, req.Profile.Length, postLeet)
	if err != nil {
		return "", err
	}
	return req.Profile.Prefix + core + req.Profile.Suffix, nil
}

// buildCore runs the chain until enough symbols exist, then cuts the result
// to the requested grapheme count.
//
// The loop is the accumulate/check cycle: pull one digest, convert it to its
// fixed symbol count, measure, and continue only while short of the target.
// Termination is guaranteed for the plain path because every chunk yields
// symbolsPerChunk >= 1 symbols. A leeted block normally grows (replacements
// are one character or more), so the same bound holds; the iteration cap only
// exists for degenerate alphabets whose clusters merge under leet, which
// would otherwise stall the loop.
func buildCore(chain *hashChain, alphabet []string, symbolsPerChunk, length int, postLeet *[26]string) (string, error) {
	acc := newAccumulator(chain.digestSize)
	var core strings.Builder
	have := 0

	for i := 0; have < length; i++ {
		if i > length {
			return "", &EncodingError{Reason: fmt.Sprintf("no progress after %d chunks, %d of %d symbols", i, have, length)}
		}
		sum, err := chain.link(i)
		if err != nil {
			return "", err
		}
		acc.append(sum)

		block := symbolsFor(convertChunk(acc.chunk(i), len(alphabet), symbolsPerChunk), alphabet)
		if postLeet != nil {
			// Leet runs per block, before assembly. Splitting differently
			// would change context-sensitive lowercasing (word-final sigma)
			// at block boundaries and break reproducibility.
			block = leetify(postLeet, block)
			have += countGraphemes(block)
		} else {
			have += symbolsPerChunk
		}
		core.WriteString(block)
	}

	out, ok := truncateGraphemes(core.String(), length)
	if !ok {
		return "", &EncodingError{Reason: fmt.Sprintf("digest stream exhausted at %d of %d symbols", have, length)}
	}
	return out, nil
}
