package derive

import "fmt"

// validate checks every Profile constraint and returns the alphabet split
// into its grapheme clusters. All checks happen before any hashing.
func (p *Profile) validate() ([]string, error) {
	if p.Length < 1 {
		return nil, &ValidationError{Field: "length", Reason: fmt.Sprintf("must be at least 1, got %d", p.Length)}
	}
	if p.LeetLevel < MinLeetLevel || p.LeetLevel > MaxLeetLevel {
		return nil, &ValidationError{Field: "leetLevel", Reason: fmt.Sprintf("must be in [%d, %d], got %d", MinLeetLevel, MaxLeetLevel, p.LeetLevel)}
	}
	switch p.LeetWhen {
	case LeetNone, LeetBeforeHash, LeetAfterHash, LeetBeforeAndAfter:
	default:
		return nil, &ValidationError{Field: "leetWhen", Reason: fmt.Sprintf("unknown policy %d", p.LeetWhen)}
	}
	switch p.Subdomains {
	case FullDomain, OneSubdomainLevel, DomainOnly:
	default:
		return nil, &ValidationError{Field: "subdomainPolicy", Reason: fmt.Sprintf("unknown policy %d", p.Subdomains)}
	}
	if p.HashAlgorithm == "" {
		return nil, &ValidationError{Field: "hashAlgorithm", Reason: "must not be empty"}
	}

	alphabet := splitGraphemes(p.Alphabet)
	if len(alphabet) < MinAlphabetSize {
		return nil, &ValidationError{Field: "alphabet", Reason: fmt.Sprintf("needs at least %d symbols, got %d", MinAlphabetSize, len(alphabet))}
	}
	// A duplicate symbol would make two distinct indices map to the same
	// output character, skewing the conversion.
	seen := make(map[string]struct{}, len(alphabet))
	for _, symbol := range alphabet {
		if _, dup := seen[symbol]; dup {
			return nil, &ValidationError{Field: "alphabet", Reason: fmt.Sprintf("duplicate symbol %q", symbol)}
		}
		seen[symbol] = struct{}{}
	}
	return alphabet, nil
}
