package derive

// HashCapability supplies the digest primitives the derivation chains
// together. Implementations must be deterministic: the same algorithm and
// input always produce the same output, and the output size per algorithm is
// fixed.
//
// Implementations must be safe for concurrent use; a single capability is
// typically shared by all derivations of a Deriver.
type HashCapability interface {
	// Digest computes the plain digest of message.
	Digest(algorithm string, message []byte) ([]byte, error)

	// HMAC computes the keyed digest of message under key.
	HMAC(algorithm string, key, message []byte) ([]byte, error)

	// Size reports the fixed digest size of the algorithm, in bytes.
	Size(algorithm string) (int, error)
}
