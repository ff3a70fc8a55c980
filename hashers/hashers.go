// Package hashers provides a hash capability backed by the digest algorithms
// the reference password generator supports. It lives outside the derive
// package so the derivation core stays free of concrete digest dependencies;
// callers who need other algorithms can supply their own capability instead.
package hashers

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"fmt"
	"hash"

	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/ripemd160"
)

// Algorithm identifiers accepted by Capability.
const (
	MD4       = "md4"
	MD5       = "md5"
	SHA1      = "sha1"
	SHA256    = "sha256"
	RIPEMD160 = "ripemd160"
)

// Capability implements the derive package's HashCapability interface. The
// zero value is ready to use and safe for concurrent use.
type Capability struct{}

// New returns a ready-to-use capability.
func New() Capability { return Capability{} }

func constructor(algorithm string) (func() hash.Hash, error) {
	switch algorithm {
	case MD4:
		return md4.New, nil
	case MD5:
		return md5.New, nil
	case SHA1:
		return sha1.New, nil
	case SHA256:
		return sha256.New, nil
	case RIPEMD160:
		return ripemd160.New, nil
	}
	return nil, fmt.Errorf("unknown hash algorithm %q", algorithm)
}

// Digest computes the plain digest of message.
func (Capability) Digest(algorithm string, message []byte) ([]byte, error) {
	newHash, err := constructor(algorithm)
	if err != nil {
		return nil, err
	}
	h := newHash()
	h.Write(message)
	return h.Sum(nil), nil
}

// HMAC computes the keyed digest of message under key.
func (Capability) HMAC(algorithm string, key, message []byte) ([]byte, error) {
	newHash, err := constructor(algorithm)
	if err != nil {
		return nil, err
	}
	m := hmac.New(newHash, key)
	m.Write(message)
	return m.Sum(nil), nil
}

// Size reports the digest size of the algorithm in bytes.
func (Capability) Size(algorithm string) (int, error) {
	newHash, err := constructor(algorithm)
	if err != nil {
		return 0, err
	}
	return newHash().Size(), nil
}
