package derive

import (
	"fmt"
	"strconv"
	"unicode/utf16"
)

// hashChain produces the digest sequence for one derivation. Each link is an
// independent invocation of the capability over the same assembled text, made
// distinct by a trailer appended to the master secret, so that requesting more
// output never repeats bytes.
type hashChain struct {
	caps       HashCapability
	algorithm  string
	useHMAC    bool
	preLeet    *[26]string // nil when the pre-hash leet pass is off
	secret     string
	text       string
	digestSize int
}

// link computes digest number i of the chain.
//
// Link 0 uses the master secret as-is; link i uses secret + "\n" + i. For the
// plain path the secret is prepended to the text and the whole concatenation
// is leeted and hashed as UTF-8. For the HMAC path, secret and text are leeted
// independently (leet(secret)+leet(text) != leet(secret+text)) and encoded as
// the low bytes of their UTF-16 code units before keying. Both choices are
// fixed by the output format.
func (c *hashChain) link(i int) ([]byte, error) {
	secret := c.secret
	if i > 0 {
		secret = secret + "\n" + strconv.Itoa(i)
	}

	var sum []byte
	var err error
	if c.useHMAC {
		key, msg := secret, c.text
		if c.preLeet != nil {
			key = leetify(c.preLeet, key)
			msg = leetify(c.preLeet, msg)
		}
		sum, err = c.caps.HMAC(c.algorithm, utf16LowBytes(key), utf16LowBytes(msg))
	} else {
		msg := secret + c.text
		if c.preLeet != nil {
			msg = leetify(c.preLeet, msg)
		}
		sum, err = c.caps.Digest(c.algorithm, []byte(msg))
	}
	if err != nil {
		return nil, &HashCapabilityError{Algorithm: c.algorithm, Err: err}
	}
	if len(sum) != c.digestSize {
		return nil, &HashCapabilityError{
			Algorithm: c.algorithm,
			Err:       fmt.Errorf("digest is %d bytes, capability promised %d", len(sum), c.digestSize),
		}
	}
	return sum, nil
}

// utf16LowBytes encodes s as UTF-16 code units and keeps only the low byte
// of each unit. This is lossy on purpose; the reference algorithm feeds its
// keyed digests exactly these bytes.
func utf16LowBytes(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, len(units))
	for i, u := range units {
		out[i] = byte(u)
	}
	return out
}

// digestAccumulator collects the chain's digests for one derivation call. It
// only ever grows, chunk by chunk, and is discarded when the call returns.
type digestAccumulator struct {
	buf       []byte
	chunkSize int
}

func newAccumulator(chunkSize int) *digestAccumulator {
	return &digestAccumulator{chunkSize: chunkSize}
}

func (a *digestAccumulator) append(chunk []byte) {
	a.buf = append(a.buf, chunk...)
}

func (a *digestAccumulator) chunks() int {
	return len(a.buf) / a.chunkSize
}

func (a *digestAccumulator) chunk(i int) []byte {
	return a.buf[i*a.chunkSize : (i+1)*a.chunkSize]
}
