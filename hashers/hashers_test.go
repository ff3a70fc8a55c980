package hashers

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigestKnownVectors(t *testing.T) {
	caps := New()

	tests := []struct {
		algorithm string
		input     string
		want      string
	}{
		{MD4, "abc", "a448017aaf21d8525fc10ae87aa6729d"},
		{MD5, "abc", "900150983cd24fb0d6963f7d28e17f72"},
		{SHA1, "abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{SHA256, "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{RIPEMD160, "abc", "8eb208f7e05d987a9b044a8e98c6b087f15a0bfc"},
		{MD5, "", "d41d8cd98f00b204e9800998ecf8427e"},
	}
	for _, tt := range tests {
		t.Run(tt.algorithm+"/"+tt.input, func(t *testing.T) {
			sum, err := caps.Digest(tt.algorithm, []byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, hex.EncodeToString(sum))
		})
	}
}

func TestHMACKnownVectors(t *testing.T) {
	caps := New()

	// RFC 2202 and RFC 4231, test case 1.
	key := bytes.Repeat([]byte{0x0b}, 20)
	message := []byte("Hi There")

	tests := []struct {
		algorithm string
		key       []byte
		want      string
	}{
		{MD5, bytes.Repeat([]byte{0x0b}, 16), "9294727a3638bb1c13f48ef8158bfc9d"},
		{SHA1, key, "b617318655057264e28bc0b6fb378c8ef146be00"},
		{SHA256, key, "b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff7"},
	}
	for _, tt := range tests {
		t.Run(tt.algorithm, func(t *testing.T) {
			sum, err := caps.HMAC(tt.algorithm, tt.key, message)
			require.NoError(t, err)
			assert.Equal(t, tt.want, hex.EncodeToString(sum))
		})
	}
}

func TestSize(t *testing.T) {
	caps := New()

	sizes := map[string]int{
		MD4:       16,
		MD5:       16,
		SHA1:      20,
		SHA256:    32,
		RIPEMD160: 20,
	}
	for algorithm, want := range sizes {
		got, err := caps.Size(algorithm)
		require.NoError(t, err)
		assert.Equal(t, want, got, algorithm)

		// The reported size must match what Digest actually produces.
		sum, err := caps.Digest(algorithm, []byte("x"))
		require.NoError(t, err)
		assert.Len(t, sum, want, algorithm)
	}
}

func TestUnknownAlgorithm(t *testing.T) {
	caps := New()

	_, err := caps.Digest("whirlpool", []byte("x"))
	assert.Error(t, err)
	_, err = caps.HMAC("whirlpool", []byte("k"), []byte("x"))
	assert.Error(t, err)
	_, err = caps.Size("whirlpool")
	assert.Error(t, err)
}
