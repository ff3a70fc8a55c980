package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertChunk(t *testing.T) {
	tests := []struct {
		name         string
		chunk        []byte
		alphabetSize int
		digits       int
		want         []int
	}{
		{
			name:         "keeps leading zeros",
			chunk:        []byte{0x41},
			alphabetSize: 2,
			digits:       8,
			want:         []int{0, 1, 0, 0, 0, 0, 0, 1},
		},
		{
			name:         "zero chunk is all zero symbols",
			chunk:        []byte{0x00, 0x00},
			alphabetSize: 10,
			digits:       5,
			want:         []int{0, 0, 0, 0, 0},
		},
		{
			name:         "max chunk in decimal",
			chunk:        []byte{0xFF, 0xFF},
			alphabetSize: 10,
			digits:       5,
			want:         []int{6, 5, 5, 3, 5}, // 65535
		},
		{
			name:         "big endian byte order",
			chunk:        []byte{0x01, 0x00},
			alphabetSize: 10,
			digits:       5,
			want:         []int{0, 0, 2, 5, 6}, // 256, not 1
		},
		{
			name:         "base larger than chunk range",
			chunk:        []byte{0x2A},
			alphabetSize: 300,
			digits:       1,
			want:         []int{42},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, convertChunk(tt.chunk, tt.alphabetSize, tt.digits))
		})
	}
}

func TestSymbolsFor(t *testing.T) {
	assert.Equal(t, "01000001", symbolsFor([]int{0, 1, 0, 0, 0, 0, 0, 1}, []string{"0", "1"}))
	assert.Equal(t, "cab", symbolsFor([]int{2, 0, 1}, []string{"a", "b", "c"}))
	assert.Equal(t, "", symbolsFor(nil, []string{"a", "b"}))

	// Symbols may be multi-codepoint clusters.
	flags := []string{"á", "b̈"}
	assert.Equal(t, "áb̈á", symbolsFor([]int{0, 1, 0}, flags))
}
