package derive

import (
	"math/big"
	"strings"
)

// convertChunk expands one digest chunk into exactly `digits` alphabet
// indices, most significant first. The digit count depends only on the chunk
// size and the alphabet size, never on the chunk's value: leading zeros are
// kept, so every chunk contributes the same number of symbols.
func convertChunk(chunk []byte, alphabetSize, digits int) []int {
	value := new(big.Int).SetBytes(chunk) // big-endian unsigned
	base := big.NewInt(int64(alphabetSize))
	rem := new(big.Int)

	out := make([]int, digits)
	for i := digits - 1; i >= 0; i-- {
		value.QuoRem(value, base, rem)
		out[i] = int(rem.Int64())
	}
	return out
}

// symbolsFor maps alphabet indices to their symbols.
func symbolsFor(indices []int, alphabet []string) string {
	var b strings.Builder
	for _, idx := range indices {
		b.WriteString(alphabet[idx])
	}
	return b.String()
}
