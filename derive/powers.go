// =======================
// derive/powers.go
// =======================

package derive

import (
	"fmt"
	"math/big"
	"sync"
)

type powerKey struct {
	chunkBytes   int
	alphabetSize int
}

// PowerTable memoizes, per (digest chunk size, alphabet size), the largest
// exponent e such that alphabetSize^e still fits into the unsigned integer
// range of a chunkBytes-sized chunk. One chunk then always yields e+1 output
// symbols, regardless of its value.
//
// The table is purely an optimization: every entry is recomputable, and a
// missing entry never changes the derived password, only the speed.
// PowerTable is safe for concurrent use. Two goroutines racing on the same
// key compute the same value, so duplicate work is harmless; entries are
// never evicted or overwritten.
type PowerTable struct {
	mu      sync.RWMutex
	entries map[powerKey]int
}

// Exponents for the digest sizes (16, 20 and 32 bytes) and alphabet sizes
// that cover the common character sets: digits, hex, specials, letters,
// letters+digits, and the full printable ASCII set.
var precomputedExponents = map[powerKey]int{
	{16, 10}: 38, {16, 16}: 31, {16, 32}: 25, {16, 52}: 22, {16, 62}: 21, {16, 94}: 19,
	{20, 10}: 48, {20, 16}: 39, {20, 32}: 31, {20, 52}: 28, {20, 62}: 26, {20, 94}: 24,
	{32, 10}: 77, {32, 16}: 63, {32, 32}: 51, {32, 52}: 44, {32, 62}: 42, {32, 94}: 39,
}

// NewPowerTable returns a table pre-populated with the common entries.
func NewPowerTable() *PowerTable {
	entries := make(map[powerKey]int, len(precomputedExponents))
	for k, v := range precomputedExponents {
		entries[k] = v
	}
	return &PowerTable{entries: entries}
}

// MaxExponent returns the largest e with alphabetSize^e <= 2^(8*chunkBytes)-1,
// memoizing the result.
func (t *PowerTable) MaxExponent(chunkBytes, alphabetSize int) (int, error) {
	if chunkBytes < 1 {
		return 0, &EncodingError{Reason: fmt.Sprintf("chunk size %d is not positive", chunkBytes)}
	}
	if alphabetSize < MinAlphabetSize {
		return 0, &EncodingError{Reason: fmt.Sprintf("alphabet size %d is below %d", alphabetSize, MinAlphabetSize)}
	}

	key := powerKey{chunkBytes: chunkBytes, alphabetSize: alphabetSize}
	t.mu.RLock()
	exp, ok := t.entries[key]
	t.mu.RUnlock()
	if ok {
		return exp, nil
	}

	exp = maxFittingExponent(chunkBytes, alphabetSize)
	t.mu.Lock()
	if prev, ok := t.entries[key]; ok {
		exp = prev // keep the first stored value, both are identical anyway
	} else {
		t.entries[key] = exp
	}
	t.mu.Unlock()
	return exp, nil
}

// maxFittingExponent computes the table entry from scratch: square the power
// while that still fits, then advance by single multiplications.
func maxFittingExponent(chunkBytes, alphabetSize int) int {
	limit := new(big.Int).Lsh(big.NewInt(1), uint(8*chunkBytes))
	limit.Sub(limit, big.NewInt(1)) // 2^(8*chunkBytes) - 1

	base := big.NewInt(int64(alphabetSize))
	if base.Cmp(limit) > 0 {
		return 0
	}

	power := new(big.Int).Set(base)
	exp := 1
	for {
		squared := new(big.Int).Mul(power, power)
		if squared.Cmp(limit) > 0 {
			break
		}
		power = squared
		exp *= 2
	}
	for {
		next := new(big.Int).Mul(power, base)
		if next.Cmp(limit) > 0 {
			break
		}
		power = next
		exp++
	}
	return exp
}
