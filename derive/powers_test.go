package derive

import (
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxExponentKnownValues(t *testing.T) {
	table := NewPowerTable()

	tests := []struct {
		chunkBytes   int
		alphabetSize int
		want         int
	}{
		{1, 2, 7},    // 2^7 = 128 <= 255
		{1, 16, 1},   // 16^2 = 256 > 255
		{1, 255, 1},  // equal to the limit still fits
		{1, 256, 0},  // one symbol already exceeds a byte
		{2, 10, 4},   // 10^4 = 10000 <= 65535
		{16, 36, 24}, // md5 against letters+digits
		{16, 94, 19},
		{20, 94, 24},
		{32, 94, 39},
		{32, 2, 255},
	}
	for _, tt := range tests {
		got, err := table.MaxExponent(tt.chunkBytes, tt.alphabetSize)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "chunk %d bytes, alphabet %d", tt.chunkBytes, tt.alphabetSize)
	}
}

func TestPrecomputedExponentsMatchComputation(t *testing.T) {
	for key, want := range precomputedExponents {
		assert.Equal(t, want, maxFittingExponent(key.chunkBytes, key.alphabetSize),
			"precomputed entry for chunk %d, alphabet %d drifted", key.chunkBytes, key.alphabetSize)
	}
}

func TestMaxExponentDefinition(t *testing.T) {
	// Check the defining inequality directly: base^e <= 2^(8n)-1 < base^(e+1).
	table := NewPowerTable()
	for _, chunkBytes := range []int{1, 2, 3, 16, 20, 32} {
		for _, alphabetSize := range []int{2, 3, 10, 36, 64, 94, 1000} {
			exp, err := table.MaxExponent(chunkBytes, alphabetSize)
			require.NoError(t, err)

			limit := new(big.Int).Lsh(big.NewInt(1), uint(8*chunkBytes))
			limit.Sub(limit, big.NewInt(1))
			base := big.NewInt(int64(alphabetSize))
			power := new(big.Int).Exp(base, big.NewInt(int64(exp)), nil)
			if exp > 0 {
				assert.LessOrEqual(t, power.Cmp(limit), 0)
			}
			next := new(big.Int).Mul(power, base)
			assert.Greater(t, next.Cmp(limit), 0)
		}
	}
}

func TestMaxExponentRejectsBadInput(t *testing.T) {
	table := NewPowerTable()
	for _, tt := range []struct{ chunkBytes, alphabetSize int }{
		{0, 10}, {-1, 10}, {16, 1}, {16, 0}, {16, -5},
	} {
		_, err := table.MaxExponent(tt.chunkBytes, tt.alphabetSize)
		var eerr *EncodingError
		assert.ErrorAs(t, err, &eerr)
	}
}

func TestPowerTableConcurrent(t *testing.T) {
	table := NewPowerTable()

	// An uncached key hammered from many goroutines must give every caller
	// the same answer.
	const workers = 32
	results := make([]int, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = table.MaxExponent(7, 36)
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, 10, results[i]) // 36^10 < 2^56 <= 36^11
	}
}
