package calibrate

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	tests := []struct {
		alphabet, operands int
		want               uint64
	}{
		{2, 1, 1},
		{2, 2, 2},
		{2, 4, 8},
		{3, 1, 1},
		{3, 4, 27},
		{3, 12, 177147},
	}
	for _, tt := range tests {
		if got := Count(tt.alphabet, tt.operands); got != tt.want {
			t.Errorf("Count(%d, %d) = %d, want %d", tt.alphabet, tt.operands, got, tt.want)
		}
	}
}

func TestGenerateOrder(t *testing.T) {
	got := Generate(Part1, 3)
	want := []Sequence{
		{Add, Add},
		{Add, Multiply},
		{Multiply, Add},
		{Multiply, Multiply},
	}
	assert.Equal(t, want, got)
}

func TestGenerateIsCartesianProduct(t *testing.T) {
	for _, a := range []Alphabet{Part1, Part2} {
		for k := 1; k <= 7; k++ {
			seqs := Generate(a, k)
			require.Len(t, seqs, int(Count(len(a), k)), "alphabet %v, k=%d", a, k)
			seen := make(map[string]bool)
			for _, s := range seqs {
				require.Len(t, s, k-1)
				key := s.String()
				require.False(t, seen[key], "duplicate sequence %v", s)
				seen[key] = true
			}
		}
	}
}

func TestGenerateEdgeCases(t *testing.T) {
	assert.Equal(t, []Sequence{{}}, Generate(Part2, 1))
	assert.Nil(t, Generate(Part2, 0))
	assert.Nil(t, Generate(nil, 3))
}

func TestSequenceCacheComputesOnce(t *testing.T) {
	c := NewSequenceCache(Part2)
	const n = 16
	got := make([][]Sequence, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = c.Sequences(6)
		}()
	}
	wg.Wait()
	require.Len(t, got[0], 243)
	for i := 1; i < n; i++ {
		assert.Same(t, &got[0][0], &got[i][0], "goroutine %d saw a different slice", i)
	}
	assert.Equal(t, []int{6}, c.Lengths())
}

func TestSequenceCacheLengths(t *testing.T) {
	c := NewSequenceCache(Part1)
	assert.Empty(t, c.Lengths())
	c.Sequences(5)
	c.Sequences(3)
	c.Sequences(5)
	assert.Equal(t, []int{3, 5}, c.Lengths())
	assert.Equal(t, Part1, c.Alphabet())
}

func TestCountOverflowPanics(t *testing.T) {
	assert.Equal(t, uint64(1)<<63, Count(2, 64))
	assert.Panics(t, func() { Count(2, 65) })
	assert.Panics(t, func() { Count(3, 42) })
}

func TestGenerateOverflowPanics(t *testing.T) {
	assert.Panics(t, func() { Generate(Part2, 42) })
	// 2^62 sequences of 62 operators cannot be indexed by an int.
	assert.Panics(t, func() { Generate(Part1, 63) })
}
