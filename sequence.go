package calibrate

import (
	"fmt"
	"math"
	"slices"
	"sync"

	"tailscale.com/syncs"
)

// Sequence is the list of operators placed between consecutive operands.
// A Sequence for k operands has length k-1.
type Sequence []Operator

func (s Sequence) String() string {
	return fmt.Sprint([]Operator(s))
}

// Count returns the number of distinct operator sequences for an equation
// with the given number of operands over an alphabet of the given size. It
// panics if the count does not fit in a uint64.
func Count(alphabetSize, operands int) uint64 {
	n := uint64(1)
	for i := 1; i < operands; i++ {
		var ok bool
		if n, ok = checkedMul(n, uint64(alphabetSize)); !ok {
			panic(fmt.Sprintf("%d^%d operator sequences overflow a uint64", alphabetSize, operands-1))
		}
	}
	return n
}

// Generate returns every operator sequence for an equation with k operands.
// Sequences are ordered like an odometer over a: the first operator varies
// slowest.
func Generate(a Alphabet, k int) []Sequence {
	if k < 1 {
		return nil
	}
	if len(a) == 0 {
		if k == 1 {
			return []Sequence{{}}
		}
		return nil
	}
	n := k - 1
	total := Count(len(a), k)
	if total > uint64(math.MaxInt/max(n, 1)) {
		panic(fmt.Sprintf("%d operator sequences of length %d do not fit in memory", total, n))
	}
	// One backing array for all sequences.
	backing := make([]Operator, int(total)*n)
	out := make([]Sequence, total)
	digits := make([]int, n)
	for i := range out {
		seq := Sequence(backing[i*n : (i+1)*n : (i+1)*n])
		for j, d := range digits {
			seq[j] = a[d]
		}
		out[i] = seq
		// Increment, least significant digit last.
		for j := n - 1; j >= 0; j-- {
			digits[j]++
			if digits[j] < len(a) {
				break
			}
			digits[j] = 0
		}
	}
	return out
}

// SequenceCache memoizes Generate by operand count for a single alphabet.
// It is safe for concurrent use; each length is generated at most once.
type SequenceCache struct {
	alphabet Alphabet
	m        syncs.Map[int, func() []Sequence]
}

// NewSequenceCache returns an empty cache for the alphabet.
func NewSequenceCache(a Alphabet) *SequenceCache {
	return &SequenceCache{alphabet: slices.Clone(a)}
}

// Alphabet returns the operators the cache generates sequences from.
func (c *SequenceCache) Alphabet() Alphabet {
	return c.alphabet
}

// Sequences returns all operator sequences for k operands. The result is
// shared and must not be modified.
func (c *SequenceCache) Sequences(k int) []Sequence {
	if f, ok := c.m.Load(k); ok {
		return f()
	}
	f, _ := c.m.LoadOrStore(k, sync.OnceValue(func() []Sequence {
		return Generate(c.alphabet, k)
	}))
	return f()
}

// Lengths returns the operand counts that have been requested so far, in
// ascending order.
func (c *SequenceCache) Lengths() []int {
	var ks []int
	c.m.Range(func(k int, _ func() []Sequence) bool {
		ks = append(ks, k)
		return true
	})
	slices.Sort(ks)
	return ks
}
