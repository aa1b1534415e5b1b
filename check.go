package calibrate

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// minChunk is the smallest number of sequences handed to one goroutine.
// Smaller searches run inline.
const minChunk = 512

// Checker decides whether equations can be satisfied with its alphabet.
// A Checker is safe for concurrent use.
type Checker struct {
	cache   *SequenceCache
	workers int
	// sem holds one token per goroutine allowed to search at once, shared
	// by every Check call on this Checker.
	sem *semaphore.Weighted

	evaluated atomic.Uint64
	active    atomic.Int64 // goroutines inside search
	peak      atomic.Int64
}

// NewChecker returns a Checker over the alphabet that searches on at most
// workers goroutines in total, however many Check calls run concurrently.
// workers <= 0 means GOMAXPROCS.
func NewChecker(a Alphabet, workers int) *Checker {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Checker{
		cache:   NewSequenceCache(a),
		workers: workers,
		sem:     semaphore.NewWeighted(int64(workers)),
	}
}

// Cache returns the checker's sequence cache.
func (c *Checker) Cache() *SequenceCache { return c.cache }

// Evaluated returns the number of candidate sequences evaluated so far.
func (c *Checker) Evaluated() uint64 { return c.evaluated.Load() }

// Check reports whether some operator sequence makes eq evaluate to its
// target, and if so returns one such calculation. The calling goroutine
// takes a worker token before searching; large searches are split into
// chunks and handed to extra goroutines only while tokens are free. Once a
// match is found the remaining candidates for eq are abandoned. If ctx is
// done before the search finishes, Check reports false.
func (c *Checker) Check(ctx context.Context, eq Equation) (Calculation, bool) {
	if len(eq.Operands) == 0 {
		return Calculation{}, false
	}
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return Calculation{}, false
	}
	defer c.sem.Release(1)

	seqs := c.cache.Sequences(len(eq.Operands))
	chunk := (len(seqs) + c.workers - 1) / c.workers
	if chunk < minChunk || c.workers == 1 {
		return c.search(ctx, eq, seqs)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	var (
		once  sync.Once
		found Calculation
		ok    bool
	)
	record := func(calc Calculation) {
		once.Do(func() { found, ok = calc, true })
		cancel()
	}
	var g errgroup.Group
	var inline [][]Sequence
	for lo := 0; lo < len(seqs); lo += chunk {
		part := seqs[lo:min(lo+chunk, len(seqs))]
		if !c.sem.TryAcquire(1) {
			inline = append(inline, part)
			continue
		}
		g.Go(func() error {
			defer c.sem.Release(1)
			if calc, hit := c.search(ctx, eq, part); hit {
				record(calc)
			}
			return nil
		})
	}
	for _, part := range inline {
		if calc, hit := c.search(ctx, eq, part); hit {
			record(calc)
			break
		}
	}
	g.Wait()
	return found, ok
}

// checkEvery is how many candidates a worker evaluates between
// cancellation checks.
const checkEvery = 256

func (c *Checker) search(ctx context.Context, eq Equation, seqs []Sequence) (Calculation, bool) {
	cur := c.active.Add(1)
	for {
		p := c.peak.Load()
		if cur <= p || c.peak.CompareAndSwap(p, cur) {
			break
		}
	}
	var n uint64
	defer func() {
		c.evaluated.Add(n)
		c.active.Add(-1)
	}()
	for i, seq := range seqs {
		if i%checkEvery == 0 && ctx.Err() != nil {
			return Calculation{}, false
		}
		n++
		v, ok := Evaluate(eq.Operands, seq)
		if ok && v == eq.Target {
			return Calculation{Equation: eq, Operators: seq, Value: v}, true
		}
	}
	return Calculation{}, false
}
