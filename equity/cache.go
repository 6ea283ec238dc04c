package equity

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"

	"github.com/domino14/morris/board"
	"github.com/domino14/morris/zobrist"
)

const (
	entrySize = 16
	// The table always holds between 2^minSizePowerOf2 and
	// 2^maxSizePowerOf2 entries.
	minSizePowerOf2 = 12
	maxSizePowerOf2 = 24
)

// 16 bytes (entrySize)
type cacheEntry struct {
	key   uint64
	score int32
	valid bool
}

type TableLock interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()
}

type FakeLock struct{}

func (f FakeLock) Lock()    {}
func (f FakeLock) Unlock()  {}
func (f FakeLock) RLock()   {}
func (f FakeLock) RUnlock() {}

// EvalCache memoizes static evaluations keyed by the zobrist hash of the
// position. Entries are overwritten on index collisions; the full key is
// stored so a colliding entry is never returned for the wrong position.
type EvalCache struct {
	TableLock
	table        []cacheEntry
	sizePowerOf2 int
	sizeMask     uint64
	zobrist      *zobrist.Zobrist

	created atomic.Uint64
	lookups atomic.Uint64
	hits    atomic.Uint64
}

// NewEvalCache sizes the table to roughly fractionOfMemory of system
// memory.
func NewEvalCache(fractionOfMemory float64) *EvalCache {
	c := &EvalCache{}
	c.SetSingleThreadedMode()
	c.Reset(fractionOfMemory)
	return c
}

func (c *EvalCache) SetSingleThreadedMode() {
	c.TableLock = &FakeLock{}
}

func (c *EvalCache) SetMultiThreadedMode() {
	c.TableLock = new(sync.RWMutex)
}

func (c *EvalCache) Reset(fractionOfMemory float64) {
	c.Lock()
	defer c.Unlock()
	totalMem := memory.TotalMemory()
	desiredNElems := fractionOfMemory * (float64(totalMem) / float64(entrySize))
	if desiredNElems < 1 {
		desiredNElems = 1
	}
	c.sizePowerOf2 = int(math.Log2(desiredNElems))
	if c.sizePowerOf2 < minSizePowerOf2 {
		c.sizePowerOf2 = minSizePowerOf2
	}
	if c.sizePowerOf2 > maxSizePowerOf2 {
		c.sizePowerOf2 = maxSizePowerOf2
	}
	numElems := 1 << c.sizePowerOf2
	c.sizeMask = uint64(numElems - 1)
	if c.table != nil && len(c.table) == numElems {
		clear(c.table)
	} else {
		c.table = make([]cacheEntry, numElems)
	}
	if c.zobrist == nil {
		c.zobrist = &zobrist.Zobrist{}
		c.zobrist.Initialize()
	}
	log.Debug().Int("num-elems", numElems).
		Float64("desired-num-elems", desiredNElems).
		Uint64("total-system-memory-bytes", totalMem).
		Msg("eval-cache-size")

	c.created.Store(0)
	c.lookups.Store(0)
	c.hits.Store(0)
}

func (c *EvalCache) lookup(key uint64) (int, bool) {
	c.RLock()
	defer c.RUnlock()
	c.lookups.Add(1)
	e := c.table[key&c.sizeMask]
	if !e.valid || e.key != key {
		return 0, false
	}
	c.hits.Add(1)
	return int(e.score), true
}

func (c *EvalCache) store(key uint64, score int) {
	c.Lock()
	defer c.Unlock()
	c.table[key&c.sizeMask] = cacheEntry{key: key, score: int32(score), valid: true}
	c.created.Add(1)
}

// Stats returns the number of lookups and hits since the last reset.
func (c *EvalCache) Stats() (lookups, hits uint64) {
	return c.lookups.Load(), c.hits.Load()
}

// CachedCalculator wraps a Calculator with an EvalCache. Each wrapped
// calculator needs its own cache, since scores from different evaluators
// are not interchangeable.
type CachedCalculator struct {
	Calculator
	cache *EvalCache
}

func NewCachedCalculator(calc Calculator, cache *EvalCache) *CachedCalculator {
	return &CachedCalculator{Calculator: calc, cache: cache}
}

func (cc *CachedCalculator) Evaluate(pos board.Position) int {
	key := cc.cache.zobrist.Hash(pos)
	if score, ok := cc.cache.lookup(key); ok {
		return score
	}
	score := cc.Calculator.Evaluate(pos)
	cc.cache.store(key, score)
	return score
}

func (cc *CachedCalculator) Cache() *EvalCache {
	return cc.cache
}
