package morph

import (
	"log/slog"
	"math"
	"runtime"
	"strconv"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// CacheStats describes the state of one slot cache.
type CacheStats struct {
	// Slots is the number of slots, smoothness + 1.
	Slots int
	// Filled is the number of slots holding a computed shape.
	Filled int
	// Requests is the number of lookups.
	Requests uint64
	// Misses is the number of lookups that computed a shape.
	Misses uint64
	// HitRate is the fraction of lookups served from the cache.
	HitRate float64
}

// slotCache memoizes shapes over a fixed discretization of [0, 1].
//
// Each slot is computed at most once, at the slot's own fraction, so the
// cached value does not depend on which fraction first hit the slot.
// Concurrent misses of one slot wait for a single computation.
type slotCache struct {
	smoothness int
	slots      []atomic.Pointer[[]Command]
	compute    func(fraction float64) []Command
	flight     singleflight.Group

	requests atomic.Uint64
	misses   atomic.Uint64
}

func newSlotCache(smoothness int, compute func(float64) []Command) *slotCache {
	return &slotCache{
		smoothness: smoothness,
		slots:      make([]atomic.Pointer[[]Command], smoothness+1),
		compute:    compute,
	}
}

// slot returns the index of the slot covering fraction. Fractions outside of
// [0, 1] are clamped, NaN maps to slot 0.
func (c *slotCache) slot(fraction float64) int {
	return slotIndex(fraction, c.smoothness)
}

func slotIndex(fraction float64, smoothness int) int {
	if !(fraction > 0) {
		return 0
	}
	if fraction > 1 {
		return smoothness
	}
	return int(math.Round(fraction * float64(smoothness)))
}

// fraction returns the fraction at which slot i is computed. The endpoints
// are exactly 0 and 1.
func (c *slotCache) fraction(i int) float64 {
	if i == c.smoothness {
		return 1
	}
	return float64(i) / float64(c.smoothness)
}

// get returns the shape for the slot covering fraction, computing it on the
// first request.
func (c *slotCache) get(fraction float64) []Command {
	c.requests.Add(1)
	return c.load(c.slot(fraction), true)
}

// load returns slot i, computing it if necessary. miss reports whether a
// computation counts as a cache miss.
func (c *slotCache) load(i int, miss bool) []Command {
	if p := c.slots[i].Load(); p != nil {
		return *p
	}
	v, _, _ := c.flight.Do(strconv.Itoa(i), func() (any, error) {
		if p := c.slots[i].Load(); p != nil {
			return *p, nil
		}
		if miss {
			c.misses.Add(1)
			logAttrs(componentCache, slog.LevelDebug, "cache miss",
				slog.Int("slot", i), slog.Int("smoothness", c.smoothness))
		}
		cmds := c.compute(c.fraction(i))
		c.slots[i].Store(&cmds)
		return cmds, nil
	})
	return v.([]Command)
}

// fill computes slot i without counting a request.
func (c *slotCache) fill(i int) {
	c.load(i, false)
}

func (c *slotCache) stats() CacheStats {
	requests := c.requests.Load()
	misses := c.misses.Load()
	var hitRate float64
	if requests > 0 {
		hitRate = float64(requests-misses) / float64(requests)
	}
	filled := 0
	for i := range c.slots {
		if c.slots[i].Load() != nil {
			filled++
		}
	}
	return CacheStats{
		Slots:    len(c.slots),
		Filled:   filled,
		Requests: requests,
		Misses:   misses,
		HitRate:  hitRate,
	}
}

// AnimationData caches the interpolated shapes of a [PathData] at
// smoothness+1 evenly spaced fractions. It is safe for concurrent use.
type AnimationData struct {
	smoothness    int
	paired        *slotCache
	unpairedStart *slotCache
	unpairedEnd   *slotCache
}

// NewAnimationData creates a cache for pd with smoothness+1 slots per
// shape. The slots for fraction 0 and 1 are filled immediately, all others
// on first request. smoothness must be positive.
func NewAnimationData(pd *PathData, smoothness int) *AnimationData {
	ad := &AnimationData{
		smoothness:    smoothness,
		paired:        newSlotCache(smoothness, pd.PairedCommands),
		unpairedStart: newSlotCache(smoothness, pd.UnpairedStartCommands),
		unpairedEnd:   newSlotCache(smoothness, pd.UnpairedEndCommands),
	}
	for _, c := range ad.caches() {
		c.fill(0)
		c.fill(smoothness)
	}
	return ad
}

func (ad *AnimationData) caches() [3]*slotCache {
	return [3]*slotCache{ad.paired, ad.unpairedStart, ad.unpairedEnd}
}

// Precompute fills every slot, using up to GOMAXPROCS goroutines.
func (ad *AnimationData) Precompute() {
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, c := range ad.caches() {
		for i := range c.slots {
			g.Go(func() error {
				c.fill(i)
				return nil
			})
		}
	}
	// fill never fails
	_ = g.Wait()
	logAttrs(componentCache, slog.LevelDebug, "precomputed animation data", slog.Int("smoothness", ad.smoothness))
}

// Smoothness returns the number of steps the fraction range is divided into.
func (ad *AnimationData) Smoothness() int { return ad.smoothness }

// Slot returns the index of the slot that serves fraction, which is
// round(fraction * smoothness) after clamping fraction to [0, 1].
func (ad *AnimationData) Slot(fraction float64) int {
	return slotIndex(fraction, ad.smoothness)
}

// Paired returns the paired subpaths at fraction.
func (ad *AnimationData) Paired(fraction float64) []Command {
	return ad.paired.get(fraction)
}

// UnpairedStart returns the start shape's unpaired subpaths at the given
// fade progress.
func (ad *AnimationData) UnpairedStart(progress float64) []Command {
	return ad.unpairedStart.get(progress)
}

// UnpairedEnd returns the end shape's unpaired subpaths at the given fade
// progress.
func (ad *AnimationData) UnpairedEnd(progress float64) []Command {
	return ad.unpairedEnd.get(progress)
}

// AnimationStats holds the statistics of the three shape caches.
type AnimationStats struct {
	Paired        CacheStats
	UnpairedStart CacheStats
	UnpairedEnd   CacheStats
}

// Stats returns current cache statistics.
func (ad *AnimationData) Stats() AnimationStats {
	return AnimationStats{
		Paired:        ad.paired.stats(),
		UnpairedStart: ad.unpairedStart.stats(),
		UnpairedEnd:   ad.unpairedEnd.stats(),
	}
}
