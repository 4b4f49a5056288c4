package morph

import (
	"math"
	"sync"
	"testing"
)

func TestSlotIndex(t *testing.T) {
	tests := []struct {
		fraction float64
		want     int
	}{
		{0, 0},
		{0.0049, 0},
		{0.005, 1},
		{0.0051, 1},
		{0.5, 50},
		{0.994, 99},
		{0.996, 100},
		{1, 100},
		{-0.5, 0},
		{1.5, 100},
		{math.NaN(), 0},
		{math.Inf(1), 100},
	}
	for _, tt := range tests {
		if got := slotIndex(tt.fraction, 100); got != tt.want {
			t.Errorf("slotIndex(%v, 100) = %d, want %d", tt.fraction, got, tt.want)
		}
	}
}

func TestAnimationDataEndpointsEager(t *testing.T) {
	ad := NewAnimationData(NewPathData(twoSquares(), oneCircle(), Sz(10, 10)), 10)
	for _, st := range []CacheStats{ad.Stats().Paired, ad.Stats().UnpairedStart, ad.Stats().UnpairedEnd} {
		if st.Slots != 11 || st.Filled != 2 || st.Requests != 0 || st.Misses != 0 {
			t.Errorf("unexpected stats after construction: %+v", st)
		}
	}
	ad.Paired(0)
	ad.Paired(1)
	if st := ad.Stats().Paired; st.Misses != 0 || st.HitRate != 1 {
		t.Errorf("endpoints should be cache hits: %+v", st)
	}
}

func TestAnimationDataMemoizes(t *testing.T) {
	ad := NewAnimationData(NewPathData(twoSquares(), oneCircle(), Sz(10, 10)), 100)
	a := ad.Paired(0.5)
	b := ad.Paired(0.5)
	if &a[0] != &b[0] {
		t.Error("second request should return the cached shape")
	}
	st := ad.Stats().Paired
	if st.Requests != 2 || st.Misses != 1 || st.Filled != 3 {
		t.Errorf("unexpected stats: %+v", st)
	}
}

func TestAnimationDataComputesAtSlotFraction(t *testing.T) {
	pd := NewPathData(twoSquares(), oneCircle(), Sz(10, 10))
	ad := NewAnimationData(pd, 100)
	diff(t, pd.PairedCommands(0.5), ad.Paired(0.504))
	diff(t, pd.PairedCommands(0.5), ad.Paired(0.496))
}

func TestAnimationDataConcurrentMiss(t *testing.T) {
	ad := NewAnimationData(NewPathData(twoSquares(), oneCircle(), Sz(10, 10)), 100)
	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ad.Paired(0.37)
		}()
	}
	wg.Wait()
	st := ad.Stats().Paired
	if st.Requests != 32 || st.Misses != 1 {
		t.Errorf("got %d requests and %d misses, want 32 and 1", st.Requests, st.Misses)
	}
}

func TestAnimationDataPrecompute(t *testing.T) {
	ad := NewAnimationData(NewPathData(twoSquares(), oneCircle(), Sz(10, 10)), 20)
	ad.Precompute()
	for _, st := range []CacheStats{ad.Stats().Paired, ad.Stats().UnpairedStart, ad.Stats().UnpairedEnd} {
		if st.Filled != st.Slots || st.Misses != 0 {
			t.Errorf("unexpected stats after precomputing: %+v", st)
		}
	}
}
