package cache_test

import (
	"fmt"
	"testing"
	"time"

	cache "github.com/antony0531/real-estate-tracker-sub002"
	"github.com/antony0531/real-estate-tracker-sub002/engine"
	"github.com/antony0531/real-estate-tracker-sub002/expiration"
)

func newBenchmarkCache() *cache.Cache {
	eng := engine.NewEngine(expiration.ExpireAfterWrite{}, nil, nil, engine.TTLs{})
	return cache.New(eng)
}

//
// ================= SINGLE THREAD BENCH =================
//

func BenchmarkSet(b *testing.B) {
	c := newBenchmarkCache()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Set(fmt.Sprintf("k%d", i%1000), i, time.Hour)
	}
}

func BenchmarkGetHit(b *testing.B) {
	c := newBenchmarkCache()
	for i := 0; i < 1000; i++ {
		c.Set(fmt.Sprintf("k%d", i), i, time.Hour)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get(fmt.Sprintf("k%d", i%1000))
	}
}

func BenchmarkInvalidateSweep(b *testing.B) {
	c := newBenchmarkCache()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		for j := int64(0); j < 500; j++ {
			c.SetExpenses(j, nil)
		}
		b.StartTimer()
		c.InvalidateExpenses()
	}
}

//
// ================= PARALLEL BENCH =================
//

func BenchmarkParallelGet(b *testing.B) {
	c := newBenchmarkCache()
	for i := 0; i < 1000; i++ {
		c.Set(fmt.Sprintf("k%d", i), i, time.Hour)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			c.Get(fmt.Sprintf("k%d", i%1000))
			i++
		}
	})
}
