package skiplist

import (
	"math/bits"
	"runtime"
	"sync/atomic"
)

// Sink receives the counters a concurrent skip list can report about its
// own operation. It is the pluggable debug/trace instrumentation point
// spec §1 calls out as an external collaborator, not specified by the
// core protocol itself. The default implementation (newShardedSink) is a
// cache-line-padded, sharded counter block; callers needing traces or a
// metrics-exporter integration can supply their own Sink via WithSink.
type Sink interface {
	IncInsertRetry()
	IncInsertSuccess()
	IncEraseRetry()
	IncEraseBusy()
	AddLen(delta int64)
	Len() int64
}

type metricShard struct {
	insertRetries   atomic.Int64
	insertSuccesses atomic.Int64
	eraseRetries    atomic.Int64
	eraseBusy       atomic.Int64
	length          atomic.Int64
	// Pad to cache line size to prevent false sharing between shards.
	_ [24]byte
}

// shardedSink is the default Sink: one metricShard per (power-of-two
// rounded) GOMAXPROCS, selected by an RNG draw so contending goroutines
// usually land on different shards.
type shardedSink struct {
	shards []metricShard
	mask   uint32
	rng    *rng
}

func newShardedSink() *shardedSink {
	shardCount := nextPowerOfTwo(runtime.GOMAXPROCS(0))
	return &shardedSink{
		shards: make([]metricShard, shardCount),
		mask:   uint32(shardCount - 1),
		rng:    newRNG(),
	}
}

func nextPowerOfTwo(v int) int {
	if v <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(v-1))
}

func (s *shardedSink) shard() *metricShard {
	if len(s.shards) == 1 {
		return &s.shards[0]
	}
	idx := uint32(s.rng.nextRandom64()) & s.mask
	return &s.shards[idx]
}

func (s *shardedSink) IncInsertRetry()   { s.shard().insertRetries.Add(1) }
func (s *shardedSink) IncInsertSuccess() { s.shard().insertSuccesses.Add(1) }
func (s *shardedSink) IncEraseRetry()    { s.shard().eraseRetries.Add(1) }
func (s *shardedSink) IncEraseBusy()     { s.shard().eraseBusy.Add(1) }
func (s *shardedSink) AddLen(d int64)    { s.shard().length.Add(d) }

func (s *shardedSink) Len() int64 {
	var total int64
	for i := range s.shards {
		total += s.shards[i].length.Load()
	}
	return total
}

// InsertStats reports total insert retries and successes across shards.
func (s *shardedSink) InsertStats() (retries, successes int64) {
	for i := range s.shards {
		retries += s.shards[i].insertRetries.Load()
		successes += s.shards[i].insertSuccesses.Load()
	}
	return retries, successes
}

// EraseStats reports total erase retries and BUSY outcomes across shards.
func (s *shardedSink) EraseStats() (retries, busy int64) {
	for i := range s.shards {
		retries += s.shards[i].eraseRetries.Load()
		busy += s.shards[i].eraseBusy.Load()
	}
	return retries, busy
}
