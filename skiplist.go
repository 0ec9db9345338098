package skiplist

import "sync"

// DefaultFanout is the geometric-distribution denominator used when no
// WithFanout option is supplied. Expected node occupancy at layer L is
// 1/DefaultFanout^L.
const DefaultFanout = 4

// DefaultMaxLayer bounds the number of express lanes a list will use.
// It must cover log_F(expected N); 12 covers about 16.8 million
// entries (4^12) at the default fanout of 4.
const DefaultMaxLayer = 12

// Config holds a List's tunable parameters (spec §6).
type Config struct {
	// Fanout is the geometric-distribution denominator; default 4.
	Fanout int
	// MaxLayer bounds sampled top layers; default 12. The value itself is
	// not capped, but sampled top layers are clamped to 255 (spec §9's
	// single documented cap), so at most 256 layers are ever populated.
	MaxLayer int
	// Aux is an opaque value forwarded to the comparator on every call.
	Aux any
	// Sink receives insert/erase/length instrumentation. Defaults to a
	// sharded in-memory counter block if left nil.
	Sink Sink
}

// Option configures a List at construction time.
type Option func(*Config)

// WithFanout overrides the geometric-distribution denominator.
func WithFanout(fanout int) Option {
	return func(c *Config) { c.Fanout = fanout }
}

// WithMaxLayer overrides the maximum express-lane count.
func WithMaxLayer(maxLayer int) Option {
	return func(c *Config) { c.MaxLayer = maxLayer }
}

// WithAux sets the opaque value forwarded to the comparator.
func WithAux(aux any) Option {
	return func(c *Config) { c.Aux = aux }
}

// WithSink overrides the default debug/metrics sink.
func WithSink(sink Sink) Option {
	return func(c *Config) { c.Sink = sink }
}

// List is a concurrent, intrusive, ordered skip list over caller-owned
// records of type T. The zero value is not usable; construct with New.
//
// List never allocates or copies a caller's record: Insert/EraseNode
// operate on *Node[T] the caller constructs with NewNode and owns for as
// long as the node may be reachable from a concurrent reader (spec §3,
// "Ownership"). Reclaiming node memory after a successful EraseNode is
// the caller's responsibility; this package does no memory reclamation.
type List[T any] struct {
	head, tail *Node[T]

	less Comparator[T]
	aux  any

	fanout   int
	maxLayer int

	rng  *rng
	sink Sink

	scratchPool sync.Pool
}

// New constructs an empty List, wiring head and tail sentinels at every
// layer and binding the comparator. Equivalent to the original's init +
// set_config folded into one call, Go idiom preferring functional options
// over a separate set_config round trip.
func New[T any](less Comparator[T], opts ...Option) *List[T] {
	cfg := Config{
		Fanout:   DefaultFanout,
		MaxLayer: DefaultMaxLayer,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Fanout <= 0 {
		cfg.Fanout = DefaultFanout
	}
	if cfg.MaxLayer <= 0 {
		cfg.MaxLayer = DefaultMaxLayer
	}
	if cfg.Sink == nil {
		cfg.Sink = newShardedSink()
	}

	head, tail := newSentinels[T](cfg.MaxLayer)
	return &List[T]{
		head:     head,
		tail:     tail,
		less:     less,
		aux:      cfg.Aux,
		fanout:   cfg.Fanout,
		maxLayer: cfg.MaxLayer,
		rng:      newRNG(),
		sink:     cfg.Sink,
	}
}

// Config reports the list's current configuration (spec's get_config).
func (l *List[T]) Config() Config {
	return Config{Fanout: l.fanout, MaxLayer: l.maxLayer, Aux: l.aux, Sink: l.sink}
}

// SetConfig updates the aux value and debug sink in place. Fanout and
// MaxLayer are intentionally not mutable after construction: every live
// node's forward array was sized against MaxLayer at insertion time, and
// changing Fanout mid-flight would silently skew the height distribution
// of nodes inserted before vs. after the change.
func (l *List[T]) SetConfig(aux any, sink Sink) {
	l.aux = aux
	if sink != nil {
		l.sink = sink
	}
}

// Len returns the number of live nodes currently in the list.
func (l *List[T]) Len() int64 {
	return l.sink.Len()
}
