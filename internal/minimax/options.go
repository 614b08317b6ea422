package minimax

// Option configures a single search call.
type Option func(opts *options)

type options struct {
	maxDepth  int
	alphaBeta bool
	parallel  bool
	trace     *Trace
}

// WithMaxDepth - stops expanding after depth plies and scores the cut-off
// positions as 0. Non-positive values keep the search exhaustive.
func WithMaxDepth(depth int) Option {
	return func(opts *options) {
		if depth > 0 {
			opts.maxDepth = depth
		}
	}
}

// WithAlphaBeta - prunes branches that cannot change the root decision.
func WithAlphaBeta() Option {
	return func(opts *options) {
		opts.alphaBeta = true
	}
}

// WithParallel - evaluates the root moves in separate goroutines.
func WithParallel() Option {
	return func(opts *options) {
		opts.parallel = true
	}
}

// WithTrace - records the explored tree into trace. Meant for debugging:
// an exhaustive search from the empty board produces over half a million nodes.
func WithTrace(trace *Trace) Option {
	return func(opts *options) {
		if trace != nil {
			opts.trace = trace
		}
	}
}

func newOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
