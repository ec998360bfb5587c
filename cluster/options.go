package cluster

import (
	"math/rand"

	"github.com/hupe1980/estigo"
	"github.com/hupe1980/estigo/distance"
)

type options struct {
	batchSize int
	minChange int
	maxEpochs int
	kernel    distance.Kernel
	metric    *distance.Metric
	rng       *rand.Rand
	logger    *estigo.Logger
}

// Option configures MiniBatchKMeans construction. All numeric parameters
// are validated eagerly by the constructor.
type Option func(*options)

// WithBatchSize configures the mini-batch size (default 100). Each epoch
// partitions the shuffled dataset into consecutive chunks of this size;
// the last chunk may be smaller.
func WithBatchSize(batchSize int) Option {
	return func(o *options) {
		o.batchSize = batchSize
	}
}

// WithMinChange configures the minimum number of label reassignments per
// epoch required to keep training (default 1). An epoch with fewer
// reassignments ends training as converged.
func WithMinChange(minChange int) Option {
	return func(o *options) {
		o.minChange = minChange
	}
}

// WithMaxEpochs configures the maximum number of training epochs
// (default 100). Reaching the cap is not an error.
func WithMaxEpochs(maxEpochs int) Option {
	return func(o *options) {
		o.maxEpochs = maxEpochs
	}
}

// WithKernel configures the distance kernel (default Euclidean).
//
// If nil is passed, the default is kept.
func WithKernel(kernel distance.Kernel) Option {
	return func(o *options) {
		if kernel != nil {
			o.kernel = kernel
		}
	}
}

// WithMetric selects the distance kernel by metric. An unsupported metric
// fails construction.
func WithMetric(m distance.Metric) Option {
	return func(o *options) {
		o.metric = &m
	}
}

// WithRandomSource configures the pseudo-random source used for seeding
// and per-epoch shuffling. Inject a fixed-seed source for reproducible
// training runs. Defaults to a time-seeded source.
func WithRandomSource(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithLogger configures an optional progress logger. Defaults to a no-op
// logger; logging never affects algorithm behavior.
func WithLogger(logger *estigo.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
