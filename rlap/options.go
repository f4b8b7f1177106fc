// SPDX-License-Identifier: MIT
// Package rlap - functional options for Solve.
//
// Options follow the same contract everywhere in this module:
//   - Option constructors panic only on nonsensical values (programmer error).
//   - Applying the same Option twice is idempotent.
//   - Unset fields keep the documented defaults below.

package rlap

import (
	"math"

	"github.com/katalvlaran/fleetmatch/logging"
)

// ---------- Defaults ----------

const (
	// DefaultCertifyEps is the tolerance used by WithCertify callers that have
	// no better value. Integer weights make every reduced cost exact, so 0
	// would also work; the slack only matters for NewCostMatrix inputs.
	DefaultCertifyEps = 1e-9

	// exactFloatLimit is 2^53, the largest power of two up to which every
	// integer is exactly representable in float64.
	exactFloatLimit = 1 << 53
)

// ---------- Internal panic messages ----------

const (
	panicCertifyEpsInvalid = "rlap: WithCertify: eps must be finite, non-negative"
	panicMaxWeightInvalid  = "rlap: WithMaxWeight: limit must be > 0"
)

// Option mutates solver options.
type Option func(*options)

// options is the resolved configuration of a single Solve call.
type options struct {
	logger    logging.Logger // DefaultLogger: no-op
	certify   bool           // run Certify after JV
	eps       float64        // Certify tolerance
	maxWeight int            // 0 means "exactness envelope only"
}

// gatherOptions resolves opts over the defaults.
func gatherOptions(opts ...Option) options {
	o := options{
		logger: logging.NewNop(),
		eps:    DefaultCertifyEps,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithLogger routes the engine's per-phase Debug records to l.
// A nil l keeps the no-op logger.
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCertify makes Solve verify the bijection and the dual certificate
// before returning, failing with ErrNotBijection or ErrDualInfeasible.
// Panics when eps is negative, NaN or infinite.
func WithCertify(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicCertifyEpsInvalid)
	}

	return func(o *options) {
		o.certify = true
		o.eps = eps
	}
}

// WithMaxWeight rejects weight matrices whose largest |weight| exceeds limit
// (ErrWeightRange). It tightens, never loosens, the exactness envelope that
// Solve always enforces. Panics when limit <= 0.
func WithMaxWeight(limit int) Option {
	if limit <= 0 {
		panic(panicMaxWeightInvalid)
	}

	return func(o *options) { o.maxWeight = limit }
}
