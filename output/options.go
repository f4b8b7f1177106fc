// SPDX-License-Identifier: MIT

package output

import "github.com/katalvlaran/fleetmatch/logging"

// Option configures a Node.
type Option func(*options)

type options struct {
	logger logging.Logger
}

func gatherOptions(opts ...Option) options {
	o := options{logger: logging.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithLogger routes Debug records about written files to l.
// A nil l keeps the no-op logger. Children created without WithLogger
// inherit the parent's logger.
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
