// SPDX-License-Identifier: MIT

package rank

import (
	"github.com/rs/zerolog"

	"github.com/tomtranjr/msds601-highdim-group9/matrix"
)

// Inverter computes the inverse of a square matrix.
type Inverter func(m matrix.Matrix) (*matrix.Dense, error)

// Option configures Analyze.
type Option func(*options)

type options struct {
	inverter Inverter
	logger   zerolog.Logger
}

func defaultOptions() options {
	return options{
		inverter: matrix.Inverse,
		logger:   zerolog.Nop(),
	}
}

// WithInverter replaces matrix.Inverse. A nil inverter is ignored.
func WithInverter(inv Inverter) Option {
	return func(o *options) {
		if inv != nil {
			o.inverter = inv
		}
	}
}

// WithLogger sets the logger that receives debug diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}
