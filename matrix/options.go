// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the factories.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Backend choice happens once, at construction; options never reach a
//     constructed Matrix.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultStorage lets the density policy pick the backend.
	DefaultStorage = KindAuto

	// DefaultDensityNum / DefaultDensityDen form the density threshold 1/3:
	// sparse storage is chosen when nonzeros*Den < cells*Num.
	DefaultDensityNum = 1
	DefaultDensityDen = 3

	// SmallIdentityDim is the largest dimension for which Identity always
	// uses dense storage, whatever its density.
	SmallIdentityDim = 3
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicStorageInvalid   = "matrix: WithStorage: unknown storage kind"
	panicThresholdInvalid = "matrix: WithDensityThreshold: need den > 0 and 0 <= num <= den"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	storage    Kind // DefaultStorage
	densityNum int  // DefaultDensityNum
	densityDen int  // DefaultDensityDen
}

// WithStorage forces a backend, bypassing the density policy.
// Implementation:
//   - Stage 1: validate k is KindAuto, KindDense or KindSparse.
//   - Stage 2: return a setter.
//
// Errors:
//   - Panics with a stable message on unknown kinds.
//
// AI-Hints:
//   - Build the same contents with KindDense and KindSparse to compare backends.
func WithStorage(k Kind) Option {
	if k > KindSparse {
		panic(panicStorageInvalid)
	}

	return func(o *Options) { o.storage = k }
}

// WithAutoStorage restores the density policy (default).
func WithAutoStorage() Option {
	return func(o *Options) { o.storage = KindAuto }
}

// WithDensityThreshold sets the nonzero fraction num/den below which the
// policy picks sparse storage.
// Errors:
//   - Panics unless den > 0 and 0 <= num <= den.
//
// Notes:
//   - num == 0 never picks sparse; num == den picks sparse unless every cell is nonzero.
func WithDensityThreshold(num, den int) Option {
	if den <= 0 || num < 0 || num > den {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.densityNum, o.densityDen = num, den }
}

// gatherOptions applies user setters on top of the defaults, in order.
func gatherOptions(user ...Option) Options {
	o := Options{
		storage:    DefaultStorage,
		densityNum: DefaultDensityNum,
		densityDen: DefaultDensityDen,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// pick resolves the backend for a matrix with nnz nonzeros out of total cells.
// Comparison is done in integers so the default 1/3 is exact (3*nnz < total).
func (o Options) pick(nnz, total int) Kind {
	if o.storage != KindAuto {
		return o.storage
	}
	if nnz*o.densityDen < total*o.densityNum {
		return KindSparse
	}

	return KindDense
}
