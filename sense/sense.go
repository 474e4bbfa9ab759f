// Package sense implements the bound algebra shared by both tree-search
// drivers: the two pure functions that decide whether an objective value is
// an improvement over the current primal, and whether a dual bound permits a
// subtree to be pruned.
//
// Design principles (mirroring the teacher's tsp package):
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on well-formed input.
//   - Complexity: O(1) for every function here.
package sense

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Sense selects the optimisation direction for a search.
type Sense int

const (
	// Maximize means larger objective values are better; the driver tracks
	// an upper dual bound and prunes when that bound cannot strictly exceed
	// the current primal.
	Maximize Sense = iota

	// Minimize means smaller objective values are better; the driver tracks
	// a lower dual bound and prunes when that bound cannot strictly undercut
	// the current primal.
	Minimize
)

// String renders the Sense for logging and error messages.
func (s Sense) String() string {
	switch s {
	case Maximize:
		return "Maximize"
	case Minimize:
		return "Minimize"
	default:
		return "Sense(unknown)"
	}
}

// IsImprovement reports whether obj strictly improves on primal under sense:
// strictly greater for Maximize, strictly smaller for Minimize.
func IsImprovement[Obj constraints.Integer](sense Sense, obj, primal Obj) bool {
	if sense == Minimize {
		return obj < primal
	}

	return obj > primal
}

// CanBePruned reports whether a subtree with the given dual bound can be
// abandoned because it cannot strictly improve primal.
//
// The comparison is non-strict: a bound equal to primal still prunes, since
// a branch is only worth keeping if it might strictly improve the incumbent.
func CanBePruned[Obj constraints.Integer](sense Sense, dualBound, primal Obj) bool {
	if sense == Minimize {
		return dualBound >= primal
	}

	return dualBound <= primal
}

// InitialPrimal returns the worst representable value of Obj for sense: the
// minimum for Maximize (so that any feasible leaf improves it), the maximum
// for Minimize.
func InitialPrimal[Obj constraints.Integer](sense Sense) Obj {
	lo, hi := objBounds[Obj]()
	if sense == Minimize {
		return hi
	}

	return lo
}

// objBounds returns the minimum and maximum representable values of Obj's
// underlying integer kind. The default case covers Obj=int, which this
// package's only instantiations (maxclique, cliquecover) use.
func objBounds[Obj constraints.Integer]() (lo, hi Obj) {
	var zero Obj
	switch any(zero).(type) {
	case int8:
		l, h := int8(math.MinInt8), int8(math.MaxInt8)
		return Obj(l), Obj(h)
	case int16:
		l, h := int16(math.MinInt16), int16(math.MaxInt16)
		return Obj(l), Obj(h)
	case int32:
		l, h := int32(math.MinInt32), int32(math.MaxInt32)
		return Obj(l), Obj(h)
	case int64:
		l, h := int64(math.MinInt64), int64(math.MaxInt64)
		return Obj(l), Obj(h)
	case uint8:
		h := uint8(math.MaxUint8)
		return Obj(0), Obj(h)
	case uint16:
		h := uint16(math.MaxUint16)
		return Obj(0), Obj(h)
	case uint32:
		h := uint32(math.MaxUint32)
		return Obj(0), Obj(h)
	case uint64:
		h := uint64(math.MaxUint64)
		return Obj(0), Obj(h)
	case uint:
		h := uint(math.MaxUint)
		return Obj(0), Obj(h)
	default: // int
		l, h := int(math.MinInt), int(math.MaxInt)
		return Obj(l), Obj(h)
	}
}
