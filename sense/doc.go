// Package sense implements the engine's sense-parameterised bound algebra:
// the handful of pure functions both search drivers use to decide whether
// a leaf improves on the incumbent and whether a node can be pruned,
// generalised over the optimisation direction (Maximize or Minimize) and
// over the objective's concrete integer type.
//
// # Algorithms & Complexity
//
//	IsImprovement   — strict >/< comparison, O(1)
//	CanBePruned     — non-strict <=/>= comparison, O(1)
//	InitialPrimal   — worst representable value for Obj, O(1)
package sense
