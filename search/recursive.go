package search

import "github.com/arboretum-go/arboretum/sense"

// SolveRecursive returns the best-objective solution found in the subtree
// rooted at state whose objective strictly improves on primal, or (nil,
// false) if none does. state is mutated during the call but is restored to
// its original value (bit-for-bit, via Backtrack) before returning.
//
// Ordering guarantee: the "first" branch (returned by Branch) is explored
// before the "alternate" — states must order their own branches from most-
// to least-promising for good pruning (spec.md §4.1).
//
// Complexity: one call per search-tree node visited; space is O(depth) via
// the Go call stack.
func SolveRecursive(state State, primal int) (Solution, bool) {
	s := state.Sense()

	if sense.CanBePruned(s, state.Bound(), primal) {
		return nil, false
	}
	if !state.IsFeasible() {
		return nil, false
	}
	if state.IsLeaf() {
		return state.Solution(), true
	}

	rule, r1 := state.Branch()
	best, haveBest := SolveRecursive(state, primal)
	state.Backtrack(rule, r1)

	if haveBest {
		obj := best.ObjectiveValue()
		if !sense.IsImprovement(s, obj, primal) {
			panic("search: leaf solution did not strictly improve primal")
		}
		primal = obj
		if sense.CanBePruned(s, state.Bound(), primal) {
			// Tightening the primal already prunes this node's remaining
			// branch; returning now matches solve_recursive's early-out.
			return best, true
		}
	}

	r2 := state.BranchAlternate(rule)
	altBest, haveAlt := SolveRecursive(state, primal)
	state.Backtrack(rule, r2)

	if !haveAlt {
		return best, haveBest
	}
	if !haveBest {
		return altBest, true
	}
	if sense.IsImprovement(s, altBest.ObjectiveValue(), best.ObjectiveValue()) {
		return altBest, true
	}

	return best, true
}

// SolveRecursiveDefault runs SolveRecursive with primal initialised to the
// worst representable objective for state's Sense, so that the first
// feasible leaf found always counts as an improvement.
func SolveRecursiveDefault(state State) (Solution, bool) {
	return SolveRecursive(state, sense.InitialPrimal[int](state.Sense()))
}
