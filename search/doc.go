// Package search implements the two generic tree-search drivers that sit at
// the heart of arboretum: a recursive depth-first solver and an explicit-
// stack iterative solver. Both are parameterised over a caller-supplied
// State implementation and share the bound algebra in sense.
//
// A State represents one node of the search tree. The driver's contract with
// it is exactly spec.md's: IsFeasible and IsLeaf are pure queries, Bound
// returns a dual bound valid for the whole subtree rooted at the state,
// Branch descends into the first (most promising) child and returns an
// opaque undo token, BranchAlternate — called only after the state has been
// restored to the parent — descends into the second child, and Backtrack,
// given the matching Rule and token, restores the state bit-for-bit.
//
// SolveRecursive walks the tree via the Go call stack; it is the simplest
// possible correct driver and doubles as the reference the iterative driver
// is checked against (see TestDriverEquivalence in iterative_test.go).
//
// IterativeSolver realises the same depth-first order without recursion,
// using an explicit stack of frames and pre-emptive pruning on backtrack
// (spec.md §4.2): when unwinding a frame whose alternate hasn't been
// explored yet, the driver restores the parent, re-tests the parent's bound
// against the primal *before* mutating into the alternate branch, and
// abandons that branch without ever calling BranchAlternate if the bound
// cannot improve the primal.
package search
