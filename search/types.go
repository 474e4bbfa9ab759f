package search

import "github.com/arboretum-go/arboretum/sense"

// Rule is an opaque branching-decision token (e.g. which vertex or pair was
// chosen). The driver never inspects it; it only threads it back to
// Backtrack and BranchAlternate.
type Rule = any

// Result is an opaque undo token returned by Branch/BranchAlternate and
// consumed by Backtrack. Its concrete type may be the same for both branches
// (dynamic branching) or differ per branch (static branching); see
// frameStrategy in iterative.go and DESIGN.md for how the iterative driver
// realises each case.
type Result = any

// Solution is a feasible, complete solution produced at a leaf State.
type Solution interface {
	// ObjectiveValue returns the objective this solution achieves.
	ObjectiveValue() int
}

// State is the contract a problem implements to plug into both drivers.
//
// Invariants the drivers rely on (spec.md §3):
//   - IsFeasible and IsLeaf are pure queries with no side effects.
//   - IsLeaf() == true implies Solution() is defined and IsFeasible() == true.
//   - Bound() is valid: no descendant's objective can strictly exceed it
//     (Maximize) or fall below it (Minimize).
//   - Branch may only be called on a non-leaf, feasible state; it mutates the
//     state into its first child and returns the Rule plus an undo token.
//   - BranchAlternate may only be called immediately after the state has
//     been restored (via Backtrack) to the parent of a prior Branch call,
//     with that call's Rule; it mutates the state into the second child.
//   - Backtrack, given a Rule and the token returned by the matching Branch
//     or BranchAlternate, restores the state exactly to what it was
//     immediately before that call.
type State interface {
	// Sense reports the optimisation direction this state's Bound uses.
	Sense() sense.Sense

	// IsFeasible reports whether any descendant can yield a feasible
	// solution. A false result prunes the entire subtree.
	IsFeasible() bool

	// IsLeaf reports whether this state is a complete feasible solution.
	IsLeaf() bool

	// Solution returns the feasible solution at a leaf. Only valid when
	// IsLeaf() is true.
	Solution() Solution

	// Bound returns the dual bound for this subtree (upper bound under
	// Maximize, lower bound under Minimize).
	Bound() int

	// Branch mutates the state into its first, most-promising child and
	// returns the branching Rule plus an undo token for that mutation.
	// Only callable on a non-leaf, feasible state.
	Branch() (Rule, Result)

	// BranchAlternate mutates the state into the second child of the node
	// that produced rule, returning its undo token. Only callable
	// immediately after the state has been restored to that node.
	BranchAlternate(rule Rule) Result

	// Backtrack restores the state to what it was immediately before the
	// Branch or BranchAlternate call that produced (rule, result).
	Backtrack(rule Rule, result Result)
}
