package search

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/arboretum-go/arboretum/sense"
)

// frameStrategy selects how a stack frame recognises that its alternate
// branch has already been evaluated.
type frameStrategy int

const (
	// staticFrames is for States whose two branch outcomes carry
	// structurally distinct undo tokens: the frame's second field is nil
	// until BranchAlternate runs, so it doubles as the discriminator and no
	// explicit flag is needed.
	staticFrames frameStrategy = iota

	// dynamicFrames is for States whose two branch outcomes share one
	// Result type: the frame reuses a single field for either token and
	// carries an explicit flag, since a nil check can no longer tell them
	// apart.
	dynamicFrames
)

// frame is one element of the iterative driver's explicit stack.
type frame struct {
	rule            Rule
	first           Result // the token from Branch(); also reused by dynamicFrames to hold the alternate's token once evaluated
	second          Result // staticFrames only: nil until the alternate is evaluated
	secondEvaluated bool   // dynamicFrames only
}

func (f *frame) alternateEvaluated(strategy frameStrategy) bool {
	if strategy == staticFrames {
		return f.second != nil
	}

	return f.secondEvaluated
}

func (f *frame) storeAlternate(strategy frameStrategy, r2 Result) {
	if strategy == staticFrames {
		f.second = r2
		return
	}
	f.first = r2
	f.secondEvaluated = true
}

func (f *frame) alternateToken(strategy frameStrategy) Result {
	if strategy == staticFrames {
		return f.second
	}

	return f.first
}

// IterativeSolver performs depth-first branch-and-bound search via an
// explicit stack, avoiding recursion. See doc.go for the driver contract.
type IterativeSolver struct {
	state    State
	sense    sense.Sense
	primal   int
	strategy frameStrategy

	stack     []frame
	solutions []Solution
	nodes     int

	out   io.Writer
	start time.Time
}

// NewStaticSolver builds an IterativeSolver using the static frame strategy,
// for States whose Branch/BranchAlternate tokens are structurally distinct
// types (e.g. an "include" undo vs. an "exclude" undo).
func NewStaticSolver(state State) *IterativeSolver {
	return newIterativeSolver(state, staticFrames)
}

// NewDynamicSolver builds an IterativeSolver using the dynamic frame
// strategy, for States whose Branch/BranchAlternate tokens share one type.
func NewDynamicSolver(state State) *IterativeSolver {
	return newIterativeSolver(state, dynamicFrames)
}

func newIterativeSolver(state State, strategy frameStrategy) *IterativeSolver {
	s := state.Sense()

	return &IterativeSolver{
		state:    state,
		sense:    s,
		primal:   sense.InitialPrimal[int](s),
		strategy: strategy,
		out:      os.Stdout,
	}
}

// SetOutput overrides where progress and incumbent log lines are written.
// The default is os.Stdout.
func (s *IterativeSolver) SetOutput(w io.Writer) { s.out = w }

// Solutions returns the incumbent pool in discovery order; each entry
// strictly improves on its predecessor's objective.
func (s *IterativeSolver) Solutions() []Solution { return s.solutions }

// Nodes returns the number of search-tree nodes visited so far.
func (s *IterativeSolver) Nodes() int { return s.nodes }

// Primal returns the current best objective value (the worst representable
// value for the state's Sense if no solution has been found yet).
func (s *IterativeSolver) Primal() int { return s.primal }

// Solve runs the main loop to exhaustion. logFrequency controls how often a
// periodic progress line is emitted (every logFrequency nodes visited); zero
// disables periodic lines, leaving only incumbent lines and the final
// summary.
func (s *IterativeSolver) Solve(logFrequency int) {
	s.start = time.Now()

loop:
	for {
		switch {
		case !s.state.IsFeasible() || sense.CanBePruned(s.sense, s.state.Bound(), s.primal):
			if s.unwind() {
				s.nodes++
				break loop
			}

		case s.state.IsLeaf():
			sol := s.state.Solution()
			obj := sol.ObjectiveValue()
			if !sense.IsImprovement(s.sense, obj, s.primal) {
				panic("search: leaf solution did not strictly improve primal")
			}
			s.primal = obj
			s.solutions = append(s.solutions, sol)
			s.logLine(true)
			if s.unwind() {
				s.nodes++
				break loop
			}

		default:
			rule, r1 := s.state.Branch()
			s.stack = append(s.stack, frame{rule: rule, first: r1})
		}

		s.nodes++
		if logFrequency > 0 && s.nodes%logFrequency == 0 {
			s.logLine(false)
		}
	}

	s.logSummary()
}

// unwind pops frames from the stack, restoring state at each step, until
// either the stack is empty or it finds a frame whose alternate branch is
// worth pursuing (and mutates state into it). Returns true iff the stack is
// now empty (the whole search tree has been exhausted).
func (s *IterativeSolver) unwind() bool {
	for len(s.stack) > 0 {
		top := &s.stack[len(s.stack)-1]
		if s.unwindStep(top) {
			s.stack = s.stack[:len(s.stack)-1]
			continue
		}

		return false
	}

	return true
}

// unwindStep implements a single pop-or-descend decision for frame f.
// Returns true if f should be popped (both its branches are now fully
// explored and backtracked), false if state has just been mutated into f's
// alternate branch and the main loop should resume from there.
func (s *IterativeSolver) unwindStep(f *frame) bool {
	if f.alternateEvaluated(s.strategy) {
		s.state.Backtrack(f.rule, f.alternateToken(s.strategy))

		return true
	}

	s.state.Backtrack(f.rule, f.first)

	// Pre-emptive pruning: test the alternate branch's admissibility against
	// the (possibly just-tightened) primal before paying the cost of
	// mutating into it.
	if sense.CanBePruned(s.sense, s.state.Bound(), s.primal) {
		return true
	}

	r2 := s.state.BranchAlternate(f.rule)
	f.storeAlternate(s.strategy, r2)

	return false
}

// depths reports the "left depth" (contiguous prefix of frames whose
// alternate has already been evaluated) and "right depth" (the remaining
// suffix) for log lines.
func (s *IterativeSolver) depths() (left, right int) {
	left = 0
	for left < len(s.stack) && s.stack[left].alternateEvaluated(s.strategy) {
		left++
	}

	return left, len(s.stack) - left
}

func (s *IterativeSolver) logLine(incumbent bool) {
	marker := " "
	if incumbent {
		marker = "*"
	}
	left, right := s.depths()
	fmt.Fprintf(s.out, "%s  TIME: %.3fs  NODES: %d  PRIMAL: %d  LDEPTH: %d  RDEPTH: %d\n",
		marker, time.Since(s.start).Seconds(), s.nodes, s.primal, left, right)
}

func (s *IterativeSolver) logSummary() {
	elapsed := time.Since(s.start).Seconds()
	var rate float64
	if elapsed > 0 {
		rate = float64(s.nodes) / elapsed
	}

	objective := "none"
	if len(s.solutions) > 0 {
		objective = fmt.Sprintf("%d", s.primal)
	}

	rule := strings.Repeat("=", 40)
	fmt.Fprintln(s.out, rule)
	fmt.Fprintln(s.out, "Status: Optimal")
	fmt.Fprintf(s.out, "Nodes: %d\n", s.nodes)
	fmt.Fprintf(s.out, "Solutions: %d\n", len(s.solutions))
	fmt.Fprintf(s.out, "Time (seconds): %.3f\n", elapsed)
	fmt.Fprintf(s.out, "Objective: %s\n", objective)
	fmt.Fprintf(s.out, "Rate (nodes/second): %.1f\n", rate)
	fmt.Fprintln(s.out, rule)
}
