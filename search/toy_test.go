package search_test

import (
	"github.com/arboretum-go/arboretum/search"
	"github.com/arboretum-go/arboretum/sense"
)

// item is a single 0/1-knapsack item used by the toy states below. These
// states exist purely to exercise the search engine's driver contracts
// (static vs. dynamic frame strategies, recursive/iterative equivalence,
// backtrack round-trips) independently of the library's two real problems.
type item struct {
	weight, value int
}

type knapsackSolution struct{ value int }

func (s knapsackSolution) ObjectiveValue() int { return s.value }

// --- static variant: Branch/BranchAlternate return structurally distinct
// undo token types, exercising search.NewStaticSolver. ---

type includeUndo struct{}
type excludeUndo struct{}

type staticKnapsack struct {
	items    []item
	capacity int
	i        int
	weight   int
	value    int
}

func newStaticKnapsack(items []item, capacity int) *staticKnapsack {
	return &staticKnapsack{items: items, capacity: capacity}
}

func (s *staticKnapsack) Sense() sense.Sense { return sense.Maximize }
func (s *staticKnapsack) IsFeasible() bool   { return s.weight <= s.capacity }
func (s *staticKnapsack) IsLeaf() bool       { return s.i == len(s.items) }
func (s *staticKnapsack) Solution() search.Solution {
	return knapsackSolution{value: s.value}
}

func (s *staticKnapsack) Bound() int {
	bound := s.value
	for j := s.i; j < len(s.items); j++ {
		bound += s.items[j].value
	}

	return bound
}

func (s *staticKnapsack) Branch() (search.Rule, search.Result) {
	idx := s.i
	it := s.items[idx]
	s.i++
	s.weight += it.weight
	s.value += it.value

	return idx, includeUndo{}
}

func (s *staticKnapsack) BranchAlternate(rule search.Rule) search.Result {
	s.i++

	return excludeUndo{}
}

func (s *staticKnapsack) Backtrack(rule search.Rule, result search.Result) {
	idx := rule.(int)
	switch result.(type) {
	case includeUndo:
		it := s.items[idx]
		s.i--
		s.weight -= it.weight
		s.value -= it.value
	case excludeUndo:
		s.i--
	}
}

// snapshot returns a value copy sufficient for structural-equality checks in
// reversibility tests.
func (s *staticKnapsack) snapshot() staticKnapsack { return *s }

// --- dynamic variant: Branch/BranchAlternate return one shared undo type,
// exercising search.NewDynamicSolver. ---

type knapsackUndo struct{ weightDelta, valueDelta int }

type dynamicKnapsack struct {
	items    []item
	capacity int
	i        int
	weight   int
	value    int
}

func newDynamicKnapsack(items []item, capacity int) *dynamicKnapsack {
	return &dynamicKnapsack{items: items, capacity: capacity}
}

func (s *dynamicKnapsack) Sense() sense.Sense { return sense.Maximize }
func (s *dynamicKnapsack) IsFeasible() bool   { return s.weight <= s.capacity }
func (s *dynamicKnapsack) IsLeaf() bool       { return s.i == len(s.items) }
func (s *dynamicKnapsack) Solution() search.Solution {
	return knapsackSolution{value: s.value}
}

func (s *dynamicKnapsack) Bound() int {
	bound := s.value
	for j := s.i; j < len(s.items); j++ {
		bound += s.items[j].value
	}

	return bound
}

func (s *dynamicKnapsack) Branch() (search.Rule, search.Result) {
	idx := s.i
	it := s.items[idx]
	s.i++
	s.weight += it.weight
	s.value += it.value

	return idx, knapsackUndo{weightDelta: it.weight, valueDelta: it.value}
}

func (s *dynamicKnapsack) BranchAlternate(rule search.Rule) search.Result {
	s.i++

	return knapsackUndo{}
}

func (s *dynamicKnapsack) Backtrack(rule search.Rule, result search.Result) {
	u := result.(knapsackUndo)
	s.i--
	s.weight -= u.weightDelta
	s.value -= u.valueDelta
}

func (s *dynamicKnapsack) snapshot() dynamicKnapsack { return *s }

// sampleItems returns a small, deterministic instance with an interesting
// capacity (forces some items to be excluded).
func sampleItems() ([]item, int) {
	items := []item{
		{weight: 2, value: 3},
		{weight: 3, value: 4},
		{weight: 4, value: 5},
		{weight: 5, value: 6},
	}

	return items, 8
}
