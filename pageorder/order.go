package pageorder

import (
	"fmt"
	"slices"
)

// IsOrdered reports whether every adjacent pair of u is ordered Less.
// A repeated page makes the update unordered. An undecided pair is an error.
// Complexity: O(n·r).
func (rs RuleSet) IsOrdered(u Update) (bool, error) {
	for i := 1; i < len(u); i++ {
		ord, err := rs.Compare(u[i-1], u[i])
		if err != nil {
			return false, err
		}
		if ord != Less {
			return false, nil
		}
	}

	return true, nil
}

// sorter holds the state of one topological sort.
type sorter struct {
	rules   RuleSet
	inScope map[int]int  // occurrences of each page in the update being sorted
	state   map[int]int  // white, gray or black
	order   []int        // post-order
}

// Reorder returns the pages of u in an order consistent with the rules
// restricted to those pages. With no applicable rules the input order is
// kept. A repeated page keeps every occurrence, adjacent in the output.
// u is not modified.
// Returns ErrCycleDetected if the restricted rules are cyclic.
// Complexity: O(n + e), Memory O(n).
func (rs RuleSet) Reorder(u Update) (Update, error) {
	s := &sorter{
		rules:   rs,
		inScope: make(map[int]int, len(u)),
		state:   make(map[int]int, len(u)),
		order:   make([]int, 0, len(u)),
	}
	for _, p := range u {
		s.inScope[p]++
	}

	// Visit in reverse input order so that, after reversing the post-order,
	// unconstrained pages come out in input order.
	for i := len(u) - 1; i >= 0; i-- {
		if s.state[u[i]] == white {
			if err := s.visit(u[i]); err != nil {
				return nil, err
			}
		}
	}
	slices.Reverse(s.order)

	return Update(s.order), nil
}

// visit runs the DFS from page p, following only rules inside the update.
func (s *sorter) visit(p int) error {
	switch s.state[p] {
	case gray:
		return fmt.Errorf("%w: through page %d", ErrCycleDetected, p)
	case black:
		return nil
	}
	s.state[p] = gray
	for _, next := range s.rules[p] {
		if s.inScope[next] == 0 {
			continue
		}
		if err := s.visit(next); err != nil {
			return err
		}
	}
	s.state[p] = black
	for range s.inScope[p] {
		s.order = append(s.order, p)
	}

	return nil
}

// Middle returns the middle page of u.
func Middle(u Update) (int, error) {
	if len(u) == 0 {
		return 0, ErrEmptyUpdate
	}

	return u[len(u)/2], nil
}

// SumOrderedMiddles sums the middle page of every update already in order.
func (rs RuleSet) SumOrderedMiddles(updates []Update) (int, error) {
	sum := 0
	for _, u := range updates {
		ok, err := rs.IsOrdered(u)
		if err != nil {
			return 0, err
		}
		if !ok {
			continue
		}
		m, err := Middle(u)
		if err != nil {
			return 0, err
		}
		sum += m
	}

	return sum, nil
}

// SumReorderedMiddles reorders every update that is out of order and sums
// their middle pages. Ordered updates contribute nothing.
func (rs RuleSet) SumReorderedMiddles(updates []Update) (int, error) {
	sum := 0
	for _, u := range updates {
		ok, err := rs.IsOrdered(u)
		if err != nil {
			return 0, err
		}
		if ok {
			continue
		}
		fixed, err := rs.Reorder(u)
		if err != nil {
			return 0, err
		}
		m, err := Middle(fixed)
		if err != nil {
			return 0, err
		}
		sum += m
	}

	return sum, nil
}
