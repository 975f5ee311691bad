package pageorder

import (
	"errors"
)

var (
	// ErrMalformedRule indicates a rule line that is not "X|Y".
	ErrMalformedRule = errors.New("pageorder: malformed rule")

	// ErrMalformedUpdate indicates an update containing a non-integer page.
	ErrMalformedUpdate = errors.New("pageorder: malformed update")

	// ErrUndecided indicates two distinct pages that no rule relates.
	ErrUndecided = errors.New("pageorder: no rule orders the pages")

	// ErrCycleDetected indicates the rules restricted to an update are cyclic.
	ErrCycleDetected = errors.New("pageorder: cycle detected")

	// ErrEmptyUpdate indicates Middle was asked for an empty update.
	ErrEmptyUpdate = errors.New("pageorder: empty update")
)

// Ordering is the outcome of comparing two pages.
type Ordering int

const (
	Less    Ordering = -1 // first page must be printed earlier
	Equal   Ordering = 0  // same page
	Greater Ordering = 1  // first page must be printed later
)

// RuleSet maps a page to the pages that must follow it.
type RuleSet map[int][]int

// Update is one print job: the pages in their requested order.
type Update []int

// visitation states for the topological sort.
const (
	white = iota // not visited
	gray         // on the current DFS path
	black        // fully explored
)
