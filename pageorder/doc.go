// Package pageorder checks and repairs the page order of print updates
// against a set of pairwise "X must come before Y" rules.
//
// What:
//
//   - Parse reads "X|Y" rule lines, a blank line, then comma-separated updates.
//   - Compare resolves the relative order of two pages from the rules.
//   - IsOrdered checks an update pair by pair.
//   - Reorder produces a rule-respecting order for an update, keeping
//     repeated pages, using a depth-first topological sort over the rules
//     induced on its pages.
//   - CheckTotal verifies that every pair of the given pages is decided.
//
// Complexity:
//
//   - Compare:   O(r) for r rules of the two pages
//   - IsOrdered: O(n·r)
//   - Reorder:   O(n + e) for e induced rules, Memory O(n)
//
// Errors:
//
//   - ErrMalformedRule   rule line is not "int|int"
//   - ErrMalformedUpdate update token is not an integer
//   - ErrUndecided       no rule relates two pages
//   - ErrCycleDetected   the rules induced on an update form a cycle
//   - ErrEmptyUpdate     Middle on an empty update
package pageorder
