package pageorder

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2024/input"
)

// Parse reads the rule section, a blank line, then the updates.
// Lines before the first blank line are rules "X|Y"; later non-blank lines
// are updates "a,b,c".
func Parse(r io.Reader) (RuleSet, []Update, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, nil, err
	}

	rules := RuleSet{}
	var updates []Update
	inRules := true
	for ln, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			inRules = false
			continue
		}
		if inRules {
			before, after, err := parseRule(line)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: line %d: %q", ErrMalformedRule, ln+1, line)
			}
			rules.Add(before, after)
			continue
		}
		u, err := parseUpdate(line)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: line %d: %v", ErrMalformedUpdate, ln+1, err)
		}
		updates = append(updates, u)
	}

	return rules, updates, nil
}

func parseRule(line string) (int, int, error) {
	l, r, ok := strings.Cut(line, "|")
	if !ok {
		return 0, 0, fmt.Errorf("missing separator")
	}
	a, err := strconv.Atoi(strings.TrimSpace(l))
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.Atoi(strings.TrimSpace(r))
	if err != nil {
		return 0, 0, err
	}

	return a, b, nil
}

func parseUpdate(line string) (Update, error) {
	parts := strings.Split(line, ",")
	u := make(Update, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		u[i] = v
	}

	return u, nil
}

// Add records that page before must be printed ahead of page after.
// Duplicate rules are ignored.
func (rs RuleSet) Add(before, after int) {
	if !slices.Contains(rs[before], after) {
		rs[before] = append(rs[before], after)
	}
}

// Compare orders a against b. Returns ErrUndecided when a != b and no rule
// relates them.
// Complexity: O(r) for r rules attached to a and b.
func (rs RuleSet) Compare(a, b int) (Ordering, error) {
	if a == b {
		return Equal, nil
	}
	if slices.Contains(rs[a], b) {
		return Less, nil
	}
	if slices.Contains(rs[b], a) {
		return Greater, nil
	}

	return Equal, fmt.Errorf("%w: %d <=> %d", ErrUndecided, a, b)
}

// CheckTotal verifies every pair of pages is decided by the rules.
// Pass nil to check every page mentioned by the rule set.
// Complexity: O(p²·r).
func (rs RuleSet) CheckTotal(pages []int) error {
	if pages == nil {
		pages = rs.Pages()
	}
	for i, a := range pages {
		for _, b := range pages[i+1:] {
			if _, err := rs.Compare(a, b); err != nil {
				return err
			}
		}
	}

	return nil
}

// Pages returns every page mentioned by a rule, sorted ascending.
func (rs RuleSet) Pages() []int {
	seen := make(map[int]struct{}, len(rs))
	for a, after := range rs {
		seen[a] = struct{}{}
		for _, b := range after {
			seen[b] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	slices.Sort(out)

	return out
}
