package main

import (
	"fmt"
	"strconv"
	"strings"
)

// Rule is a pattern generator: applied to every division index i it yields
// a segment from point i to point (i+Offset) mod n.
type Rule struct {
	Start  int
	Offset int
}

func (r Rule) String() string {
	return fmt.Sprintf("%d+%d", r.Start, r.Offset)
}

// ParseRule parses "start+offset" and validates both values against the
// current division count n. The rule set is not touched here; callers add
// the parsed rule themselves.
func ParseRule(text string, n int) (Rule, error) {
	parts := strings.Split(strings.TrimSpace(text), "+")
	if len(parts) != 2 {
		return Rule{}, fmt.Errorf("rule must be two numbers joined by +, like 0+5")
	}
	start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || start < 0 {
		return Rule{}, fmt.Errorf("start %q is not a non-negative number", parts[0])
	}
	offset, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || offset < 0 {
		return Rule{}, fmt.Errorf("offset %q is not a non-negative number", parts[1])
	}
	if start >= n {
		return Rule{}, fmt.Errorf("start %d is out of range, must be below %d", start, n)
	}
	if offset >= n {
		return Rule{}, fmt.Errorf("offset %d is out of range, must be below %d", offset, n)
	}
	return Rule{Start: start, Offset: offset}, nil
}

// Expand generates the n segments the rule implies for a wheel with n
// division points. Offset 0 produces n zero-length segments; they stay in,
// the render surfaces paint them as dots.
func (r Rule) Expand(n int, center Point, radius float64) []Segment {
	segments := make([]Segment, n)
	for i := 0; i < n; i++ {
		segments[i] = Segment{
			From: DivisionPoint(i, n, center, radius),
			To:   DivisionPoint((i+r.Offset)%n, n, center, radius),
		}
	}
	return segments
}

// RuleSet holds the active rules in insertion order with no duplicates.
type RuleSet struct {
	rules []Rule
}

// Add appends r unless a rule with the same canonical string is already
// present. Duplicates are rejected silently, not an error.
func (s *RuleSet) Add(r Rule) bool {
	if s.Contains(r.String()) {
		return false
	}
	s.rules = append(s.rules, r)
	return true
}

// Remove drops the rule whose canonical string matches text exactly.
// Removing an absent rule is a no-op.
func (s *RuleSet) Remove(text string) bool {
	text = strings.TrimSpace(text)
	for i, r := range s.rules {
		if r.String() == text {
			s.rules = append(s.rules[:i], s.rules[i+1:]...)
			return true
		}
	}
	return false
}

func (s *RuleSet) Contains(text string) bool {
	for _, r := range s.rules {
		if r.String() == text {
			return true
		}
	}
	return false
}

func (s *RuleSet) Clear() {
	s.rules = s.rules[:0]
}

func (s *RuleSet) Len() int {
	return len(s.rules)
}

// Rules returns a copy of the active rules in insertion order.
func (s *RuleSet) Rules() []Rule {
	out := make([]Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Strings returns the canonical form of every active rule, for the status
// bar and for clipboard export.
func (s *RuleSet) Strings() []string {
	out := make([]string, len(s.rules))
	for i, r := range s.rules {
		out[i] = r.String()
	}
	return out
}
