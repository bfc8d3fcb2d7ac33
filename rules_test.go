package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRule(t *testing.T) {
	rule, err := ParseRule("0+3", 12)
	require.NoError(t, err)
	assert.Equal(t, Rule{Start: 0, Offset: 3}, rule)
	assert.Equal(t, "0+3", rule.String())

	rule, err = ParseRule(" 11+11 ", 12)
	require.NoError(t, err)
	assert.Equal(t, Rule{Start: 11, Offset: 11}, rule)
}

func TestParseRuleRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		text string
		n    int
	}{
		{"no delimiter", "03", 12},
		{"two delimiters", "0+3+5", 12},
		{"empty", "", 12},
		{"non-numeric start", "a+3", 12},
		{"non-numeric offset", "0+x", 12},
		{"negative start", "-1+3", 12},
		{"start out of range", "12+1", 12},
		{"offset out of range", "0+12", 12},
		{"float tokens", "1.5+2", 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseRule(tc.text, tc.n)
			assert.Error(t, err, "input %q", tc.text)
		})
	}
}

func TestParseRuleRangeDependsOnDivisions(t *testing.T) {
	_, err := ParseRule("12+1", 12)
	require.Error(t, err)

	rule, err := ParseRule("12+1", 13)
	require.NoError(t, err)
	assert.Equal(t, 12, rule.Start)
}

func TestExpandRule(t *testing.T) {
	center := Pt(300, 300)
	radius := 260.0
	rule := Rule{Start: 0, Offset: 3}

	segments := rule.Expand(12, center, radius)
	require.Len(t, segments, 12)

	first := segments[0]
	assert.Equal(t, DivisionPoint(0, 12, center, radius), first.From)
	assert.Equal(t, DivisionPoint(3, 12, center, radius), first.To)

	// (11+3) mod 12 = 2
	last := segments[11]
	assert.Equal(t, DivisionPoint(11, 12, center, radius), last.From)
	assert.Equal(t, DivisionPoint(2, 12, center, radius), last.To)
}

func TestExpandRuleZeroOffsetKeepsSelfLoops(t *testing.T) {
	center := Pt(300, 300)
	segments := Rule{Start: 0, Offset: 0}.Expand(8, center, 260)

	require.Len(t, segments, 8)
	for _, seg := range segments {
		assert.Equal(t, seg.From, seg.To)
	}
}

func TestRuleSetRejectsDuplicates(t *testing.T) {
	var set RuleSet

	require.True(t, set.Add(Rule{Start: 0, Offset: 3}))
	require.False(t, set.Add(Rule{Start: 0, Offset: 3}))
	assert.Equal(t, 1, set.Len())
	assert.Equal(t, []string{"0+3"}, set.Strings())
}

func TestRuleSetRemove(t *testing.T) {
	var set RuleSet
	set.Add(Rule{Start: 0, Offset: 3})
	set.Add(Rule{Start: 2, Offset: 5})

	assert.True(t, set.Remove("0+3"))
	assert.Equal(t, []string{"2+5"}, set.Strings())

	// Removing something absent is a no-op.
	assert.False(t, set.Remove("0+3"))
	assert.False(t, set.Remove("not a rule"))
	assert.Equal(t, 1, set.Len())
}

func TestRuleSetPreservesInsertionOrder(t *testing.T) {
	var set RuleSet
	set.Add(Rule{Start: 3, Offset: 7})
	set.Add(Rule{Start: 0, Offset: 2})
	set.Add(Rule{Start: 1, Offset: 5})

	assert.Equal(t, []string{"3+7", "0+2", "1+5"}, set.Strings())

	rules := set.Rules()
	rules[0] = Rule{Start: 9, Offset: 9}
	assert.Equal(t, []string{"3+7", "0+2", "1+5"}, set.Strings(),
		"Rules must return a copy")
}
