package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	for input, want := range map[string]Category{
		"health":     CategoryHealth,
		"Health":     CategoryHealth,
		"CAREER":     CategoryCareer,
		"work":       CategoryCareer,
		"learn":      CategoryLearning,
		" learning ": CategoryLearning,
	} {
		got, err := ParseCategory(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseCategory("finance")
	require.Error(t, err)
}

func TestParsePriority(t *testing.T) {
	for input, want := range map[string]Priority{
		"high": PriorityHigh,
		"H":    PriorityHigh,
		"med":  PriorityMedium,
		"low":  PriorityLow,
	} {
		got, err := ParsePriority(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParsePriority("urgent")
	require.Error(t, err)
}

func TestParseMonth(t *testing.T) {
	for input, want := range map[string]Month{
		"january":  MonthJanuary,
		"Jan":      MonthJanuary,
		"sept":     MonthSeptember,
		"DECEMBER": MonthDecember,
	} {
		got, err := ParseMonth(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	for _, input := range []string{"", "ju", "smarch"} {
		_, err := ParseMonth(input)
		require.Error(t, err, input)
	}
}

func TestParseFilterField(t *testing.T) {
	got, err := ParseFilterField("all", ParseCategory)
	require.NoError(t, err)
	assert.Equal(t, FilterAll, got)

	got, err = ParseFilterField("", ParseCategory)
	require.NoError(t, err)
	assert.Equal(t, FilterAll, got)

	got, err = ParseFilterField("health", ParseCategory)
	require.NoError(t, err)
	assert.Equal(t, string(CategoryHealth), got)

	_, err = ParseFilterField("bogus", ParseCategory)
	require.Error(t, err)
}
