package engine

import (
	"fmt"
	"strings"
)

// ParseCategory parses user input to a Category.
// Matching is case-insensitive; short forms are accepted.
func ParseCategory(input string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "health":
		return CategoryHealth, nil
	case "career", "work":
		return CategoryCareer, nil
	case "learning", "learn":
		return CategoryLearning, nil
	default:
		return "", fmt.Errorf("invalid category %q (health|career|learning)", input)
	}
}

// ParsePriority parses user input to a Priority.
func ParsePriority(input string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "high", "h":
		return PriorityHigh, nil
	case "medium", "med", "m":
		return PriorityMedium, nil
	case "low", "l":
		return PriorityLow, nil
	default:
		return "", fmt.Errorf("invalid priority %q (high|medium|low)", input)
	}
}

// ParseMonth parses user input to a Month. Full names and unambiguous
// three-letter prefixes are accepted, case-insensitively.
func ParseMonth(input string) (Month, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return "", fmt.Errorf("month is required")
	}
	for _, m := range Months {
		name := strings.ToLower(string(m))
		if s == name || (len(s) >= 3 && strings.HasPrefix(name, s)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid month %q", input)
}

// ParseFilterField parses one filter selector: FilterAll (or empty) passes
// through as the wildcard, anything else must parse with the given parser.
func ParseFilterField[T ~string](input string, parse func(string) (T, error)) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" || strings.EqualFold(s, FilterAll) {
		return FilterAll, nil
	}
	v, err := parse(s)
	if err != nil {
		return "", err
	}
	return string(v), nil
}
