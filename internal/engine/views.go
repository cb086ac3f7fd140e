package engine

// Derived views over the goal list. All pure; recomputed from scratch on
// every change rather than cached.

// Filtered returns the subsequence of goals matching every non-wildcard
// filter field, in input order. All-wildcard filters return the input as is.
func Filtered(goals []Goal, f Filters) []Goal {
	if f.Category == FilterAll && f.Priority == FilterAll && f.Month == FilterAll {
		return goals
	}
	var out []Goal
	for _, g := range goals {
		if f.Category != FilterAll && string(g.Category) != f.Category {
			continue
		}
		if f.Priority != FilterAll && string(g.Priority) != f.Priority {
			continue
		}
		if f.Month != FilterAll && string(g.Month) != f.Month {
			continue
		}
		out = append(out, g)
	}
	return out
}

// CategoryAverages computes the mean progress per category, rounded to the
// nearest integer. Categories with no goals report 0.
func CategoryAverages(goals []Goal) map[Category]int {
	sums := map[Category]int{}
	counts := map[Category]int{}
	for _, g := range goals {
		sums[g.Category] += g.Progress
		counts[g.Category]++
	}
	out := make(map[Category]int, len(Categories))
	for _, c := range Categories {
		if counts[c] == 0 {
			out[c] = 0
			continue
		}
		out[c] = (sums[c] + counts[c]/2) / counts[c]
	}
	return out
}

// ChartData flattens the category averages into the label/value pair the
// chart widget consumes, in fixed category order.
func ChartData(goals []Goal) ([]string, []int) {
	avg := CategoryAverages(goals)
	labels := make([]string, 0, len(Categories))
	values := make([]int, 0, len(Categories))
	for _, c := range Categories {
		labels = append(labels, string(c))
		values = append(values, avg[c])
	}
	return labels, values
}

type MonthGroup struct {
	Month Month
	Goals []Goal
}

// GroupByMonth partitions goals into the twelve calendar months in fixed
// order. Months without goals are omitted entirely.
func GroupByMonth(goals []Goal) []MonthGroup {
	byMonth := map[Month][]Goal{}
	for _, g := range goals {
		byMonth[g.Month] = append(byMonth[g.Month], g)
	}
	var out []MonthGroup
	for _, m := range Months {
		if len(byMonth[m]) == 0 {
			continue
		}
		out = append(out, MonthGroup{Month: m, Goals: byMonth[m]})
	}
	return out
}
