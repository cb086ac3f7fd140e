package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGoals() []Goal {
	return []Goal{
		{ID: 1, Title: "Run", Category: CategoryHealth, Month: MonthJanuary, Priority: PriorityHigh, Progress: 40},
		{ID: 2, Title: "Swim", Category: CategoryHealth, Month: MonthMarch, Priority: PriorityLow, Progress: 60},
		{ID: 3, Title: "Promotion", Category: CategoryCareer, Month: MonthJanuary, Priority: PriorityHigh, Progress: 10},
		{ID: 4, Title: "Read", Category: CategoryLearning, Month: MonthDecember, Priority: PriorityMedium, Progress: 75},
	}
}

func TestFilteredAllWildcardsReturnsInputUnchanged(t *testing.T) {
	goals := testGoals()
	out := Filtered(goals, DefaultFilters())
	assert.Equal(t, goals, out)
}

func TestFilteredSingleField(t *testing.T) {
	out := Filtered(testGoals(), Filters{Category: string(CategoryHealth), Priority: FilterAll, Month: FilterAll})
	require.Len(t, out, 2)
	assert.Equal(t, "Run", out[0].Title)
	assert.Equal(t, "Swim", out[1].Title)
}

func TestFilteredFieldsCombineWithAND(t *testing.T) {
	out := Filtered(testGoals(), Filters{
		Category: string(CategoryHealth),
		Priority: string(PriorityHigh),
		Month:    string(MonthJanuary),
	})
	require.Len(t, out, 1)
	assert.Equal(t, "Run", out[0].Title)
}

func TestFilteredNoMatch(t *testing.T) {
	out := Filtered(testGoals(), Filters{Category: string(CategoryCareer), Priority: string(PriorityLow), Month: FilterAll})
	assert.Empty(t, out)
}

func TestCategoryAverages(t *testing.T) {
	avg := CategoryAverages(testGoals())
	assert.Equal(t, 50, avg[CategoryHealth], "mean of 40 and 60")
	assert.Equal(t, 10, avg[CategoryCareer])
	assert.Equal(t, 75, avg[CategoryLearning])
}

func TestCategoryAveragesEmptyCategoryReportsZero(t *testing.T) {
	avg := CategoryAverages(nil)
	for _, c := range Categories {
		assert.Equal(t, 0, avg[c])
	}

	avg = CategoryAverages([]Goal{{ID: 1, Category: CategoryHealth, Progress: 80}})
	assert.Equal(t, 80, avg[CategoryHealth])
	assert.Equal(t, 0, avg[CategoryCareer])
	assert.Equal(t, 0, avg[CategoryLearning])
}

func TestCategoryAveragesRoundsToNearest(t *testing.T) {
	goals := []Goal{
		{ID: 1, Category: CategoryHealth, Progress: 33},
		{ID: 2, Category: CategoryHealth, Progress: 34},
		{ID: 3, Category: CategoryHealth, Progress: 34},
	}
	// 101/3 = 33.67 → 34
	assert.Equal(t, 34, CategoryAverages(goals)[CategoryHealth])
}

func TestChartDataFixedOrder(t *testing.T) {
	labels, values := ChartData(testGoals())
	assert.Equal(t, []string{"Health", "Career", "Learning"}, labels)
	assert.Equal(t, []int{50, 10, 75}, values)
}

func TestGroupByMonthCalendarOrderAndOmission(t *testing.T) {
	groups := GroupByMonth(testGoals())
	require.Len(t, groups, 3)
	assert.Equal(t, MonthJanuary, groups[0].Month)
	assert.Equal(t, MonthMarch, groups[1].Month)
	assert.Equal(t, MonthDecember, groups[2].Month)

	require.Len(t, groups[0].Goals, 2)
	assert.Equal(t, "Run", groups[0].Goals[0].Title)
	assert.Equal(t, "Promotion", groups[0].Goals[1].Title)
}

func TestGroupByMonthEmptyInput(t *testing.T) {
	assert.Empty(t, GroupByMonth(nil))
}
