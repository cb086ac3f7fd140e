package engine

type Category string

const (
	CategoryHealth   Category = "Health"
	CategoryCareer   Category = "Career"
	CategoryLearning Category = "Learning"
)

// Categories is the fixed display order used by the chart.
var Categories = []Category{CategoryHealth, CategoryCareer, CategoryLearning}

func (c Category) IsValid() bool {
	switch c {
	case CategoryHealth, CategoryCareer, CategoryLearning:
		return true
	default:
		return false
	}
}

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

type Month string

const (
	MonthJanuary   Month = "January"
	MonthFebruary  Month = "February"
	MonthMarch     Month = "March"
	MonthApril     Month = "April"
	MonthMay       Month = "May"
	MonthJune      Month = "June"
	MonthJuly      Month = "July"
	MonthAugust    Month = "August"
	MonthSeptember Month = "September"
	MonthOctober   Month = "October"
	MonthNovember  Month = "November"
	MonthDecember  Month = "December"
)

// Months is the fixed calendar order used when grouping goals for display.
var Months = []Month{
	MonthJanuary, MonthFebruary, MonthMarch, MonthApril,
	MonthMay, MonthJune, MonthJuly, MonthAugust,
	MonthSeptember, MonthOctober, MonthNovember, MonthDecember,
}

func (m Month) IsValid() bool {
	for _, v := range Months {
		if m == v {
			return true
		}
	}
	return false
}

type Subtask struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

type Goal struct {
	ID       int64     `json:"id"`
	Title    string    `json:"title"`
	Category Category  `json:"category"`
	Progress int       `json:"progress"`
	Month    Month     `json:"month"`
	Priority Priority  `json:"priority"`
	Subtasks []Subtask `json:"subtasks"`
}

// FilterAll is the wildcard value for any filter field.
const FilterAll = "All"

// Filters narrows the displayed goal set. Each field holds either FilterAll
// or a value of the matching enum; non-wildcard fields combine with AND.
type Filters struct {
	Category string `json:"category"`
	Priority string `json:"priority"`
	Month    string `json:"month"`
}

func DefaultFilters() Filters {
	return Filters{Category: FilterAll, Priority: FilterAll, Month: FilterAll}
}
