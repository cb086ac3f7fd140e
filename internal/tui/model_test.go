package tui

import (
	"context"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goalboard/internal/engine"
	"goalboard/internal/storage"
)

func newTestModel(t *testing.T) boardModel {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := storage.Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	svc, err := engine.NewService(ctx, storage.NewSQLiteKV(db), nil)
	require.NoError(t, err)

	return newBoardModel(ctx, svc)
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func apply(m boardModel, msgs ...tea.Msg) boardModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(boardModel)
	}
	return m
}

func typeText(m boardModel, s string) boardModel {
	for _, r := range s {
		m = apply(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestRowsFlattenGoalsAndSubtasks(t *testing.T) {
	m := newTestModel(t)
	ctx := context.Background()

	g := m.svc.CreateGoal(ctx, "Run", engine.CategoryHealth, engine.MonthMay, engine.PriorityHigh)
	m.svc.AddSubtask(ctx, g.ID, "5k")
	m.svc.AddSubtask(ctx, g.ID, "10k")
	m.svc.CreateGoal(ctx, "Read", engine.CategoryLearning, engine.MonthJanuary, engine.PriorityLow)

	rows := m.rows()
	require.Len(t, rows, 4)
	// January before May, goal row before its subtasks.
	assert.True(t, rows[0].isGoal)
	assert.False(t, rows[2].isGoal)
	assert.Equal(t, g.ID, rows[1].goalID)
}

func TestAddGoalThroughForm(t *testing.T) {
	m := newTestModel(t)

	m = apply(m, key("a"))
	require.Equal(t, modeAddGoal, m.mode)

	m = typeText(m, "Learn Go")
	m = apply(m, key("enter"))

	assert.Equal(t, modeBrowse, m.mode)
	require.Equal(t, 1, m.svc.GoalCount())
	assert.Equal(t, "Learn Go", m.svc.Goals()[0].Title)
}

func TestAddGoalEmptyTitleKeepsFormOpen(t *testing.T) {
	m := newTestModel(t)

	m = apply(m, key("a"), key("enter"))
	assert.Equal(t, modeAddGoal, m.mode)
	assert.Zero(t, m.svc.GoalCount())

	m = apply(m, key("esc"))
	assert.Equal(t, modeBrowse, m.mode)
}

func TestToggleSubtaskRaisesCelebrationOnce(t *testing.T) {
	m := newTestModel(t)
	ctx := context.Background()

	g := m.svc.CreateGoal(ctx, "Run", engine.CategoryHealth, engine.MonthMay, engine.PriorityHigh)
	m.svc.AddSubtask(ctx, g.ID, "5k")

	// Move to the subtask row and toggle it.
	m = apply(m, key("down"), key(" "))
	assert.True(t, m.celebrating)
	assert.True(t, m.celebrated)

	m = apply(m, celebrationOverMsg{})
	assert.False(t, m.celebrating)

	// Toggling back and forth does not replay the effect.
	m = apply(m, key(" "), key(" "))
	assert.False(t, m.celebrating)
}

func TestResetClearsBoard(t *testing.T) {
	m := newTestModel(t)
	ctx := context.Background()

	g := m.svc.CreateGoal(ctx, "Run", engine.CategoryHealth, engine.MonthMay, engine.PriorityHigh)
	st := m.svc.AddSubtask(ctx, g.ID, "5k")
	m.svc.ToggleSubtask(ctx, g.ID, st.ID)
	m.celebrated = true

	m = apply(m, key("R"))
	assert.Zero(t, m.svc.GoalCount())
	assert.False(t, m.svc.Celebrating())
	assert.False(t, m.celebrated)
}

func TestFilterCycling(t *testing.T) {
	m := newTestModel(t)

	m = apply(m, key("c"))
	assert.Equal(t, string(engine.CategoryHealth), m.svc.Filters().Category)

	// Full cycle returns to the wildcard.
	m = apply(m, key("c"), key("c"), key("c"))
	assert.Equal(t, engine.FilterAll, m.svc.Filters().Category)
}

func TestCycleFilterUnknownValueResets(t *testing.T) {
	assert.Equal(t, engine.FilterAll, cycleFilter("Bogus", categoryValues()))
}

func TestViewRendersChartOnlyWithGoals(t *testing.T) {
	m := newTestModel(t)
	assert.NotContains(t, m.View(), "Progress by category")

	m.svc.CreateGoal(context.Background(), "Run", engine.CategoryHealth, engine.MonthMay, engine.PriorityHigh)
	assert.Contains(t, m.View(), "Progress by category")
}
