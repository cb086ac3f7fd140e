package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"goalboard/internal/engine"
	"goalboard/internal/ui"
)

type mode int

const (
	modeBrowse mode = iota
	modeAddGoal
	modeAddSubtask
)

// Form field focus while adding a goal.
const (
	focusTitle = iota
	focusCategory
	focusPriority
	focusMonth
	focusCount
)

// celebrationDuration is how long the full-screen effect stays up.
const celebrationDuration = 2500 * time.Millisecond

type celebrationOverMsg struct{}

type row struct {
	goalID    int64
	subtaskID int64 // 0 on goal rows
	isGoal    bool
}

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int
	pal    ui.Palette

	mode      mode
	selected  int
	formFocus int
	formCat   int
	formPri   int
	formMonth int

	titleInput textinput.Model
	subInput   textinput.Model
	subTarget  int64

	// celebrated makes the effect one-time: the signal stays raised until
	// reset, but the overlay is not shown again once it has played.
	celebrating bool
	celebrated  bool

	lastLog string
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	title := textinput.New()
	title.Placeholder = "What do you want to achieve this year?"
	title.CharLimit = 120

	sub := textinput.New()
	sub.Placeholder = "Break it down: next small step"
	sub.CharLimit = 120

	return boardModel{
		ctx:        ctx,
		svc:        svc,
		pal:        ui.NewPalette(svc.DarkMode()),
		titleInput: title,
		subInput:   sub,
		formMonth:  int(time.Now().Month()) - 1,
		lastLog:    "Ready.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case celebrationOverMsg:
		m.celebrating = false
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeAddGoal:
			return m.updateAddGoal(msg)
		case modeAddSubtask:
			return m.updateAddSubtask(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m boardModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if rows := m.rows(); m.selected < len(rows)-1 {
			m.selected++
		}
	case "a":
		m.mode = modeAddGoal
		m.formFocus = focusTitle
		m.titleInput.SetValue("")
		m.titleInput.Focus()
	case "s":
		if r, ok := m.selectedRow(); ok {
			m.mode = modeAddSubtask
			m.subTarget = r.goalID
			m.subInput.SetValue("")
			m.subInput.Focus()
		} else {
			m.lastLog = "Select a goal first."
		}
	case " ", "enter":
		r, ok := m.selectedRow()
		if !ok {
			break
		}
		if r.isGoal {
			m.lastLog = "Select a subtask to toggle (s adds one)."
			break
		}
		if m.svc.ToggleSubtask(m.ctx, r.goalID, r.subtaskID) {
			g := m.svc.Goal(r.goalID)
			m.lastLog = fmt.Sprintf("Toggled. %q now at %d%%.", g.Title, g.Progress)
			if m.svc.Celebrating() && !m.celebrated {
				m.celebrating = true
				m.celebrated = true
				return m, tea.Tick(celebrationDuration, func(time.Time) tea.Msg {
					return celebrationOverMsg{}
				})
			}
		}
	case "x":
		r, ok := m.selectedRow()
		if !ok || !r.isGoal {
			m.lastLog = "Select a goal to delete."
			break
		}
		g := m.svc.Goal(r.goalID)
		if m.svc.DeleteGoal(m.ctx, r.goalID) {
			m.lastLog = fmt.Sprintf("Deleted %q.", g.Title)
			m.clampSelection()
		}
	case "c":
		f := m.svc.Filters()
		f.Category = cycleFilter(f.Category, categoryValues())
		m.svc.SetFilters(m.ctx, f)
		m.clampSelection()
	case "p":
		f := m.svc.Filters()
		f.Priority = cycleFilter(f.Priority, priorityValues())
		m.svc.SetFilters(m.ctx, f)
		m.clampSelection()
	case "m":
		f := m.svc.Filters()
		f.Month = cycleFilter(f.Month, monthValues())
		m.svc.SetFilters(m.ctx, f)
		m.clampSelection()
	case "d":
		m.pal = ui.NewPalette(m.svc.ToggleDarkMode(m.ctx))
	case "R":
		if m.svc.GoalCount() > 0 {
			m.svc.ResetAll(m.ctx)
			m.celebrated = false
			m.celebrating = false
			m.selected = 0
			m.lastLog = "Everything cleared. Fresh year!"
		}
	}
	return m, nil
}

func (m boardModel) updateAddGoal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.titleInput.Blur()
		return m, nil
	case "tab":
		m.formFocus = (m.formFocus + 1) % focusCount
		m.syncTitleFocus()
		return m, nil
	case "shift+tab":
		m.formFocus = (m.formFocus + focusCount - 1) % focusCount
		m.syncTitleFocus()
		return m, nil
	case "left", "right":
		if m.formFocus == focusTitle {
			break
		}
		delta := 1
		if msg.String() == "left" {
			delta = -1
		}
		switch m.formFocus {
		case focusCategory:
			m.formCat = mod(m.formCat+delta, len(engine.Categories))
		case focusPriority:
			m.formPri = mod(m.formPri+delta, len(engine.Priorities))
		case focusMonth:
			m.formMonth = mod(m.formMonth+delta, len(engine.Months))
		}
		return m, nil
	case "enter":
		created := m.svc.CreateGoal(m.ctx,
			m.titleInput.Value(),
			engine.Categories[m.formCat],
			engine.Months[m.formMonth],
			engine.Priorities[m.formPri],
		)
		if created == nil {
			// Empty title: keep the form open, field untouched.
			m.lastLog = "A goal needs a title."
			return m, nil
		}
		m.mode = modeBrowse
		m.titleInput.SetValue("")
		m.titleInput.Blur()
		m.lastLog = fmt.Sprintf("Added %q to %s.", created.Title, created.Month)
		return m, nil
	}
	if m.formFocus == focusTitle {
		var cmd tea.Cmd
		m.titleInput, cmd = m.titleInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m boardModel) updateAddSubtask(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.subInput.Blur()
		return m, nil
	case "enter":
		created := m.svc.AddSubtask(m.ctx, m.subTarget, m.subInput.Value())
		if created == nil {
			m.lastLog = "A subtask needs some text."
			return m, nil
		}
		m.mode = modeBrowse
		m.subInput.SetValue("")
		m.subInput.Blur()
		m.lastLog = fmt.Sprintf("Subtask added: %q.", created.Text)
		return m, nil
	}
	var cmd tea.Cmd
	m.subInput, cmd = m.subInput.Update(msg)
	return m, cmd
}

func (m *boardModel) syncTitleFocus() {
	if m.formFocus == focusTitle {
		m.titleInput.Focus()
	} else {
		m.titleInput.Blur()
	}
}

// rows flattens the filtered, month-grouped goal list into selectable lines.
func (m boardModel) rows() []row {
	var out []row
	for _, grp := range engine.GroupByMonth(engine.Filtered(m.svc.Goals(), m.svc.Filters())) {
		for _, g := range grp.Goals {
			out = append(out, row{goalID: g.ID, isGoal: true})
			for _, st := range g.Subtasks {
				out = append(out, row{goalID: g.ID, subtaskID: st.ID})
			}
		}
	}
	return out
}

func (m boardModel) selectedRow() (row, bool) {
	rows := m.rows()
	if m.selected < 0 || m.selected >= len(rows) {
		return row{}, false
	}
	return rows[m.selected], true
}

func (m *boardModel) clampSelection() {
	if n := len(m.rows()); m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m boardModel) View() string {
	if m.celebrating {
		return m.renderCelebration()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.mode {
	case modeAddGoal:
		b.WriteString(m.renderAddGoalForm())
	case modeAddSubtask:
		b.WriteString(m.renderAddSubtaskForm())
	default:
		b.WriteString(m.renderGoals())
	}

	if m.svc.GoalCount() > 0 && m.mode == modeBrowse {
		b.WriteString("\n")
		b.WriteString(m.renderChart())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m boardModel) renderHeader() string {
	modeIcon := ui.IconSun
	if m.svc.DarkMode() {
		modeIcon = ui.IconMoon
	}
	title := m.pal.Heading(ui.IconTarget, "Goalboard")
	tagline := m.pal.Muted.Render("yearly goals, one subtask at a time")
	f := m.svc.Filters()
	filters := m.pal.Muted.Render(fmt.Sprintf("category=%s priority=%s month=%s", f.Category, f.Priority, f.Month))
	return fmt.Sprintf("%s %s  %s\n%s %s", title, tagline, modeIcon, m.pal.Key.Render("Filters:"), filters)
}

func (m boardModel) renderGoals() string {
	goals := engine.Filtered(m.svc.Goals(), m.svc.Filters())
	if len(goals) == 0 {
		if m.svc.GoalCount() == 0 {
			return m.pal.Muted.Render("No goals yet. Press a to add your first one.")
		}
		return m.pal.Muted.Render("Nothing matches the current filters.")
	}

	var out []string
	i := 0
	for _, grp := range engine.GroupByMonth(goals) {
		out = append(out, m.pal.H2.Render(ui.IconCalendar+" "+string(grp.Month)))
		for _, g := range grp.Goals {
			cursor := "  "
			title := g.Title
			if i == m.selected {
				cursor = "> "
				title = m.pal.SelectedRow.Render(title)
			}
			out = append(out, fmt.Sprintf("%s%s %s %s %s",
				cursor, title, m.pal.PriorityTag(g.Priority), m.pal.CategoryTag(g.Category), m.pal.ProgressText(g.Progress)))
			i++
			for _, st := range g.Subtasks {
				cursor = "    "
				text := st.Text
				if i == m.selected {
					cursor = "  > "
					text = m.pal.SelectedRow.Render(text)
				}
				out = append(out, fmt.Sprintf("%s%s %s", cursor, m.pal.Checkbox(st.Done), text))
				i++
			}
		}
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderChart() string {
	labels, values := engine.ChartData(m.svc.Goals())
	out := []string{m.pal.H2.Render(ui.IconChart + " Progress by category")}
	for i, label := range labels {
		out = append(out, fmt.Sprintf("  %-9s %s %3d%%", label, m.pal.Bar(values[i], 24), values[i]))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderAddGoalForm() string {
	focus := func(field int, s string) string {
		if m.formFocus == field {
			return m.pal.SelectedRow.Render("[" + s + "]")
		}
		return m.pal.Muted.Render(" " + s + " ")
	}
	out := []string{
		m.pal.H2.Render(ui.IconPlus + " New goal"),
		"  " + m.titleInput.View(),
		"",
		"  " + m.pal.Key.Render("Category:") + " " + focus(focusCategory, string(engine.Categories[m.formCat])),
		"  " + m.pal.Key.Render("Priority:") + " " + focus(focusPriority, string(engine.Priorities[m.formPri])),
		"  " + m.pal.Key.Render("Month:") + "    " + focus(focusMonth, string(engine.Months[m.formMonth])),
		"",
		m.pal.Muted.Render("  tab: next field · ←/→: change value · enter: create · esc: cancel"),
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderAddSubtaskForm() string {
	g := m.svc.Goal(m.subTarget)
	title := "?"
	if g != nil {
		title = g.Title
	}
	out := []string{
		m.pal.H2.Render(ui.IconPlus + " New subtask for " + title),
		"  " + m.subInput.View(),
		"",
		m.pal.Muted.Render("  enter: add · esc: cancel"),
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderCelebration() string {
	msg := strings.Join([]string{
		ui.IconParty + " " + ui.IconTrophy + " " + ui.IconParty,
		"",
		m.pal.Accent.Render("GOAL COMPLETED!"),
		"",
		m.pal.Muted.Render("100% complete, every subtask done"),
	}, "\n")
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
	}
	return "\n\n" + msg + "\n\n"
}

func (m boardModel) renderFooter() string {
	keys := "a: add · s: subtask · space: toggle · x: delete · c/p/m: filters · d: dark"
	if m.svc.GoalCount() > 0 {
		keys += " · R: reset"
	}
	keys += " · q: quit"
	return m.pal.Muted.Render(keys) + "\n" + m.lastLog
}

func cycleFilter(current string, values []string) string {
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return engine.FilterAll
}

func categoryValues() []string {
	out := []string{engine.FilterAll}
	for _, c := range engine.Categories {
		out = append(out, string(c))
	}
	return out
}

func priorityValues() []string {
	out := []string{engine.FilterAll}
	for _, p := range engine.Priorities {
		out = append(out, string(p))
	}
	return out
}

func monthValues() []string {
	out := []string{engine.FilterAll}
	for _, mo := range engine.Months {
		out = append(out, string(mo))
	}
	return out
}

func mod(v, n int) int {
	return ((v % n) + n) % n
}
