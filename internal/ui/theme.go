package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"goalboard/internal/engine"
)

// Goalboard theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconTarget   = "🎯"
	IconSparkle  = "✨"
	IconPlus     = "➕"
	IconDone     = "✅"
	IconTrophy   = "🏆"
	IconInfo     = "ℹ️"
	IconWarn     = "⚠️"
	IconError    = "🧨"
	IconTrash    = "🗑️"
	IconChart    = "📊"
	IconMoon     = "🌙"
	IconSun      = "☀️"
	IconParty    = "🎉"
	IconCalendar = "📅"
)

// Palette bundles the styles for one color scheme. Both schemes share the
// accent colors; dark mode only swaps the neutral tones.
type Palette struct {
	Title  lipgloss.Style
	H2     lipgloss.Style
	Muted  lipgloss.Style
	Key    lipgloss.Style
	Good   lipgloss.Style
	Warn   lipgloss.Style
	Bad    lipgloss.Style
	Accent lipgloss.Style

	Panel       lipgloss.Style
	SelectedRow lipgloss.Style

	TagHigh   lipgloss.Style
	TagMedium lipgloss.Style
	TagLow    lipgloss.Style
	TagCat    lipgloss.Style
}

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cGold    = lipgloss.Color("220") // gold
)

// NewPalette builds the style set for the given scheme.
func NewPalette(dark bool) Palette {
	muted := lipgloss.Color("240")
	if dark {
		muted = lipgloss.Color("246")
	}
	tag := lipgloss.NewStyle().Padding(0, 1)
	return Palette{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(cAccent),
		H2:     lipgloss.NewStyle().Bold(true).Foreground(cPrimary),
		Muted:  lipgloss.NewStyle().Foreground(muted),
		Key:    lipgloss.NewStyle().Bold(true).Foreground(cPrimary),
		Good:   lipgloss.NewStyle().Bold(true).Foreground(cGood),
		Warn:   lipgloss.NewStyle().Bold(true).Foreground(cWarn),
		Bad:    lipgloss.NewStyle().Bold(true).Foreground(cBad),
		Accent: lipgloss.NewStyle().Bold(true).Foreground(cGold),

		Panel:       lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(muted).Padding(0, 1),
		SelectedRow: lipgloss.NewStyle().Bold(true).Foreground(cGold),

		TagHigh:   tag.Foreground(cBad),
		TagMedium: tag.Foreground(cWarn),
		TagLow:    tag.Foreground(cGood),
		TagCat:    tag.Foreground(cPrimary),
	}
}

// Default is the palette used by plain CLI output, where the persisted
// dark-mode flag is not yet known.
var Default = NewPalette(false)

func (p Palette) Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return p.Title.Render(icon + title)
}

func (p Palette) LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", p.Key.Render(label+":"), value)
}

// PriorityTag renders a colored priority marker.
func (p Palette) PriorityTag(pr engine.Priority) string {
	switch pr {
	case engine.PriorityHigh:
		return p.TagHigh.Render("[high]")
	case engine.PriorityMedium:
		return p.TagMedium.Render("[med]")
	case engine.PriorityLow:
		return p.TagLow.Render("[low]")
	default:
		return p.Muted.Render("[?]")
	}
}

func (p Palette) CategoryTag(c engine.Category) string {
	return p.TagCat.Render("#" + strings.ToLower(string(c)))
}

// ProgressText colors a percentage: green at 100, orange in between, muted at 0.
func (p Palette) ProgressText(progress int) string {
	s := fmt.Sprintf("%d%%", progress)
	switch {
	case progress >= 100:
		return p.Good.Render(s)
	case progress > 0:
		return p.Warn.Render(s)
	default:
		return p.Muted.Render(s)
	}
}

// Bar renders a fixed-width chart bar for a 0-100 value.
func (p Palette) Bar(value int, width int) string {
	if width < 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}
	filled := value * width / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return p.Accent.Render(bar)
}

// Checkbox renders a subtask toggle marker.
func (p Palette) Checkbox(done bool) string {
	if done {
		return p.Good.Render("[x]")
	}
	return p.Muted.Render("[ ]")
}
