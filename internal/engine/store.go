package engine

import "strings"

// Pure transformations over the goal list. Every operation returns a new
// slice and either fully applies or leaves the input untouched; none of them
// can partially fail. Callers detect no-ops by comparing lengths or via the
// returned flags.

// CreateGoal appends a new goal with a fresh id, empty subtasks and
// progress 0. A title that trims to empty is a no-op.
func CreateGoal(goals []Goal, title string, category Category, month Month, priority Priority) []Goal {
	t := strings.TrimSpace(title)
	if t == "" {
		return goals
	}
	out := make([]Goal, len(goals), len(goals)+1)
	copy(out, goals)
	return append(out, Goal{
		ID:       nextID(),
		Title:    t,
		Category: category,
		Progress: 0,
		Month:    month,
		Priority: priority,
		Subtasks: []Subtask{},
	})
}

// DeleteGoal removes the goal with the given id, preserving order.
// Unknown ids are a no-op.
func DeleteGoal(goals []Goal, id int64) []Goal {
	out := make([]Goal, 0, len(goals))
	for _, g := range goals {
		if g.ID != id {
			out = append(out, g)
		}
	}
	return out
}

// AddSubtask appends an unchecked subtask to the matching goal. Empty text or
// an unknown goal id is a no-op. Progress is deliberately not recomputed
// here: it only changes on toggle, consistent with the no-subtasks → 0 rule.
func AddSubtask(goals []Goal, goalID int64, text string) []Goal {
	t := strings.TrimSpace(text)
	if t == "" {
		return goals
	}
	out := make([]Goal, len(goals))
	copy(out, goals)
	for i := range out {
		if out[i].ID != goalID {
			continue
		}
		subs := make([]Subtask, len(out[i].Subtasks), len(out[i].Subtasks)+1)
		copy(subs, out[i].Subtasks)
		out[i].Subtasks = append(subs, Subtask{ID: nextID(), Text: t, Done: false})
		return out
	}
	return goals
}

// ToggleSubtask flips the done flag of the matching subtask and recomputes
// the parent goal's progress. The second return is true when the recomputed
// progress landed on exactly 100, which raises the celebration signal.
// Unknown goal or subtask ids are a no-op.
func ToggleSubtask(goals []Goal, goalID, subtaskID int64) ([]Goal, bool) {
	out := make([]Goal, len(goals))
	copy(out, goals)
	for i := range out {
		if out[i].ID != goalID {
			continue
		}
		subs := make([]Subtask, len(out[i].Subtasks))
		copy(subs, out[i].Subtasks)
		for j := range subs {
			if subs[j].ID != subtaskID {
				continue
			}
			subs[j].Done = !subs[j].Done
			out[i].Subtasks = subs
			out[i].Progress = ProgressOf(subs)
			return out, out[i].Progress == 100
		}
		return goals, false
	}
	return goals, false
}

// ProgressOf computes the completion percentage of a subtask list:
// round(100 × done/total) with half-up rounding, or 0 when the list is empty.
func ProgressOf(subtasks []Subtask) int {
	total := len(subtasks)
	if total == 0 {
		return 0
	}
	done := 0
	for _, s := range subtasks {
		if s.Done {
			done++
		}
	}
	return (100*done + total/2) / total
}
