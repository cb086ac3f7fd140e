package engine

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"goalboard/internal/storage"
)

// Service owns the in-memory application state and keeps it write-through
// persisted. Mutations run the pure transformations from store.go, persist
// the affected key synchronously, then notify subscribers so the
// presentation layer can re-render (explicit observer in place of UI
// reactivity). Persistence failures on write are logged and otherwise
// ignored; a malformed stored payload at load time is fatal.
type Service struct {
	kv  storage.KV
	log *zap.Logger

	goals       []Goal
	darkMode    bool
	filters     Filters
	celebrating bool

	observers []func()
}

// NewService loads the persisted state and returns a ready Service.
// Each persisted key is independently optional; missing keys fall back to
// defaults (empty list, light mode, all-wildcard filters). Malformed stored
// JSON is returned as an error and must abort startup.
func NewService(ctx context.Context, kv storage.KV, log *zap.Logger) (*Service, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Service{
		kv:      kv,
		log:     log,
		goals:   []Goal{},
		filters: DefaultFilters(),
	}

	if raw, ok, err := kv.Get(ctx, storage.KeyGoals); err != nil {
		return nil, err
	} else if ok {
		if err := json.Unmarshal([]byte(raw), &s.goals); err != nil {
			return nil, fmt.Errorf("decode stored goals: %w", err)
		}
	}
	if raw, ok, err := kv.Get(ctx, storage.KeyDarkMode); err != nil {
		return nil, err
	} else if ok {
		if err := json.Unmarshal([]byte(raw), &s.darkMode); err != nil {
			return nil, fmt.Errorf("decode stored dark mode: %w", err)
		}
	}
	if raw, ok, err := kv.Get(ctx, storage.KeyFilters); err != nil {
		return nil, err
	} else if ok {
		if err := json.Unmarshal([]byte(raw), &s.filters); err != nil {
			return nil, fmt.Errorf("decode stored filters: %w", err)
		}
	}

	log.Debug("state loaded", zap.Int("goals", len(s.goals)), zap.Bool("dark", s.darkMode))
	return s, nil
}

// Subscribe registers a callback invoked after every applied mutation.
func (s *Service) Subscribe(fn func()) {
	s.observers = append(s.observers, fn)
}

func (s *Service) notify() {
	for _, fn := range s.observers {
		fn()
	}
}

// Goals returns a copy of the goal list.
func (s *Service) Goals() []Goal {
	out := make([]Goal, len(s.goals))
	copy(out, s.goals)
	return out
}

func (s *Service) DarkMode() bool    { return s.darkMode }
func (s *Service) Filters() Filters  { return s.filters }
func (s *Service) Celebrating() bool { return s.celebrating }
func (s *Service) GoalCount() int    { return len(s.goals) }

// Goal returns the goal with the given id, or nil.
func (s *Service) Goal(id int64) *Goal {
	for i := range s.goals {
		if s.goals[i].ID == id {
			g := s.goals[i]
			return &g
		}
	}
	return nil
}

// CreateGoal appends a new goal. Returns the created goal, or nil when the
// title was empty and nothing happened.
func (s *Service) CreateGoal(ctx context.Context, title string, category Category, month Month, priority Priority) *Goal {
	next := CreateGoal(s.goals, title, category, month, priority)
	if len(next) == len(s.goals) {
		return nil
	}
	s.goals = next
	created := s.goals[len(s.goals)-1]
	s.log.Info("goal created",
		zap.Int64("id", created.ID),
		zap.String("title", created.Title),
		zap.String("category", string(created.Category)))
	s.persistGoals(ctx)
	s.notify()
	return &created
}

// DeleteGoal removes the goal with the given id. Returns false on unknown id.
func (s *Service) DeleteGoal(ctx context.Context, id int64) bool {
	next := DeleteGoal(s.goals, id)
	if len(next) == len(s.goals) {
		return false
	}
	s.goals = next
	s.log.Info("goal deleted", zap.Int64("id", id))
	s.persistGoals(ctx)
	s.notify()
	return true
}

// AddSubtask appends a subtask to the matching goal. Returns the created
// subtask, or nil when the text was empty or the goal unknown.
func (s *Service) AddSubtask(ctx context.Context, goalID int64, text string) *Subtask {
	next := AddSubtask(s.goals, goalID, text)
	if sameGoals(next, s.goals) {
		return nil
	}
	s.goals = next
	var created Subtask
	for i := range s.goals {
		if s.goals[i].ID == goalID {
			created = s.goals[i].Subtasks[len(s.goals[i].Subtasks)-1]
		}
	}
	s.log.Info("subtask added", zap.Int64("goal", goalID), zap.Int64("id", created.ID))
	s.persistGoals(ctx)
	s.notify()
	return &created
}

// ToggleSubtask flips a subtask's done flag and recomputes the parent's
// progress. When progress lands on exactly 100 the celebration signal is
// raised. Returns false when the ids matched nothing.
func (s *Service) ToggleSubtask(ctx context.Context, goalID, subtaskID int64) bool {
	next, completed := ToggleSubtask(s.goals, goalID, subtaskID)
	if sameGoals(next, s.goals) {
		return false
	}
	s.goals = next
	if completed {
		s.celebrating = true
		s.log.Info("goal completed", zap.Int64("goal", goalID))
	}
	s.persistGoals(ctx)
	s.notify()
	return true
}

// ResetAll clears the goal list and the celebration signal.
func (s *Service) ResetAll(ctx context.Context) {
	s.goals = []Goal{}
	s.celebrating = false
	s.log.Info("all goals reset")
	s.persistGoals(ctx)
	s.notify()
}

// SetDarkMode persists the dark-mode flag.
func (s *Service) SetDarkMode(ctx context.Context, dark bool) {
	if s.darkMode == dark {
		return
	}
	s.darkMode = dark
	s.persist(ctx, storage.KeyDarkMode, dark)
	s.notify()
}

// ToggleDarkMode flips and persists the dark-mode flag, returning the new value.
func (s *Service) ToggleDarkMode(ctx context.Context) bool {
	s.darkMode = !s.darkMode
	s.persist(ctx, storage.KeyDarkMode, s.darkMode)
	s.notify()
	return s.darkMode
}

// SetFilters persists the filter selection.
func (s *Service) SetFilters(ctx context.Context, f Filters) {
	s.filters = f
	s.persist(ctx, storage.KeyFilters, f)
	s.notify()
}

func (s *Service) persistGoals(ctx context.Context) {
	s.persist(ctx, storage.KeyGoals, s.goals)
}

// persist serializes and writes one key. Write-through is fire-and-forget:
// failures are logged, never surfaced.
func (s *Service) persist(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Warn("marshal state", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.kv.Set(ctx, key, string(data)); err != nil {
		s.log.Warn("persist state", zap.String("key", key), zap.Error(err))
	}
}

// sameGoals reports whether a pure transformation returned its input
// unchanged (no-op detection; the transformations return the original slice
// in that case).
func sameGoals(a, b []Goal) bool {
	return len(a) == len(b) && (len(a) == 0 || &a[0] == &b[0])
}
