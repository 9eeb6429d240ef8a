// Package store owns the authoritative project, rule, alert and log
// collections and sequences engine calls around every mutation. The
// engine itself is pure; the store provides the single-writer locking,
// permission policy and change notification the engine deliberately
// leaves to its caller.
package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"prostor/internal/domain"
	"prostor/internal/engine"
)

var ErrNotFound = errors.New("project not found")

// Store is the explicit state container. All mutation methods run the
// same cycle: mutate, refresh alerts, apply rules where applicable,
// refresh alerts again, notify subscribers.
type Store struct {
	mu  sync.Mutex
	eng engine.Engine

	projects []domain.Project
	rules    []domain.AutoRule
	alerts   []domain.Alert
	logs     []domain.LogEntry

	subs []func()
}

// New seeds a store with the given projects and the engine's rule catalog,
// computing the initial alert set.
func New(eng engine.Engine, projects []domain.Project) *Store {
	s := &Store{
		eng:      eng,
		projects: append([]domain.Project(nil), projects...),
		rules:    append([]domain.AutoRule(nil), eng.Config.Rules...),
	}
	s.alerts = eng.GenerateAlerts(s.projects)
	return s
}

// Subscribe registers a callback invoked after every committed mutation.
// Callbacks run outside the store lock and must not block indefinitely.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) notify() {
	s.mu.Lock()
	subs := append([]func(){}, s.subs...)
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// Projects returns a snapshot copy of all projects.
func (s *Store) Projects() []domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Project, len(s.projects))
	for i, p := range s.projects {
		out[i] = p.Clone()
	}
	return out
}

// Project returns a snapshot of one project.
func (s *Store) Project(id string) (domain.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.index(id); i >= 0 {
		return s.projects[i].Clone(), true
	}
	return domain.Project{}, false
}

// Rules returns the rule catalog.
func (s *Store) Rules() []domain.AutoRule {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.AutoRule(nil), s.rules...)
}

// Alerts returns the current alert set.
func (s *Store) Alerts() []domain.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Alert(nil), s.alerts...)
}

// Logs returns the journal, oldest first.
func (s *Store) Logs() []domain.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.LogEntry(nil), s.logs...)
}

// UpdateProject applies a free-form mutation to one project, bumps its
// activity timestamp and refreshes alerts.
func (s *Store) UpdateProject(id string, mutate func(*domain.Project)) error {
	s.mu.Lock()
	i := s.index(id)
	if i < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	p := s.projects[i].Clone()
	mutate(&p)
	p.ID = id
	p.LastActivity = s.eng.Now()
	s.projects[i] = p
	s.refreshAlertsLocked()
	s.mu.Unlock()
	s.notify()
	return nil
}

// UpdateProjectField writes one field on behalf of a role. A role without
// edit permission on the field gets a denied journal entry and no state
// change. Successful edits bump LastActivity and trigger a rule pass for
// the project.
func (s *Store) UpdateProjectField(id string, role domain.RoleID, field domain.FieldKey, value domain.FieldValue) error {
	s.mu.Lock()
	i := s.index(id)
	if i < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	r, ok := s.eng.Config.RoleByID(role)
	if !ok || !r.Permissions.EditFields.Allows(field) {
		s.appendLogLocked(domain.LogEntry{
			ProjectID: id,
			Action:    "edit_denied",
			Details:   fmt.Sprintf("Роль %s не имеет права изменять поле %s", roleName(r, role), field),
			Kind:      domain.LogUserAction,
		})
		s.mu.Unlock()
		s.notify()
		return nil
	}
	p := s.projects[i].Clone()
	p.Fields[field] = value
	p.LastActivity = s.eng.Now()
	s.projects[i] = p
	s.refreshAlertsLocked()
	s.applyRulesLocked(id)
	s.mu.Unlock()
	s.notify()
	return nil
}

// MoveProjectToStage moves a project to the given stage on behalf of a
// role. The stage must exist; roles without the move capability get a
// denied journal entry instead of an error.
func (s *Store) MoveProjectToStage(id string, role domain.RoleID, stage domain.StageID) error {
	s.mu.Lock()
	i := s.index(id)
	if i < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	if _, ok := s.eng.Config.StageByID(stage); !ok {
		s.mu.Unlock()
		return fmt.Errorf("unknown stage %q", stage)
	}
	r, ok := s.eng.Config.RoleByID(role)
	if !ok || !r.Permissions.MoveStage {
		s.appendLogLocked(domain.LogEntry{
			ProjectID: id,
			Action:    "move_denied",
			Details:   fmt.Sprintf("Роль %s не имеет права перемещать проекты", roleName(r, role)),
			Kind:      domain.LogUserAction,
		})
		s.mu.Unlock()
		s.notify()
		return nil
	}
	p := s.projects[i].Clone()
	p.Stage = stage
	p.LastActivity = s.eng.Now()
	s.projects[i] = p
	s.appendLogLocked(domain.LogEntry{
		ProjectID: id,
		Action:    "stage_change",
		Details:   fmt.Sprintf("Проект перемещён на этап: %s", stage),
		Kind:      domain.LogStageChange,
	})
	s.refreshAlertsLocked()
	s.mu.Unlock()
	s.notify()
	return nil
}

// ApplyRules runs a rule pass over one project (or all, when id is empty),
// merges the resulting snapshots and appends the emitted journal entries.
func (s *Store) ApplyRules(id string) error {
	s.mu.Lock()
	if id != "" && s.index(id) < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.applyRulesLocked(id)
	s.mu.Unlock()
	s.notify()
	return nil
}

// FillMinimum force-satisfies the project's unmet boolean and threshold
// requirements and journals the quick fix. LastActivity stays untouched;
// a quick fix is not user activity.
func (s *Store) FillMinimum(id string) error {
	s.mu.Lock()
	i := s.index(id)
	if i < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.projects[i] = s.eng.FillMinimum(s.projects[i])
	s.appendLogLocked(domain.LogEntry{
		ProjectID: id,
		Action:    "quick_fix",
		Details:   "Применён быстрый фикс: заполнены минимальные требования",
		Kind:      domain.LogQuickFix,
	})
	s.refreshAlertsLocked()
	s.mu.Unlock()
	s.notify()
	return nil
}

// RefreshAlerts regenerates the alert set from current project state.
func (s *Store) RefreshAlerts() {
	s.mu.Lock()
	s.refreshAlertsLocked()
	s.mu.Unlock()
	s.notify()
}

// AddLog appends a journal entry, assigning id and timestamp when unset.
func (s *Store) AddLog(entry domain.LogEntry) {
	s.mu.Lock()
	s.appendLogLocked(entry)
	s.mu.Unlock()
	s.notify()
}

func (s *Store) index(id string) int {
	for i, p := range s.projects {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) applyRulesLocked(targetID string) {
	updated, logs := s.eng.ApplyRules(s.projects, targetID, false)
	s.projects = updated
	for _, l := range logs {
		s.appendLogLocked(l)
	}
	s.refreshAlertsLocked()
}

func (s *Store) refreshAlertsLocked() {
	s.alerts = s.eng.GenerateAlerts(s.projects)
}

func (s *Store) appendLogLocked(entry domain.LogEntry) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.eng.Now()
	}
	s.logs = append(s.logs, entry)
}

func roleName(r domain.Role, id domain.RoleID) string {
	if r.Name != "" {
		return r.Name
	}
	return string(id)
}
