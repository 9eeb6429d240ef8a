package engine

import (
	"fmt"
	"sort"
	"strings"

	"prostor/internal/domain"
)

// CheckConditions reports whether every condition of the rule holds for
// the project. Unknown condition kinds evaluate false, so a malformed
// rule can never match.
func (e Engine) CheckConditions(p domain.Project, rule domain.AutoRule) bool {
	for _, c := range rule.Conditions {
		if !e.checkCondition(p, c) {
			return false
		}
	}
	return true
}

func (e Engine) checkCondition(p domain.Project, c domain.RuleCondition) bool {
	switch c.Kind {
	case domain.CondStageIs:
		return p.Stage == domain.StageID(c.Value)
	case domain.CondFieldTrue:
		return p.Fields[domain.FieldKey(c.Value)].IsTrue()
	case domain.CondFieldFalse:
		return !p.Fields[domain.FieldKey(c.Value)].IsTrue()
	case domain.CondInactivityGte:
		return e.DaysIdle(p) >= int(c.Amount)
	case domain.CondDeadlineLte:
		return e.DaysToDeadline(p) <= int(c.Amount)
	case domain.CondTagIncludes:
		for _, t := range p.Tags {
			if t == c.Value {
				return true
			}
		}
		return false
	case domain.CondAssigneeIncludes:
		needle := strings.ToLower(c.Value)
		for _, a := range p.Assignees {
			if strings.Contains(strings.ToLower(a), needle) {
				return true
			}
		}
		return false
	case domain.CondPercentAtLeast:
		rough, _ := p.Fields[domain.FieldRoughDonePct].Number()
		finishing, _ := p.Fields[domain.FieldFinishingDonePct].Number()
		return max(rough, finishing) >= c.Amount
	}
	return false
}

// ApplyRule executes the rule's actions against a copy of the project.
// Under dry run no field or stage is touched, but the returned log
// entries are identical to a committed run. The moveNext gate is always
// evaluated against the pre-action snapshot.
func (e Engine) ApplyRule(p domain.Project, rule domain.AutoRule, dryRun bool) (domain.Project, []domain.LogEntry) {
	updated := p.Clone()
	var logs []domain.LogEntry

	for _, a := range rule.Actions {
		switch act := a.(type) {
		case domain.SetFieldAction:
			if !dryRun {
				updated.Fields[act.Field] = act.Value
			}
			logs = append(logs, e.ruleLog(p.ID, "rule_triggered",
				fmt.Sprintf("Правило %s: установлено поле %s = %s", rule.ID, act.Field, act.Value)))
		case domain.MoveNextAction:
			next, ok := e.Config.NextStage(p.Stage)
			if !dryRun && ok && e.CanAdvance(p) {
				updated.Stage = next
			}
			logs = append(logs, e.ruleLog(p.ID, "stage_change",
				fmt.Sprintf("Правило %s: переход на этап %s", rule.ID, next)))
		case domain.NotifyAction:
			logs = append(logs, e.ruleLog(p.ID, "notification", "Уведомление: "+act.Message))
		case domain.LogAction:
			msg := act.Message
			if msg == "" {
				msg = "Действие зафиксировано"
			}
			logs = append(logs, e.ruleLog(p.ID, "log", msg))
		default:
			// unknown action kinds are ignored, never fatal
		}
	}
	return updated, logs
}

func (e Engine) ruleLog(projectID, action, details string) domain.LogEntry {
	return domain.LogEntry{
		Timestamp: e.now(),
		ProjectID: projectID,
		Action:    action,
		Details:   details,
		Kind:      domain.LogRuleTriggered,
	}
}

// ApplyRules runs one rule pass over the projects. An empty targetID
// targets every project. Enabled rules run in ascending priority (stable
// on ties); a rule whose stage scope excludes the project is skipped;
// stopOnMatch ends the pass for that project only. Conditions and actions
// read the pristine per-project snapshot, so rules within one pass do not
// observe each other's writes. Under dry run the returned projects equal
// the input while the logs describe what a committed pass would do.
func (e Engine) ApplyRules(projects []domain.Project, targetID string, dryRun bool) ([]domain.Project, []domain.LogEntry) {
	enabled := make([]domain.AutoRule, 0, len(e.Config.Rules))
	for _, r := range e.Config.Rules {
		if r.Enabled {
			enabled = append(enabled, r)
		}
	}
	sort.SliceStable(enabled, func(i, j int) bool { return enabled[i].Priority < enabled[j].Priority })

	updated := append([]domain.Project(nil), projects...)
	var logs []domain.LogEntry

	for _, p := range projects {
		if targetID != "" && p.ID != targetID {
			continue
		}
		for _, rule := range enabled {
			if !rule.Scope.AppliesToStage(p.Stage) {
				continue
			}
			if !e.CheckConditions(p, rule) {
				continue
			}
			after, ruleLogs := e.ApplyRule(p, rule, dryRun)
			for i := range updated {
				if updated[i].ID == p.ID {
					updated[i] = after
				}
			}
			logs = append(logs, ruleLogs...)
			if rule.StopOnMatch {
				break
			}
		}
	}
	return updated, logs
}
