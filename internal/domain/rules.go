package domain

import "encoding/json"

// ConditionKind enumerates the rule predicates.
type ConditionKind string

const (
	CondStageIs          ConditionKind = "stageIs"
	CondFieldTrue        ConditionKind = "fieldTrue"
	CondFieldFalse       ConditionKind = "fieldFalse"
	CondInactivityGte    ConditionKind = "inactivityGte"
	CondDeadlineLte      ConditionKind = "deadlineLte"
	CondTagIncludes      ConditionKind = "tagIncludes"
	CondAssigneeIncludes ConditionKind = "assigneeIncludes"
	CondPercentAtLeast   ConditionKind = "percentAtLeast"
)

// RuleCondition is one predicate of a rule's conjunction. Value carries
// the operand for string-valued kinds, Amount for numeric ones.
type RuleCondition struct {
	Kind   ConditionKind `json:"kind"`
	Value  string        `json:"value,omitempty"`
	Amount float64       `json:"amount,omitempty"`
}

// RuleAction is a closed sum: exactly one variant per action kind, each
// carrying only the data it needs.
type RuleAction interface {
	ActionKind() string
	isRuleAction()
}

// SetFieldAction writes a field value (skipped under dry run).
type SetFieldAction struct {
	Field FieldKey
	Value FieldValue
}

// MoveNextAction advances the project to the next stage when all current
// stage requirements are met.
type MoveNextAction struct{}

// NotifyAction emits a notification log entry; nothing is persisted beyond
// the journal.
type NotifyAction struct {
	Message string
}

// LogAction records a free-form journal entry.
type LogAction struct {
	Message string
}

func (SetFieldAction) ActionKind() string { return "setField" }
func (MoveNextAction) ActionKind() string { return "moveNext" }
func (NotifyAction) ActionKind() string   { return "notify" }
func (LogAction) ActionKind() string      { return "log" }

func (SetFieldAction) isRuleAction() {}
func (MoveNextAction) isRuleAction() {}
func (NotifyAction) isRuleAction()   {}
func (LogAction) isRuleAction()      {}

func (a SetFieldAction) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind  string     `json:"kind"`
		Field FieldKey   `json:"field"`
		Value FieldValue `json:"value"`
	}{a.ActionKind(), a.Field, a.Value})
}

func (a MoveNextAction) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string `json:"kind"`
	}{a.ActionKind()})
}

func (a NotifyAction) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	}{a.ActionKind(), a.Message})
}

func (a LogAction) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind    string `json:"kind"`
		Message string `json:"message,omitempty"`
	}{a.ActionKind(), a.Message})
}

// RuleScope optionally restricts where a rule applies.
type RuleScope struct {
	Stages []StageID `json:"stages,omitempty" yaml:"stages,omitempty"`
	Roles  []RoleID  `json:"roles,omitempty" yaml:"roles,omitempty"`
}

// AppliesToStage reports whether the scope admits the stage. An empty
// allow-list admits every stage.
func (s RuleScope) AppliesToStage(id StageID) bool {
	if len(s.Stages) == 0 {
		return true
	}
	for _, st := range s.Stages {
		if st == id {
			return true
		}
	}
	return false
}

// AutoRule is condition-action automation. Conditions form a conjunction;
// actions run in order once all conditions hold.
type AutoRule struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Enabled     bool            `json:"enabled"`
	Priority    int             `json:"priority"`
	Conditions  []RuleCondition `json:"conditions"`
	Actions     []RuleAction    `json:"actions"`
	Scope       RuleScope       `json:"scope"`
	StopOnMatch bool            `json:"stop_on_match"`
}
