package domain

import "time"

// StageID is one step of the fixed project lifecycle.
type StageID string

const (
	StageLead        StageID = "lead"
	StageMeasurement StageID = "measurement"
	StageEstimate    StageID = "estimate"
	StageContract    StageID = "contract"
	StageProcurement StageID = "procurement"
	StageRough       StageID = "rough"
	StageFinishing   StageID = "finishing"
	StageHandover    StageID = "handover"
	StageWarranty    StageID = "warranty"
)

// StageOrder is the canonical lifecycle sequence.
var StageOrder = []StageID{
	StageLead,
	StageMeasurement,
	StageEstimate,
	StageContract,
	StageProcurement,
	StageRough,
	StageFinishing,
	StageHandover,
	StageWarranty,
}

type RoleID string

const (
	RoleAdmin       RoleID = "admin"
	RolePM          RoleID = "pm"
	RoleDesigner    RoleID = "designer"
	RoleForeman     RoleID = "foreman"
	RoleProcurement RoleID = "procurement"
	RoleFinance     RoleID = "finance"
	RoleDriver      RoleID = "driver"
	RoleExpeditor   RoleID = "expeditor"
	RoleLoader      RoleID = "loader"
	RoleWorker      RoleID = "worker"
	RoleClient      RoleID = "client"
)

// KnownRoles lists every role id the catalog may declare.
var KnownRoles = []RoleID{
	RoleAdmin, RolePM, RoleDesigner, RoleForeman, RoleProcurement,
	RoleFinance, RoleDriver, RoleExpeditor, RoleLoader, RoleWorker, RoleClient,
}

type RequirementKind string

const (
	RequirementBoolean   RequirementKind = "boolean"
	RequirementThreshold RequirementKind = "threshold"
	RequirementFile      RequirementKind = "file"
	RequirementText      RequirementKind = "text"
)

// Requirement is one typed gate a project's field bag must satisfy
// before its stage counts as complete.
type Requirement struct {
	Field     FieldKey        `json:"field" yaml:"field"`
	Label     string          `json:"label" yaml:"label"`
	Kind      RequirementKind `json:"kind" yaml:"kind"`
	Threshold float64         `json:"threshold,omitempty" yaml:"threshold,omitempty"`
}

// MetBy reports whether the requirement is satisfied by the given fields.
// Absent fields are treated as falsy, never as errors.
func (r Requirement) MetBy(fields FieldBag) bool {
	v := fields[r.Field]
	switch r.Kind {
	case RequirementBoolean:
		return v.IsTrue()
	case RequirementThreshold:
		n, ok := v.Number()
		return ok && n >= r.Threshold
	case RequirementFile, RequirementText:
		return v.Truthy()
	}
	return true
}

type Stage struct {
	ID       StageID       `json:"id" yaml:"id"`
	Name     string        `json:"name" yaml:"name"`
	Required []Requirement `json:"required" yaml:"required"`
}

// PermissionSet is a role's capability bundle.
type PermissionSet struct {
	MoveStage   bool           `json:"move_stage" yaml:"move_stage"`
	Finance     bool           `json:"finance" yaml:"finance"`
	Procurement bool           `json:"procurement" yaml:"procurement"`
	EditFields  EditPermission `json:"edit_fields" yaml:"edit_fields"`
}

type Role struct {
	ID          RoleID        `json:"id" yaml:"id"`
	Name        string        `json:"name" yaml:"name"`
	Views       []string      `json:"views" yaml:"views"`
	Permissions PermissionSet `json:"permissions" yaml:"permissions"`
}

// Project is a renovation job moving through the stage lifecycle.
type Project struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Client       string    `json:"client"`
	Stage        StageID   `json:"stage"`
	Budget       float64   `json:"budget"`
	Deadline     time.Time `json:"deadline" format:"date-time"`
	Assignees    []string  `json:"assignees,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	LastActivity time.Time `json:"last_activity" format:"date-time"`
	Fields       FieldBag  `json:"fields,omitempty"`
}

// Clone returns a deep copy safe to mutate independently.
func (p Project) Clone() Project {
	out := p
	out.Assignees = append([]string(nil), p.Assignees...)
	out.Tags = append([]string(nil), p.Tags...)
	out.Fields = p.Fields.Clone()
	return out
}

type RiskKind string

const (
	RiskOK      RiskKind = "ok"
	RiskIdle    RiskKind = "idle"
	RiskBlocked RiskKind = "blocked"
	RiskOverdue RiskKind = "overdue"
)

// Risk is a derived attention status. Stalled and urgent projects share
// the idle kind and differ only in label.
type Risk struct {
	Kind  RiskKind `json:"kind"`
	Label string   `json:"label"`
}

type AlertKind string

const (
	AlertDeadlineOverdue AlertKind = "deadline_overdue"
	AlertDeadlineSoon    AlertKind = "deadline_soon"
	AlertInactivity      AlertKind = "inactivity"
	AlertBlocked         AlertKind = "blocked"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Rank orders severities for alert sorting: error < warning < info.
func (s Severity) Rank() int {
	switch s {
	case SeverityError:
		return 0
	case SeverityWarning:
		return 1
	case SeverityInfo:
		return 2
	}
	return 3
}

// Alert is ephemeral and recomputed wholesale on every refresh. Ids are
// deterministic per project and kind.
type Alert struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	Kind      AlertKind `json:"kind"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	CreatedAt time.Time `json:"created_at" format:"date-time"`
}

type LogKind string

const (
	LogStageChange   LogKind = "stage_change"
	LogRuleTriggered LogKind = "rule_triggered"
	LogQuickFix      LogKind = "quick_fix"
	LogUserAction    LogKind = "user_action"
	LogSystem        LogKind = "system"
)

// LogEntry is an append-only journal record.
type LogEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp" format:"date-time"`
	ProjectID string    `json:"project_id,omitempty"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	Kind      LogKind   `json:"kind"`
}
