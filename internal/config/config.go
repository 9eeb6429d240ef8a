package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"prostor/internal/domain"
)

// Config models prostor.yml: the stage, role and automation-rule catalogs.
// All three are process-wide read-only once loaded.
type Config struct {
	Stages []domain.Stage
	Roles  []domain.Role
	Rules  []domain.AutoRule
}

// StageByID looks up a stage by id.
func (c *Config) StageByID(id domain.StageID) (domain.Stage, bool) {
	for _, s := range c.Stages {
		if s.ID == id {
			return s, true
		}
	}
	return domain.Stage{}, false
}

// StageIndex returns the stage's position in the catalog, or -1.
func (c *Config) StageIndex(id domain.StageID) int {
	for i, s := range c.Stages {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// NextStage returns the stage after id, if one exists.
func (c *Config) NextStage(id domain.StageID) (domain.StageID, bool) {
	idx := c.StageIndex(id)
	if idx < 0 || idx >= len(c.Stages)-1 {
		return "", false
	}
	return c.Stages[idx+1].ID, true
}

// RoleByID looks up a role by id.
func (c *Config) RoleByID(id domain.RoleID) (domain.Role, bool) {
	for _, r := range c.Roles {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Role{}, false
}

// rawConfig is the YAML shape before rule actions are lifted into their
// typed variants.
type rawConfig struct {
	Stages []domain.Stage `yaml:"stages"`
	Roles  []domain.Role  `yaml:"roles"`
	Rules  []rawRule      `yaml:"rules"`
}

type rawRule struct {
	ID          string           `yaml:"id"`
	Name        string           `yaml:"name"`
	Enabled     bool             `yaml:"enabled"`
	Priority    int              `yaml:"priority"`
	Conditions  []rawCondition   `yaml:"conditions"`
	Actions     []rawAction      `yaml:"actions"`
	Scope       domain.RuleScope `yaml:"scope"`
	StopOnMatch bool             `yaml:"stop_on_match"`
}

type rawCondition struct {
	Kind  domain.ConditionKind `yaml:"kind"`
	Value any                  `yaml:"value"`
}

type rawAction struct {
	Kind    string `yaml:"kind"`
	Field   string `yaml:"field"`
	Value   any    `yaml:"value"`
	Message string `yaml:"message"`
}

// FromYAML parses and validates config from raw YAML bytes.
func FromYAML(data []byte) (*Config, error) {
	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid config yaml: %w", err)
	}
	cfg := &Config{Stages: raw.Stages, Roles: raw.Roles}
	for _, rr := range raw.Rules {
		rule, err := buildRule(rr)
		if err != nil {
			return nil, err
		}
		cfg.Rules = append(cfg.Rules, rule)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromFile reads YAML config from the given path.
func FromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromYAML(data)
}

// Load returns the config at path, or the built-in default when path is empty.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return FromFile(path)
}

// Default returns the built-in catalog.
func Default() *Config {
	cfg, _ := FromYAML([]byte(defaultTemplate))
	return cfg
}

// GenerateDefault returns the default config YAML.
func GenerateDefault() string {
	return defaultTemplate
}

func buildRule(rr rawRule) (domain.AutoRule, error) {
	rule := domain.AutoRule{
		ID:          rr.ID,
		Name:        rr.Name,
		Enabled:     rr.Enabled,
		Priority:    rr.Priority,
		Scope:       rr.Scope,
		StopOnMatch: rr.StopOnMatch,
	}
	if rule.ID == "" {
		return rule, fmt.Errorf("rule without id")
	}
	for i, rc := range rr.Conditions {
		cond, err := buildCondition(rc)
		if err != nil {
			return rule, fmt.Errorf("rule %s condition %d: %w", rr.ID, i, err)
		}
		rule.Conditions = append(rule.Conditions, cond)
	}
	for i, ra := range rr.Actions {
		act, err := buildAction(ra)
		if err != nil {
			return rule, fmt.Errorf("rule %s action %d: %w", rr.ID, i, err)
		}
		rule.Actions = append(rule.Actions, act)
	}
	return rule, nil
}

func buildCondition(rc rawCondition) (domain.RuleCondition, error) {
	cond := domain.RuleCondition{Kind: rc.Kind}
	switch rc.Kind {
	case domain.CondStageIs, domain.CondFieldTrue, domain.CondFieldFalse,
		domain.CondTagIncludes, domain.CondAssigneeIncludes:
		s, ok := rc.Value.(string)
		if !ok {
			return cond, fmt.Errorf("condition %s needs a string value", rc.Kind)
		}
		cond.Value = s
	case domain.CondInactivityGte, domain.CondDeadlineLte, domain.CondPercentAtLeast:
		switch n := rc.Value.(type) {
		case int:
			cond.Amount = float64(n)
		case float64:
			cond.Amount = n
		default:
			return cond, fmt.Errorf("condition %s needs a numeric value", rc.Kind)
		}
	default:
		return cond, fmt.Errorf("unknown condition kind %q", rc.Kind)
	}
	return cond, nil
}

func buildAction(ra rawAction) (domain.RuleAction, error) {
	switch ra.Kind {
	case "setField":
		if ra.Field == "" {
			return nil, fmt.Errorf("setField needs a field")
		}
		v, err := domain.FieldValueOf(ra.Value)
		if err != nil {
			return nil, err
		}
		return domain.SetFieldAction{Field: domain.FieldKey(ra.Field), Value: v}, nil
	case "moveNext":
		return domain.MoveNextAction{}, nil
	case "notify":
		return domain.NotifyAction{Message: ra.Message}, nil
	case "log":
		return domain.LogAction{Message: ra.Message}, nil
	}
	return nil, fmt.Errorf("unknown action kind %q", ra.Kind)
}

// Validate ensures the catalogs meet the closed-set structure the engine
// relies on.
func (c *Config) Validate() error {
	if len(c.Stages) == 0 {
		return fmt.Errorf("config.stages is required")
	}
	canonical := map[domain.StageID]int{}
	for i, id := range domain.StageOrder {
		canonical[id] = i
	}
	seenStage := map[domain.StageID]bool{}
	prev := -1
	for _, s := range c.Stages {
		pos, ok := canonical[s.ID]
		if !ok {
			return fmt.Errorf("unknown stage id %q", s.ID)
		}
		if seenStage[s.ID] {
			return fmt.Errorf("duplicate stage id %q", s.ID)
		}
		seenStage[s.ID] = true
		if pos <= prev {
			return fmt.Errorf("stage %q out of lifecycle order", s.ID)
		}
		prev = pos
		for _, req := range s.Required {
			if req.Field == "" {
				return fmt.Errorf("stage %s has a requirement without field", s.ID)
			}
			if !domain.IsKnownField(req.Field) {
				return fmt.Errorf("stage %s requirement references unknown field %q", s.ID, req.Field)
			}
			switch req.Kind {
			case domain.RequirementBoolean, domain.RequirementFile, domain.RequirementText:
			case domain.RequirementThreshold:
				if req.Threshold <= 0 {
					return fmt.Errorf("stage %s requirement %s needs a positive threshold", s.ID, req.Field)
				}
			default:
				return fmt.Errorf("stage %s requirement %s has unknown kind %q", s.ID, req.Field, req.Kind)
			}
		}
	}
	knownRole := map[domain.RoleID]bool{}
	for _, id := range domain.KnownRoles {
		knownRole[id] = true
	}
	seenRole := map[domain.RoleID]bool{}
	for _, r := range c.Roles {
		if !knownRole[r.ID] {
			return fmt.Errorf("unknown role id %q", r.ID)
		}
		if seenRole[r.ID] {
			return fmt.Errorf("duplicate role id %q", r.ID)
		}
		seenRole[r.ID] = true
		for _, f := range r.Permissions.EditFields.Fields() {
			if !domain.IsKnownField(f) {
				return fmt.Errorf("role %s grants edit on unknown field %q", r.ID, f)
			}
		}
	}
	seenRule := map[string]bool{}
	for _, rule := range c.Rules {
		if seenRule[rule.ID] {
			return fmt.Errorf("duplicate rule id %q", rule.ID)
		}
		seenRule[rule.ID] = true
		for _, st := range rule.Scope.Stages {
			if _, ok := canonical[st]; !ok {
				return fmt.Errorf("rule %s scope references unknown stage %q", rule.ID, st)
			}
		}
		for _, ro := range rule.Scope.Roles {
			if !knownRole[ro] {
				return fmt.Errorf("rule %s scope references unknown role %q", rule.ID, ro)
			}
		}
	}
	return nil
}
