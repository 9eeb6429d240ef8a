package config_test

import (
	"strings"
	"testing"

	"prostor/internal/config"
	"prostor/internal/domain"
)

func TestDefaultCatalog(t *testing.T) {
	cfg := config.Default()
	if cfg == nil {
		t.Fatalf("built-in catalog must parse")
	}
	if got := len(cfg.Stages); got != len(domain.StageOrder) {
		t.Fatalf("stages: got %d, want %d", got, len(domain.StageOrder))
	}
	for i, s := range cfg.Stages {
		if s.ID != domain.StageOrder[i] {
			t.Fatalf("stage %d: got %s, want %s", i, s.ID, domain.StageOrder[i])
		}
	}
	if got := len(cfg.Roles); got != len(domain.KnownRoles) {
		t.Fatalf("roles: got %d, want %d", got, len(domain.KnownRoles))
	}
	if got := len(cfg.Rules); got != 3 {
		t.Fatalf("rules: got %d, want 3", got)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default catalog must validate: %v", err)
	}
}

func TestDefaultRolePermissions(t *testing.T) {
	cfg := config.Default()
	admin, ok := cfg.RoleByID(domain.RoleAdmin)
	if !ok {
		t.Fatalf("admin role missing")
	}
	if !admin.Permissions.MoveStage || !admin.Permissions.EditFields.All() {
		t.Fatalf("admin must move stages and edit all fields")
	}
	foreman, ok := cfg.RoleByID(domain.RoleForeman)
	if !ok {
		t.Fatalf("foreman role missing")
	}
	if foreman.Permissions.MoveStage {
		t.Fatalf("foreman must not move stages")
	}
	if !foreman.Permissions.EditFields.Allows(domain.FieldRoughDonePct) {
		t.Fatalf("foreman must edit roughDonePct")
	}
	if foreman.Permissions.EditFields.Allows(domain.FieldFinalPayment) {
		t.Fatalf("foreman must not edit finalPayment")
	}
}

func TestDefaultRuleShapes(t *testing.T) {
	cfg := config.Default()
	var auto *domain.AutoRule
	for i := range cfg.Rules {
		if cfg.Rules[i].ID == "R3" {
			auto = &cfg.Rules[i]
		}
	}
	if auto == nil {
		t.Fatalf("R3 missing from default catalog")
	}
	if !auto.StopOnMatch {
		t.Fatalf("R3 must stop the pass on match")
	}
	var moved bool
	for _, a := range auto.Actions {
		if _, ok := a.(domain.MoveNextAction); ok {
			moved = true
		}
	}
	if !moved {
		t.Fatalf("R3 must carry a moveNext action")
	}
}

func TestNextStage(t *testing.T) {
	cfg := config.Default()
	next, ok := cfg.NextStage(domain.StageRough)
	if !ok || next != domain.StageFinishing {
		t.Fatalf("after rough: got %s %v, want finishing", next, ok)
	}
	if _, ok := cfg.NextStage(domain.StageWarranty); ok {
		t.Fatalf("last stage has no successor")
	}
	if _, ok := cfg.NextStage("nope"); ok {
		t.Fatalf("unknown stage has no successor")
	}
}

func TestFromYAMLRejections(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{
			"unknown stage",
			"stages:\n  - id: demolition\n    name: Снос\n",
			"unknown stage id",
		},
		{
			"out of order",
			"stages:\n  - id: rough\n    name: Черновые\n  - id: measurement\n    name: Замер\n",
			"out of lifecycle order",
		},
		{
			"unknown requirement field",
			"stages:\n  - id: lead\n    name: Лид\n    required:\n      - field: budgetPlan\n        kind: boolean\n        label: x\n",
			"unknown field",
		},
		{
			"threshold without value",
			"stages:\n  - id: rough\n    name: Черновые\n    required:\n      - field: roughDonePct\n        kind: threshold\n        label: x\n",
			"positive threshold",
		},
		{
			"unknown role",
			"stages:\n  - id: lead\n    name: Лид\nroles:\n  - id: intern\n    name: Стажёр\n",
			"unknown role id",
		},
		{
			"unknown condition kind",
			"stages:\n  - id: lead\n    name: Лид\nrules:\n  - id: R9\n    name: x\n    enabled: true\n    conditions:\n      - kind: moonPhase\n        value: full\n",
			"unknown condition kind",
		},
		{
			"unknown action kind",
			"stages:\n  - id: lead\n    name: Лид\nrules:\n  - id: R9\n    name: x\n    enabled: true\n    actions:\n      - kind: explode\n",
			"unknown action kind",
		},
		{
			"rule scope unknown stage",
			"stages:\n  - id: lead\n    name: Лид\nrules:\n  - id: R9\n    name: x\n    enabled: true\n    scope:\n      stages: [demolition]\n",
			"unknown stage",
		},
		{
			"string value for numeric condition",
			"stages:\n  - id: lead\n    name: Лид\nrules:\n  - id: R9\n    name: x\n    enabled: true\n    conditions:\n      - kind: inactivityGte\n        value: three\n",
			"numeric value",
		},
	}
	for _, tc := range cases {
		_, err := config.FromYAML([]byte(tc.yaml))
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: error %q does not mention %q", tc.name, err, tc.want)
		}
	}
}

func TestGeneratedDefaultRoundTrips(t *testing.T) {
	cfg, err := config.FromYAML([]byte(config.GenerateDefault()))
	if err != nil {
		t.Fatalf("exported default must parse: %v", err)
	}
	if len(cfg.Stages) == 0 || len(cfg.Roles) == 0 {
		t.Fatalf("exported default lost catalogs")
	}
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok := cfg.StageByID(domain.StageHandover); !ok {
		t.Fatalf("default catalog missing handover stage")
	}
}
