package engine_test

import (
	"testing"

	"prostor/internal/config"
	"prostor/internal/domain"
	"prostor/internal/engine"
)

func TestFillMinimumEstimateStage(t *testing.T) {
	e := testEngine(t)
	p := roughProject()
	p.Stage = domain.StageEstimate
	p.Fields = domain.FieldBag{domain.FieldEstimateReady: domain.Bool(true)}

	filled := e.FillMinimum(p)
	if !filled.Fields[domain.FieldEstimateApproved].IsTrue() {
		t.Fatalf("estimateApproved not filled")
	}
	if !e.CanAdvance(filled) {
		t.Fatalf("filled project must satisfy its stage")
	}
	if _, ok := p.Fields[domain.FieldEstimateApproved]; ok {
		t.Fatalf("input project mutated")
	}
}

func TestFillMinimumThresholdExactValue(t *testing.T) {
	e := testEngine(t)
	p := roughProject()
	p.Fields = domain.FieldBag{domain.FieldRoughDonePct: domain.Number(40)}

	filled := e.FillMinimum(p)
	if n, ok := filled.Fields[domain.FieldRoughDonePct].Number(); !ok || n != 80 {
		t.Fatalf("threshold fill: got %v %v, want exactly 80", n, ok)
	}
	if !filled.Fields[domain.FieldInspectionPassed].IsTrue() {
		t.Fatalf("boolean requirement not filled")
	}
}

func TestFillMinimumIsIdempotent(t *testing.T) {
	e := testEngine(t)
	p := roughProject()

	once := e.FillMinimum(p)
	twice := e.FillMinimum(once)
	if len(once.Fields) != len(twice.Fields) {
		t.Fatalf("second fill changed the bag: %v vs %v", once.Fields, twice.Fields)
	}
	for k, v := range once.Fields {
		if twice.Fields[k] != v {
			t.Fatalf("field %s drifted: %v vs %v", k, v, twice.Fields[k])
		}
	}
}

func TestFillMinimumSkipsTextAndFileRequirements(t *testing.T) {
	cfg, err := config.FromYAML([]byte(`stages:
  - id: lead
    name: Лид
    required:
      - field: contactInfo
        label: Контакты
        kind: boolean
      - field: floorPlan
        label: План
        kind: file
      - field: notes
        label: Заметки
        kind: text
`))
	if err != nil {
		t.Fatalf("fixture config: %v", err)
	}
	e := engine.New(cfg)
	p := domain.Project{ID: "P-T2", Stage: domain.StageLead}

	filled := e.FillMinimum(p)
	if !filled.Fields[domain.FieldContactInfo].IsTrue() {
		t.Fatalf("boolean requirement not filled")
	}
	if _, ok := filled.Fields[domain.FieldFloorPlan]; ok {
		t.Fatalf("file requirement has no minimum and must stay absent")
	}
	if _, ok := filled.Fields[domain.FieldNotes]; ok {
		t.Fatalf("text requirement has no minimum and must stay absent")
	}
	if e.CanAdvance(filled) {
		t.Fatalf("unfilled file and text requirements still gate the stage")
	}
}
