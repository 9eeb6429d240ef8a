package engine_test

import (
	"testing"

	"prostor/internal/domain"
)

func TestMissingRequirementsEstimateStage(t *testing.T) {
	e := testEngine(t)
	p := roughProject()
	p.Stage = domain.StageEstimate
	p.Fields = domain.FieldBag{
		domain.FieldEstimateReady: domain.Bool(true),
	}

	missing := e.MissingRequirements(p, "")
	if len(missing) != 1 {
		t.Fatalf("missing: got %d, want 1", len(missing))
	}
	if missing[0].Field != domain.FieldEstimateApproved {
		t.Fatalf("missing field: got %s, want estimateApproved", missing[0].Field)
	}
	if e.CanAdvance(p) {
		t.Fatalf("project with unmet requirement must not advance")
	}

	p.Fields[domain.FieldEstimateApproved] = domain.Bool(true)
	if !e.CanAdvance(p) {
		t.Fatalf("all requirements met, project must advance")
	}
}

func TestMissingRequirementsThreshold(t *testing.T) {
	e := testEngine(t)
	p := roughProject()
	p.Fields = domain.FieldBag{
		domain.FieldRoughDonePct:     domain.Number(79),
		domain.FieldInspectionPassed: domain.Bool(true),
	}
	missing := e.MissingRequirements(p, "")
	if len(missing) != 1 || missing[0].Field != domain.FieldRoughDonePct {
		t.Fatalf("got %+v, want roughDonePct short of threshold", missing)
	}

	p.Fields[domain.FieldRoughDonePct] = domain.Number(80)
	if got := e.MissingRequirements(p, ""); len(got) != 0 {
		t.Fatalf("threshold met exactly, got %+v", got)
	}
}

func TestMissingRequirementsDeclaredOrder(t *testing.T) {
	e := testEngine(t)
	p := roughProject()
	p.Stage = domain.StageContract

	missing := e.MissingRequirements(p, "")
	if len(missing) != 2 {
		t.Fatalf("missing: got %d, want 2", len(missing))
	}
	if missing[0].Field != domain.FieldContractSigned || missing[1].Field != domain.FieldPrepaymentReceived {
		t.Fatalf("order not preserved: %+v", missing)
	}
}

func TestMissingRequirementsExplicitStage(t *testing.T) {
	e := testEngine(t)
	p := roughProject()

	missing := e.MissingRequirements(p, domain.StageHandover)
	if len(missing) != 2 {
		t.Fatalf("handover stage has 2 requirements, got %d", len(missing))
	}
}

func TestMissingRequirementsUnknownStage(t *testing.T) {
	e := testEngine(t)
	p := roughProject()
	if got := e.MissingRequirements(p, "demolition"); got != nil {
		t.Fatalf("unknown stage: got %+v, want nil", got)
	}
}
