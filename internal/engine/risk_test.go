package engine_test

import (
	"testing"
	"time"

	"prostor/internal/domain"
)

func TestClassifyRiskPriorityOrder(t *testing.T) {
	e := testEngine(t)
	day := 24 * time.Hour

	// Overdue, idle for a week and blocked at once: overdue wins.
	p := roughProject()
	p.Deadline = testNow.Add(-2 * day)
	p.LastActivity = testNow.Add(-7 * day)
	risk := e.ClassifyRisk(p)
	if risk.Kind != domain.RiskOverdue || risk.Label != "Просрочен" {
		t.Fatalf("got %+v, want overdue", risk)
	}

	// Missing requirements and idle two days, deadline far: blocked.
	p = roughProject()
	p.LastActivity = testNow.Add(-2 * day)
	risk = e.ClassifyRisk(p)
	if risk.Kind != domain.RiskBlocked || risk.Label != "Заблокирован" {
		t.Fatalf("got %+v, want blocked", risk)
	}

	// Idle three days with everything met: stalled.
	p = roughProject()
	p.Stage = domain.StageWarranty
	p.Fields = domain.FieldBag{domain.FieldWarrantyIssued: domain.Bool(true)}
	p.LastActivity = testNow.Add(-3 * day)
	risk = e.ClassifyRisk(p)
	if risk.Kind != domain.RiskIdle || risk.Label != "Простой" {
		t.Fatalf("got %+v, want stalled", risk)
	}

	// Deadline within two days, fresh and complete: urgent.
	p = roughProject()
	p.Stage = domain.StageWarranty
	p.Fields = domain.FieldBag{domain.FieldWarrantyIssued: domain.Bool(true)}
	p.Deadline = testNow.Add(2 * day)
	risk = e.ClassifyRisk(p)
	if risk.Kind != domain.RiskIdle || risk.Label != "Срочно" {
		t.Fatalf("got %+v, want urgent", risk)
	}

	// Healthy project.
	p = roughProject()
	p.Stage = domain.StageWarranty
	p.Fields = domain.FieldBag{domain.FieldWarrantyIssued: domain.Bool(true)}
	risk = e.ClassifyRisk(p)
	if risk.Kind != domain.RiskOK || risk.Label != "В работе" {
		t.Fatalf("got %+v, want ok", risk)
	}
}

func TestClassifyRiskBlockedNeedsIdleDays(t *testing.T) {
	e := testEngine(t)

	// Missing requirements but touched yesterday: not blocked yet.
	p := roughProject()
	p.LastActivity = testNow.Add(-24 * time.Hour)
	risk := e.ClassifyRisk(p)
	if risk.Kind == domain.RiskBlocked {
		t.Fatalf("one idle day must not count as blocked, got %+v", risk)
	}
	if risk.Kind != domain.RiskOK {
		t.Fatalf("got %+v, want ok", risk)
	}
}

func TestDayArithmetic(t *testing.T) {
	e := testEngine(t)
	p := roughProject()

	p.Deadline = testNow.Add(36 * time.Hour)
	if got := e.DaysToDeadline(p); got != 2 {
		t.Fatalf("36h ahead rounds up: got %d, want 2", got)
	}
	p.Deadline = testNow.Add(-time.Hour)
	if got := e.DaysToDeadline(p); got != 0 {
		t.Fatalf("just past deadline: got %d, want 0", got)
	}

	p.LastActivity = testNow.Add(-47 * time.Hour)
	if got := e.DaysIdle(p); got != 1 {
		t.Fatalf("47h idle rounds down: got %d, want 1", got)
	}
}
