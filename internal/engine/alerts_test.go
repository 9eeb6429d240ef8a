package engine_test

import (
	"strings"
	"testing"
	"time"

	"prostor/internal/domain"
)

func TestGenerateAlertsOverdueAndIdle(t *testing.T) {
	e := testEngine(t)
	day := 24 * time.Hour

	p := roughProject()
	p.Stage = domain.StageWarranty
	p.Fields = domain.FieldBag{domain.FieldWarrantyIssued: domain.Bool(true)}
	p.Deadline = testNow.Add(-3 * day)
	p.LastActivity = testNow.Add(-5 * day)

	alerts := e.GenerateAlerts([]domain.Project{p})
	if len(alerts) != 2 {
		t.Fatalf("alerts: got %d, want overdue and idle", len(alerts))
	}
	if alerts[0].ID != p.ID+"-overdue" || alerts[0].Severity != domain.SeverityError {
		t.Fatalf("first alert must be the overdue error, got %+v", alerts[0])
	}
	if !strings.Contains(alerts[0].Message, "просрочен на 3 дн.") {
		t.Fatalf("overdue message: %q", alerts[0].Message)
	}
	if alerts[1].ID != p.ID+"-idle" || alerts[1].Kind != domain.AlertInactivity {
		t.Fatalf("second alert must be the idle warning, got %+v", alerts[1])
	}
	if !strings.Contains(alerts[1].Message, "без активности 5 дн.") {
		t.Fatalf("idle message: %q", alerts[1].Message)
	}
}

func TestGenerateAlertsDeadlineSoonWindow(t *testing.T) {
	e := testEngine(t)
	day := 24 * time.Hour

	p := roughProject()
	p.Stage = domain.StageWarranty
	p.Fields = domain.FieldBag{domain.FieldWarrantyIssued: domain.Bool(true)}

	p.Deadline = testNow.Add(2 * day)
	alerts := e.GenerateAlerts([]domain.Project{p})
	if len(alerts) != 1 || alerts[0].Kind != domain.AlertDeadlineSoon {
		t.Fatalf("2 days out must warn, got %+v", alerts)
	}
	if alerts[0].Severity != domain.SeverityWarning {
		t.Fatalf("soon alert severity: %s", alerts[0].Severity)
	}

	p.Deadline = testNow.Add(3 * day)
	if got := e.GenerateAlerts([]domain.Project{p}); len(got) != 0 {
		t.Fatalf("3 days out is quiet, got %+v", got)
	}
}

func TestGenerateAlertsBlockedCountsRequirements(t *testing.T) {
	e := testEngine(t)

	p := roughProject()
	alerts := e.GenerateAlerts([]domain.Project{p})
	if len(alerts) != 1 || alerts[0].Kind != domain.AlertBlocked {
		t.Fatalf("got %+v, want a single blocked alert", alerts)
	}
	if alerts[0].Severity != domain.SeverityInfo {
		t.Fatalf("blocked alert severity: %s", alerts[0].Severity)
	}
	if !strings.Contains(alerts[0].Message, "не выполнено 2 требований") {
		t.Fatalf("blocked message: %q", alerts[0].Message)
	}
}

func TestGenerateAlertsSeveritySort(t *testing.T) {
	e := testEngine(t)
	day := 24 * time.Hour

	blocked := roughProject()
	blocked.ID = "P-A"

	overdue := roughProject()
	overdue.ID = "P-B"
	overdue.Stage = domain.StageWarranty
	overdue.Fields = domain.FieldBag{domain.FieldWarrantyIssued: domain.Bool(true)}
	overdue.Deadline = testNow.Add(-day)

	idle := roughProject()
	idle.ID = "P-C"
	idle.Stage = domain.StageWarranty
	idle.Fields = domain.FieldBag{domain.FieldWarrantyIssued: domain.Bool(true)}
	idle.LastActivity = testNow.Add(-4 * day)

	alerts := e.GenerateAlerts([]domain.Project{blocked, overdue, idle})
	if len(alerts) != 3 {
		t.Fatalf("alerts: got %d, want 3", len(alerts))
	}
	want := []domain.Severity{domain.SeverityError, domain.SeverityWarning, domain.SeverityInfo}
	for i, sev := range want {
		if alerts[i].Severity != sev {
			t.Fatalf("alert %d severity: got %s, want %s", i, alerts[i].Severity, sev)
		}
	}
}

func TestGenerateAlertsDeterministicIDs(t *testing.T) {
	e := testEngine(t)
	p := roughProject()

	first := e.GenerateAlerts([]domain.Project{p})
	second := e.GenerateAlerts([]domain.Project{p})
	if len(first) != len(second) {
		t.Fatalf("regeneration changed alert count")
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("alert %d id drifted: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}
}
