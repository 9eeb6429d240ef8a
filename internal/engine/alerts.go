package engine

import (
	"fmt"
	"sort"

	"prostor/internal/domain"
)

// GenerateAlerts recomputes the full alert list for the given projects.
// Alert ids are deterministic (project id + kind suffix), so regeneration
// never produces duplicates for unchanged state. The result is stably
// sorted by severity: errors first, then warnings, then info.
func (e Engine) GenerateAlerts(projects []domain.Project) []domain.Alert {
	now := e.now()
	var alerts []domain.Alert

	for _, p := range projects {
		daysToDeadline := e.DaysToDeadline(p)
		daysIdle := e.DaysIdle(p)
		missing := e.MissingRequirements(p, "")

		if daysToDeadline <= 0 {
			alerts = append(alerts, domain.Alert{
				ID:        p.ID + "-overdue",
				ProjectID: p.ID,
				Kind:      domain.AlertDeadlineOverdue,
				Message:   fmt.Sprintf("Проект %q просрочен на %d дн.", p.Name, -daysToDeadline),
				Severity:  domain.SeverityError,
				CreatedAt: now,
			})
		} else if daysToDeadline <= 2 {
			alerts = append(alerts, domain.Alert{
				ID:        p.ID + "-soon",
				ProjectID: p.ID,
				Kind:      domain.AlertDeadlineSoon,
				Message:   fmt.Sprintf("Проект %q: до дедлайна %d дн.", p.Name, daysToDeadline),
				Severity:  domain.SeverityWarning,
				CreatedAt: now,
			})
		}

		if daysIdle >= 3 {
			alerts = append(alerts, domain.Alert{
				ID:        p.ID + "-idle",
				ProjectID: p.ID,
				Kind:      domain.AlertInactivity,
				Message:   fmt.Sprintf("Проект %q без активности %d дн.", p.Name, daysIdle),
				Severity:  domain.SeverityWarning,
				CreatedAt: now,
			})
		}

		if len(missing) > 0 {
			alerts = append(alerts, domain.Alert{
				ID:        p.ID + "-blocked",
				ProjectID: p.ID,
				Kind:      domain.AlertBlocked,
				Message:   fmt.Sprintf("Проект %q: не выполнено %d требований этапа", p.Name, len(missing)),
				Severity:  domain.SeverityInfo,
				CreatedAt: now,
			})
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Severity.Rank() < alerts[j].Severity.Rank()
	})
	return alerts
}
