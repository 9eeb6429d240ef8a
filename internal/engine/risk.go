package engine

import "prostor/internal/domain"

// Risk labels shown on project cards. Stalled and urgent deliberately
// share the idle kind and differ only in label.
const (
	labelOverdue = "Просрочен"
	labelBlocked = "Заблокирован"
	labelStalled = "Простой"
	labelUrgent  = "Срочно"
	labelOK      = "В работе"
)

// ClassifyRisk derives the project's attention status. Checks run in
// strict priority order and the first match wins, so an overdue project
// is never reported blocked even when requirements are missing.
func (e Engine) ClassifyRisk(p domain.Project) domain.Risk {
	daysToDeadline := e.DaysToDeadline(p)
	daysIdle := e.DaysIdle(p)
	missing := e.MissingRequirements(p, "")

	switch {
	case daysToDeadline <= 0:
		return domain.Risk{Kind: domain.RiskOverdue, Label: labelOverdue}
	case len(missing) > 0 && daysIdle >= 2:
		return domain.Risk{Kind: domain.RiskBlocked, Label: labelBlocked}
	case daysIdle >= 3:
		return domain.Risk{Kind: domain.RiskIdle, Label: labelStalled}
	case daysToDeadline <= 2:
		return domain.Risk{Kind: domain.RiskIdle, Label: labelUrgent}
	}
	return domain.Risk{Kind: domain.RiskOK, Label: labelOK}
}
