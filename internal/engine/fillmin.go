package engine

import "prostor/internal/domain"

// FillMinimum returns a copy of the project with every unmet requirement
// of its current stage force-satisfied at the minimum passing value:
// booleans become true, thresholds become exactly the threshold. File and
// text requirements have no minimum and stay untouched, so CanAdvance may
// remain false afterwards. LastActivity is left to the caller.
func (e Engine) FillMinimum(p domain.Project) domain.Project {
	updated := p.Clone()
	for _, req := range e.MissingRequirements(p, "") {
		switch req.Kind {
		case domain.RequirementBoolean:
			updated.Fields[req.Field] = domain.Bool(true)
		case domain.RequirementThreshold:
			updated.Fields[req.Field] = domain.Number(req.Threshold)
		}
	}
	return updated
}
