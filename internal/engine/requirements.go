package engine

import "prostor/internal/domain"

// MissingRequirements returns the stage's unmet requirements in declared
// order. An empty stageID means the project's current stage; an unknown
// stage yields no requirements.
func (e Engine) MissingRequirements(p domain.Project, stageID domain.StageID) []domain.Requirement {
	if stageID == "" {
		stageID = p.Stage
	}
	stage, ok := e.Config.StageByID(stageID)
	if !ok {
		return nil
	}
	var missing []domain.Requirement
	for _, req := range stage.Required {
		if !req.MetBy(p.Fields) {
			missing = append(missing, req)
		}
	}
	return missing
}

// CanAdvance reports whether every requirement of the project's current
// stage is met.
func (e Engine) CanAdvance(p domain.Project) bool {
	return len(e.MissingRequirements(p, "")) == 0
}
