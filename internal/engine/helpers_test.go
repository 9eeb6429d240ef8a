package engine_test

import (
	"testing"
	"time"

	"prostor/internal/config"
	"prostor/internal/domain"
	"prostor/internal/engine"
)

var testNow = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

func testEngine(t *testing.T) engine.Engine {
	t.Helper()
	e := engine.New(config.Default())
	e.Now = func() time.Time { return testNow }
	return e
}

// roughProject is healthy by default: far deadline, fresh activity,
// rough stage with both gate fields unset.
func roughProject() domain.Project {
	return domain.Project{
		ID:           "P-T1",
		Name:         "Тестовый объект",
		Client:       "Иванов И.И.",
		Stage:        domain.StageRough,
		Budget:       1_000_000,
		Deadline:     testNow.Add(30 * 24 * time.Hour),
		LastActivity: testNow,
		Fields:       domain.FieldBag{},
	}
}
