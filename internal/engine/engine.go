// Package engine computes stage gating, risk, alerts and rule automation
// over project snapshots. Every function is pure: it takes value copies,
// returns new values and never touches shared state. Sequencing and
// persistence of results belong to the caller (see internal/store).
package engine

import (
	"math"
	"time"

	"prostor/internal/config"
	"prostor/internal/domain"
)

type Engine struct {
	Config *config.Config
	Now    func() time.Time
}

func New(cfg *config.Config) Engine {
	return Engine{Config: cfg, Now: time.Now}
}

func (e Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

const day = 24 * time.Hour

// DaysToDeadline returns whole days until the deadline, rounded up.
// Zero or negative means the deadline has passed.
func (e Engine) DaysToDeadline(p domain.Project) int {
	return int(math.Ceil(p.Deadline.Sub(e.now()).Hours() / day.Hours()))
}

// DaysIdle returns whole days since the last activity, rounded down.
func (e Engine) DaysIdle(p domain.Project) int {
	return int(math.Floor(e.now().Sub(p.LastActivity).Hours() / day.Hours()))
}
