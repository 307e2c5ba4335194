package cron

import (
	"context"
	"time"

	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/iot"
)

// SupervisorSweepInterval is how often silent presence beacons are checked.
const SupervisorSweepInterval = time.Minute

// RegisterSupervisorSweep schedules the inactivity sweep for IoT presence
// beacons. The sweep runs through the same storage interfaces as a regular
// request and shares no state with it beyond the database.
func RegisterSupervisorSweep(s *Scheduler, svc iot.SupervisorService) {
	s.AddJob("supervisor-inactivity-sweep", SupervisorSweepInterval, func(ctx context.Context) error {
		return svc.SweepInactive(ctx)
	})
}
