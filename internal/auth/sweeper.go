package auth

import (
	"fmt"
	"time"

	"afl-predictions-backend/internal/logger"

	"github.com/go-co-op/gocron/v2"
)

// StartSessionSweeper schedules SweepExpired every interval. The caller shuts the scheduler down.
func StartSessionSweeper(service *AuthService, interval time.Duration) (gocron.Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("sweep interval must be positive, got %s", interval)
	}

	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if removed := service.SweepExpired(); removed > 0 {
				logger.New().WithField("removed", removed).Info("Swept expired sessions")
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = sched.Shutdown()
		return nil, fmt.Errorf("failed to schedule session sweep: %w", err)
	}

	sched.Start()
	return sched, nil
}
