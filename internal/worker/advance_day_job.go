package worker

import (
	"context"

	"github.com/osse101/GildedRose_Go/internal/logger"
)

// AdvanceDayJob advances the inventory by one simulated day
type AdvanceDayJob struct {
	Advancer DayAdvancer
}

// Name implements Job
func (j *AdvanceDayJob) Name() string {
	return JobNameAdvanceDay
}

// Process implements Job
func (j *AdvanceDayJob) Process(ctx context.Context) error {
	report, err := j.Advancer.AdvanceDay(ctx)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgAdvanceDayJobDone, "day", report.Day)
	return nil
}
