package worker

import "time"

// Nightly schedule
const (
	// StandbyThreshold switches the worker from standby to final approach
	StandbyThreshold = 1 * time.Hour

	// StandbyWakeLead is how long before the update the standby timer fires
	StandbyWakeLead = 45 * time.Minute

	// EarlyFireTolerance absorbs timer jitter; an earlier fire is rescheduled
	EarlyFireTolerance = 10 * time.Second

	// LateFireWindow: a remaining time above this means the update instant just passed
	LateFireWindow = 23 * time.Hour
)

// Pool defaults
const (
	DefaultPoolWorkers   = 1
	DefaultPoolQueueSize = 8
	DefaultJobTimeout    = 30 * time.Second
)

// Job names
const (
	JobNameAdvanceDay = "advance_day"
)

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// Log messages for the worker pool
const (
	LogMsgJobDropped        = "Job queue full, job dropped"
	LogMsgPoolStopped       = "Worker pool stopped"
	LogMsgJobCompleted      = "Worker job completed"
	LogMsgAdvanceDayJobDone = "Simulated day advanced"
)

// Log messages for nightly update worker operations
const (
	LogMsgNightlyUpdateStandby    = "Nightly update standby"
	LogMsgNightlyUpdateApproach   = "Nightly update approaching"
	LogMsgNightlyUpdateStarting   = "Nightly update starting"
	LogMsgNightlyUpdateCompleted  = "Nightly update completed"
	LogMsgNightlyUpdateFailed     = "Nightly update failed"
	LogMsgNightlyUpdateAlreadyRun = "Nightly update already ran for this midnight"
	LogMsgNightlyShuttingDown     = "Shutting down nightly update worker"
	LogMsgNightlyCancelledPending = "Cancelled pending nightly update"
	LogMsgNightlyShutdownComplete = "Nightly update worker shutdown complete"
	LogMsgNightlyShutdownTimeout  = "Nightly update worker shutdown timeout, an update may still be running"
)

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
