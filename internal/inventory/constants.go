package inventory

import "time"

// DailyRate is the base quality change per day before category multipliers
const DailyRate = 1

// Engine configuration
const (
	// DefaultWorkers keeps the engine sequential
	DefaultWorkers = 1

	// MinItemsPerWorker is the smallest partition worth a goroutine in parallel mode
	MinItemsPerWorker = 64
)

// Service limits
const (
	// MaxDaysPerAdvance caps a single AdvanceDays call
	MaxDaysPerAdvance = 365

	// DefaultShutdownTimeout bounds how long Shutdown waits for an in-flight advance
	DefaultShutdownTimeout = 5 * time.Second
)

// Log messages
const (
	LogMsgAdvancingDay     = "Advancing inventory by one day"
	LogMsgDayAdvanced      = "Inventory day advanced"
	LogMsgAdvanceFailed    = "Inventory day advance failed"
	LogMsgItemAdded        = "Item added to inventory"
	LogMsgItemRemoved      = "Item removed from inventory"
	LogMsgSeedSkipped      = "Inventory already stocked, seed skipped"
	LogMsgSeeded           = "Inventory seeded"
	LogMsgShuttingDown     = "Shutting down inventory service"
	LogMsgShutdownComplete = "Inventory service shutdown complete"
	LogMsgShutdownTimeout  = "Inventory service shutdown timeout"
)

// Error messages
const (
	ErrMsgItemAtIndex      = "item at index %d"
	ErrMsgListItemsFailed  = "failed to list items: %w"
	ErrMsgSaveDayFailed    = "failed to save day %d: %w"
	ErrMsgInsertItemFailed = "failed to insert item: %w"
	ErrMsgServiceShutDown  = "inventory service is shut down"
)
