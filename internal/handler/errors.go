package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgRequestTooLarge       = "Request body too large"
	ErrMsgInvalidItemID         = "Invalid item ID"

	// Inventory operation error messages
	ErrMsgListItemsFailed  = "Failed to list items"
	ErrMsgGetItemFailed    = "Failed to get item"
	ErrMsgAddItemFailed    = "Failed to add item"
	ErrMsgRemoveItemFailed = "Failed to remove item"

	// Admin error messages
	ErrMsgAdvanceDayFailed = "Failed to advance day"
	ErrMsgGetReportFailed  = "Failed to get day report"
)

// Success messages for API responses
const (
	MsgItemRemovedSuccess = "Item removed successfully"
	MsgDayAdvancedSuccess = "Inventory advanced"
)

// Log messages
const (
	LogMsgDecodeFailed     = "Failed to decode request"
	LogMsgRequestDecoded   = "Request decoded"
	LogMsgRequestDetails   = "Request details"
	LogMsgOddRequestFields = "Request fields must be key/value pairs"
	LogMsgValidationFailed = "Request validation failed"
	LogMsgServiceError     = "Service call failed"
	LogMsgItemCreated      = "Item created via API"
	LogMsgItemRemoved      = "Item removed via API"
	LogMsgDaysAdvanced     = "Days advanced via API"
	LogMsgReadinessFailed  = "Readiness check failed"
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgWriteFailed      = "Failed to write response buffer"
)

// Health status values
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgStoreFailed    = "store connection failed"
)
