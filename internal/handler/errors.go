package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgMissingPathParam      = "Missing %s path parameter"

	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnknownError          = "Unknown error"
	ErrMsgInvalidRequestError   = "Invalid request. Please check your inputs."
	ErrMsgUserNotFoundError     = "User not found"
	ErrMsgUnavailableError      = "Storage is temporarily unavailable. Please try again later."
	ErrMsgAuthFailedError       = "Authentication failed. Please check your API key."
	ErrMsgTooManyRequests       = "Too many requests. Please try again later."
)

// Success messages for API responses
const (
	MsgUserSaved        = "User saved"
	MsgLeaveRecorded    = "Leave recorded"
	MsgInventorySaved   = "Inventory saved"
	MsgEnderChestSaved  = "Ender chest saved"
	MsgJoinRecorded     = "Join recorded"
	MsgLeaveSnapshotted = "Leave recorded and snapshots saved"
)

// Operation names used in logs
const (
	OpSaveUser       = "Save user"
	OpRecordLeave    = "Record leave"
	OpGetUser        = "Get user"
	OpFindUser       = "Find user"
	OpSearchUsers    = "Search users"
	OpSaveInventory  = "Save inventory"
	OpGetInventory   = "Get inventory"
	OpSaveEnderChest = "Save ender chest"
	OpGetEnderChest  = "Get ender chest"
	OpJoin           = "Player join"
	OpLeave          = "Player leave"
)

// Parameter names
const (
	ParamXUID = "xuid"
	ParamName = "name"
)
