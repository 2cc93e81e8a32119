package sqlite

// Error messages
const (
	ErrMsgUpsertUser   = "failed to upsert user"
	ErrMsgUpdateLeave  = "failed to update leave time"
	ErrMsgGetUser      = "failed to get user"
	ErrMsgSearchUsers  = "failed to search users"
	ErrMsgScanUser     = "failed to scan user"
	ErrMsgReplaceSlots = "failed to replace snapshot"
	ErrMsgListSlots    = "failed to list snapshot"
	ErrMsgScanSlot     = "failed to scan snapshot row"
	ErrMsgUnknownTable = "unknown snapshot table"
)

const (
	queryUpsertUser = `INSERT OR REPLACE INTO users (xuid, name, last_join) VALUES (?, ?, ?)`

	queryUpdateLeave = `UPDATE users SET last_leave = ? WHERE xuid = ?`

	queryGetUser = `SELECT xuid, name, last_join, last_leave FROM users WHERE xuid = ?`

	querySearchUsers = `SELECT xuid, name, last_join, last_leave FROM users
		WHERE instr(fold_lower(name), ?) > 0
		ORDER BY last_join DESC, xuid ASC`
)
