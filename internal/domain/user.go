package domain

// User is one entry of the player directory. XUID is the stable identifier;
// Name is the last display name seen on join.
type User struct {
	XUID      string `json:"xuid"`
	Name      string `json:"name"`
	LastJoin  int64  `json:"last_join"`
	LastLeave int64  `json:"last_leave"`
}
