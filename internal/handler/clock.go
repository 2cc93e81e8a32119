package handler

import "time"

// nowUnix stamps join and leave times the client left out. Tests replace it.
var nowUnix = func() int64 { return time.Now().Unix() }

// timestampOr returns *ts, or the current time when the client sent none.
// An explicit 0 is a real timestamp and is kept.
func timestampOr(ts *int64) int64 {
	if ts == nil {
		return nowUnix()
	}
	return *ts
}
