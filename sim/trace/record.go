// Package trace provides per-tick observation recording for queue analysis.
// This package has no dependencies on sim/ and stores plain data types.
package trace

import (
	"database/sql/driver"
	"strconv"
)

// JobRef refers to a job by ID, or to no job at all.
type JobRef struct {
	ID      uint64
	Present bool
}

// Ref returns a JobRef pointing at the given job ID.
func Ref(id uint64) JobRef {
	return JobRef{ID: id, Present: true}
}

// String returns the job ID, or an empty string when no job is referenced.
func (r JobRef) String() string {
	if !r.Present {
		return ""
	}
	return strconv.FormatUint(r.ID, 10)
}

// Value stores an absent reference as SQL NULL.
func (r JobRef) Value() (driver.Value, error) {
	if !r.Present {
		return nil, nil
	}
	return int64(r.ID), nil
}

// TickRecord captures what happened during one simulated tick.
type TickRecord struct {
	Tick        uint64
	Arrived     JobRef // job created this tick
	ServiceTime uint64 // service time of the arrived job; 0 when none arrived
	Dispatched  JobRef // job handed to the server this tick
	Finished    JobRef // job that completed at the end of this tick
	QueueLen    int    // queue length after dispatch
	ServerBusy  bool   // server state after its tick
}
