// Defines the Job struct that models one unit of work in the simulation.
// Tracks arrival, required service, and the start/finish timestamps set by the server.

package sim

import (
	"fmt"
)

// Job models a single job's lifecycle in the simulation.
// Each job has:
// - an arrival tick and a fixed service time
// - a start tick, set once when the server picks it up
// - a finish tick, set once when service completes
//
// Start and finish are optional: a job that has not started is structurally
// different from one that started at tick 0.
type Job struct {
	ID          uint64 // Unique within a run, assigned in arrival order starting at 0
	ArrivalTime uint64 // Tick at which the job entered the system
	ServiceTime uint64 // Ticks of processing required, fixed at creation

	startServiceTime *uint64
	finishTime       *uint64
}

// NewJob creates a job that has arrived but not yet been served.
func NewJob(id, arrivalTime, serviceTime uint64) *Job {
	return &Job{
		ID:          id,
		ArrivalTime: arrivalTime,
		ServiceTime: serviceTime,
	}
}

// MarkStarted records the tick at which the server began processing the job.
// Calling it twice is a caller bug.
func (j *Job) MarkStarted(t uint64) {
	if j.startServiceTime != nil {
		panic(fmt.Sprintf("MarkStarted: job %d already started at %d", j.ID, *j.startServiceTime))
	}
	j.startServiceTime = &t
}

// MarkFinished records the tick at which service completed.
// The job must have been started and must not already be finished.
func (j *Job) MarkFinished(t uint64) {
	if j.startServiceTime == nil {
		panic(fmt.Sprintf("MarkFinished: job %d was never started", j.ID))
	}
	if j.finishTime != nil {
		panic(fmt.Sprintf("MarkFinished: job %d already finished at %d", j.ID, *j.finishTime))
	}
	j.finishTime = &t
}

// StartServiceTime returns the start tick and whether it has been set.
func (j *Job) StartServiceTime() (uint64, bool) {
	if j.startServiceTime == nil {
		return 0, false
	}
	return *j.startServiceTime, true
}

// FinishTime returns the finish tick and whether it has been set.
func (j *Job) FinishTime() (uint64, bool) {
	if j.finishTime == nil {
		return 0, false
	}
	return *j.finishTime, true
}

// IsStarted reports whether the job has been handed to the server.
func (j *Job) IsStarted() bool { return j.startServiceTime != nil }

// IsFinished reports whether service has completed.
func (j *Job) IsFinished() bool { return j.finishTime != nil }

// WaitTime returns the ticks spent queued before service began.
// The second return value is false until the job has started.
func (j *Job) WaitTime() (uint64, bool) {
	if j.startServiceTime == nil {
		return 0, false
	}
	return subSat(*j.startServiceTime, j.ArrivalTime), true
}

// SystemTime returns the ticks between arrival and completion.
// The second return value is false until the job has finished.
func (j *Job) SystemTime() (uint64, bool) {
	if j.finishTime == nil {
		return 0, false
	}
	return subSat(*j.finishTime, j.ArrivalTime), true
}

// String returns a human-readable representation of a Job.
func (j *Job) String() string {
	start, finish := "-", "-"
	if s, ok := j.StartServiceTime(); ok {
		start = fmt.Sprint(s)
	}
	if f, ok := j.FinishTime(); ok {
		finish = fmt.Sprint(f)
	}
	return fmt.Sprintf("Job: (ID: %d, ArrivalTime: %d, ServiceTime: %d, Start: %s, Finish: %s)",
		j.ID, j.ArrivalTime, j.ServiceTime, start, finish)
}

// subSat returns a-b, or 0 when b > a.
func subSat(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}
