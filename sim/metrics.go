// Tracks run-wide queueing statistics: arrivals, completions, waiting and
// sojourn totals, peak queue depth and server busy time.

package sim

// Metrics aggregates statistics about the simulation
// for final reporting. All counters only ever grow; ratios are
// computed on demand and never stored.
type Metrics struct {
	TotalJobsArrived   uint64 // Jobs admitted to the queue
	TotalJobsCompleted uint64 // Jobs that finished service
	TotalWaitTime      uint64 // Sum of wait times of completed jobs
	TotalSystemTime    uint64 // Sum of system times of completed jobs
	MaxQueueLen        uint64 // Largest queue length observed at a step
	BusyTime           uint64 // Steps during which the server was busy
	TimeSteps          uint64 // Steps observed
}

// NewMetrics returns a zeroed collector.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordArrival counts one admitted job. Called before the job is queued.
func (m *Metrics) RecordArrival() {
	m.TotalJobsArrived++
}

// Step records the observations of one simulated tick. It is called exactly
// once per tick, after the server has ticked.
func (m *Metrics) Step(queueLen int, serverBusy bool, finished *Job) {
	m.TimeSteps++
	if queueLen > 0 && uint64(queueLen) > m.MaxQueueLen {
		m.MaxQueueLen = uint64(queueLen)
	}
	if serverBusy {
		m.BusyTime++
	}
	if finished == nil {
		return
	}
	m.TotalJobsCompleted++
	if w, ok := finished.WaitTime(); ok {
		m.TotalWaitTime += w
	}
	if st, ok := finished.SystemTime(); ok {
		m.TotalSystemTime += st
	}
}

// AvgWaitTime is the mean wait over completed jobs, 0 if none completed.
func (m *Metrics) AvgWaitTime() float64 {
	if m.TotalJobsCompleted == 0 {
		return 0.0
	}
	return float64(m.TotalWaitTime) / float64(m.TotalJobsCompleted)
}

// AvgSystemTime is the mean time in system over completed jobs, 0 if none completed.
func (m *Metrics) AvgSystemTime() float64 {
	if m.TotalJobsCompleted == 0 {
		return 0.0
	}
	return float64(m.TotalSystemTime) / float64(m.TotalJobsCompleted)
}

// Utilization is the fraction of steps the server was busy, 0 before any step.
func (m *Metrics) Utilization() float64 {
	if m.TimeSteps == 0 {
		return 0.0
	}
	return float64(m.BusyTime) / float64(m.TimeSteps)
}
