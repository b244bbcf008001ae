package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalTicks        int
	Arrivals          int
	Dispatches        int
	Completions       int
	BusyTicks         int
	PeakQueueLen      int
	PeakQueueTick     uint64 // first tick at which PeakQueueLen was seen
	LongestBusyStreak int    // most consecutive ticks with the server busy

	// Queue length as seen at the end of each tick
	MeanQueueLen float64
	P50QueueLen  float64
	P95QueueLen  float64
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{}
	if st == nil {
		return summary
	}

	summary.TotalTicks = len(st.Ticks)
	streak := 0
	for _, r := range st.Ticks {
		if r.Arrived.Present {
			summary.Arrivals++
		}
		if r.Dispatched.Present {
			summary.Dispatches++
		}
		if r.Finished.Present {
			summary.Completions++
		}
		if r.QueueLen > summary.PeakQueueLen {
			summary.PeakQueueLen = r.QueueLen
			summary.PeakQueueTick = r.Tick
		}
		if r.ServerBusy {
			summary.BusyTicks++
			streak++
			summary.LongestBusyStreak = max(summary.LongestBusyStreak, streak)
		} else {
			streak = 0
		}
	}

	lens := queueLens(st)
	summary.MeanQueueLen = Mean(lens)
	summary.P50QueueLen = Percentile(lens, 50)
	summary.P95QueueLen = Percentile(lens, 95)

	return summary
}
