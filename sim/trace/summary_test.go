package trace

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Summarize", func() {
	It("should return zero values for a nil trace", func() {
		s := Summarize(nil)
		Expect(*s).To(Equal(TraceSummary{}))
	})

	It("should return zero values for an empty trace", func() {
		s := Summarize(NewSimulationTrace(TraceConfig{Level: TraceLevelTicks}))
		Expect(s.TotalTicks).To(Equal(0))
		Expect(s.LongestBusyStreak).To(Equal(0))
	})

	It("should count events, peak queue and busy streaks", func() {
		st := NewSimulationTrace(TraceConfig{Level: TraceLevelTicks})
		st.RecordTick(TickRecord{Tick: 0, Arrived: Ref(0), ServiceTime: 2, Dispatched: Ref(0), ServerBusy: true})
		st.RecordTick(TickRecord{Tick: 1, Arrived: Ref(1), ServiceTime: 1, QueueLen: 1, Finished: Ref(0)})
		st.RecordTick(TickRecord{Tick: 2, Arrived: Ref(2), ServiceTime: 1, Dispatched: Ref(1), QueueLen: 1, Finished: Ref(1)})
		st.RecordTick(TickRecord{Tick: 3, Dispatched: Ref(2), Finished: Ref(2)})
		st.RecordTick(TickRecord{Tick: 4, Arrived: Ref(3), ServiceTime: 3, Dispatched: Ref(3), ServerBusy: true})
		st.RecordTick(TickRecord{Tick: 5, ServerBusy: true})

		s := Summarize(st)
		Expect(s.TotalTicks).To(Equal(6))
		Expect(s.Arrivals).To(Equal(4))
		Expect(s.Dispatches).To(Equal(4))
		Expect(s.Completions).To(Equal(3))
		Expect(s.BusyTicks).To(Equal(3))
		Expect(s.PeakQueueLen).To(Equal(1))
		Expect(s.PeakQueueTick).To(Equal(uint64(1)))
		Expect(s.LongestBusyStreak).To(Equal(2))
	})
})
