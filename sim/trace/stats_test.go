package trace

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Percentile", func() {
	It("should return 0 for empty data", func() {
		Expect(Percentile([]int{}, 50)).To(Equal(0.0))
	})

	It("should interpolate between ranks", func() {
		data := []int{1, 2, 3, 4}
		Expect(Percentile(data, 0)).To(Equal(1.0))
		Expect(Percentile(data, 100)).To(Equal(4.0))
		Expect(Percentile(data, 50)).To(BeNumerically("~", 2.5, 1e-9))
	})

	It("should return the single value for one-element data", func() {
		Expect(Percentile([]float64{7}, 95)).To(Equal(7.0))
	})
})

var _ = Describe("Mean", func() {
	It("should return 0 for empty data", func() {
		Expect(Mean([]uint64{})).To(Equal(0.0))
	})

	It("should average values", func() {
		Expect(Mean([]int{0, 1, 2, 5})).To(Equal(2.0))
	})
})

var _ = Describe("Summarize queue statistics", func() {
	It("should describe the queue length distribution", func() {
		st := NewSimulationTrace(TraceConfig{Level: TraceLevelTicks})
		for i, q := range []int{0, 0, 1, 3, 2, 0, 0, 4, 1, 0} {
			st.RecordTick(TickRecord{Tick: uint64(i), QueueLen: q})
		}

		s := Summarize(st)
		Expect(s.MeanQueueLen).To(BeNumerically("~", 1.1, 1e-9))
		Expect(s.P50QueueLen).To(BeNumerically("~", 0.5, 1e-9))
		Expect(s.P95QueueLen).To(BeNumerically("~", 3.55, 1e-9))
		Expect(s.PeakQueueLen).To(Equal(4))
		Expect(s.PeakQueueTick).To(Equal(uint64(7)))
	})
})
