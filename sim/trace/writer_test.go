package trace

import (
	"encoding/csv"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func sampleTrace() *SimulationTrace {
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelTicks})
	st.RecordTick(TickRecord{Tick: 0, Arrived: Ref(0), ServiceTime: 2, Dispatched: Ref(0), ServerBusy: true})
	st.RecordTick(TickRecord{Tick: 1, Finished: Ref(0)})
	st.RecordTick(TickRecord{Tick: 2, Arrived: Ref(1), ServiceTime: 1, Dispatched: Ref(1), Finished: Ref(1)})
	return st
}

var _ = Describe("CSVWriter", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("should write a header and one row per tick", func() {
		path := filepath.Join(dir, "trace.csv")
		w := NewCSVWriter(path)

		Expect(Export(sampleTrace(), w)).To(Succeed())

		f, err := os.Open(path)
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()
		rows, err := csv.NewReader(f).ReadAll()
		Expect(err).NotTo(HaveOccurred())

		Expect(rows).To(HaveLen(4))
		Expect(rows[0]).To(Equal(csvHeader))
		Expect(rows[1]).To(Equal([]string{"0", "0", "2", "0", "", "0", "true"}))
		Expect(rows[2]).To(Equal([]string{"1", "", "0", "", "0", "0", "false"}))
	})

	It("should flush when the buffer fills", func() {
		path := filepath.Join(dir, "small.csv")
		w := NewCSVWriter(path)
		w.bufferSize = 2
		Expect(w.Init()).To(Succeed())

		for _, r := range sampleTrace().Ticks {
			Expect(w.Write(r)).To(Succeed())
		}
		Expect(w.records).To(HaveLen(1))

		Expect(w.Close()).To(Succeed())
		Expect(w.Close()).To(Succeed())
	})

	It("should refuse to overwrite an existing file", func() {
		path := filepath.Join(dir, "exists.csv")
		Expect(os.WriteFile(path, []byte("x"), 0o644)).To(Succeed())

		err := NewCSVWriter(path).Init()
		Expect(err).To(MatchError(ContainSubstring("already exists")))
	})

	It("should reject writes before Init", func() {
		Expect(NewCSVWriter("").Write(TickRecord{})).NotTo(Succeed())
	})
})

var _ = Describe("SQLiteWriter", func() {
	It("should insert one row per tick under the run ID", func() {
		path := filepath.Join(GinkgoT().TempDir(), "trace.sqlite3")
		st := sampleTrace()
		w := NewSQLiteWriter(path, st.RunID)

		Expect(Export(st, w)).To(Succeed())
		Expect(w.Path()).To(Equal(path))

		n, err := CountRows(path, st.RunID)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(3))

		n, err = CountRows(path, "other-run")
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(0))
	})

	It("should append runs to an existing database", func() {
		path := filepath.Join(GinkgoT().TempDir(), "shared.sqlite3")
		first, second := sampleTrace(), sampleTrace()

		Expect(Export(first, NewSQLiteWriter(path, first.RunID))).To(Succeed())
		Expect(Export(second, NewSQLiteWriter(path, second.RunID))).To(Succeed())

		n, err := CountRows(path, second.RunID)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(3))
	})

	It("should reject writes before Init", func() {
		Expect(NewSQLiteWriter("", "run").Write(TickRecord{})).NotTo(Succeed())
	})
})
