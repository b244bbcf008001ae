package trace

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

var csvHeader = []string{
	"tick", "arrived_job", "service_time", "dispatched_job", "finished_job", "queue_len", "server_busy",
}

// CSVWriter is a trace writer that stores tick records in a CSV file.
type CSVWriter struct {
	path string
	file *os.File
	csv  *csv.Writer

	records    []TickRecord
	bufferSize int
	closed     bool
}

// NewCSVWriter creates a new CSVWriter. An empty path picks a unique
// file name in the working directory.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{
		path:       path,
		bufferSize: 1000,
	}
}

// Path returns the file the writer writes to. It is final after Init.
func (w *CSVWriter) Path() string {
	return w.path
}

// Init creates the CSV file and writes the header row. An existing file is
// never overwritten.
func (w *CSVWriter) Init() error {
	if w.path == "" {
		w.path = "queuesim_trace_" + xid.New().String() + ".csv"
	}

	if _, err := os.Stat(w.path); err == nil {
		return fmt.Errorf("file %s already exists", w.path)
	}

	file, err := os.Create(w.path)
	if err != nil {
		return err
	}
	w.file = file
	w.csv = csv.NewWriter(file)

	if err := w.csv.Write(csvHeader); err != nil {
		return err
	}

	atexit.Register(func() { _ = w.Close() })
	return nil
}

// Write buffers a record, flushing once the buffer is full.
func (w *CSVWriter) Write(record TickRecord) error {
	if w.csv == nil {
		return fmt.Errorf("csv trace writer not initialized")
	}
	w.records = append(w.records, record)
	if len(w.records) >= w.bufferSize {
		return w.Flush()
	}
	return nil
}

// Flush writes the buffered records to the file.
func (w *CSVWriter) Flush() error {
	if w.csv == nil {
		return nil
	}
	for _, r := range w.records {
		row := []string{
			strconv.FormatUint(r.Tick, 10),
			r.Arrived.String(),
			strconv.FormatUint(r.ServiceTime, 10),
			r.Dispatched.String(),
			r.Finished.String(),
			strconv.Itoa(r.QueueLen),
			strconv.FormatBool(r.ServerBusy),
		}
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	w.records = nil
	w.csv.Flush()
	return w.csv.Error()
}

// Close flushes and closes the file.
func (w *CSVWriter) Close() error {
	if w.closed || w.file == nil {
		return nil
	}
	w.closed = true
	if err := w.Flush(); err != nil {
		_ = w.file.Close()
		return err
	}
	return w.file.Close()
}
