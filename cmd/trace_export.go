package cmd

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/queuesim/queuesim/sim/trace"
)

// traceWriters builds one writer per requested trace destination.
func traceWriters(opts *runOptions) []trace.Writer {
	var writers []trace.Writer
	if opts.traceCSV != "" {
		writers = append(writers, trace.NewCSVWriter(opts.traceCSV))
	}
	if opts.traceDB != "" {
		// the run ID is filled in by exportTrace once the trace exists
		writers = append(writers, trace.NewSQLiteWriter(opts.traceDB, ""))
	}
	return writers
}

// exportTrace writes st to every writer. All writers are attempted; the
// errors are joined.
func exportTrace(st *trace.SimulationTrace, writers []trace.Writer) error {
	var errs []error
	for _, w := range writers {
		if db, ok := w.(*trace.SQLiteWriter); ok && st != nil {
			db.SetRunID(st.RunID)
		}
		if err := trace.Export(st, w); err != nil {
			errs = append(errs, err)
			continue
		}
		if p, ok := w.(interface{ Path() string }); ok {
			logrus.Infof("Trace written to %s", p.Path())
		}
	}
	return errors.Join(errs...)
}
