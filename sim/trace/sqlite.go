package trace

import (
	"database/sql"
	"fmt"
	"os"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// SQLiteWriter is a trace writer that stores tick records in a SQLite
// database, one row per tick in table "ticks".
type SQLiteWriter struct {
	*sql.DB
	statement *sql.Stmt

	path      string
	runID     string
	pending   []TickRecord
	batchSize int
	closed    bool
}

// NewSQLiteWriter creates a new SQLiteWriter. An empty path picks a unique
// file name in the working directory. runID is stored with every row so
// several runs can share one database.
func NewSQLiteWriter(path, runID string) *SQLiteWriter {
	return &SQLiteWriter{
		path:      path,
		runID:     runID,
		batchSize: 10000,
	}
}

// SetRunID changes the run ID stored with rows written from now on.
func (w *SQLiteWriter) SetRunID(runID string) {
	w.runID = runID
}

// Path returns the database file. It is final after Init.
func (w *SQLiteWriter) Path() string {
	return w.path
}

// Init opens the database, creates the table and prepares the insert.
func (w *SQLiteWriter) Init() error {
	if w.path == "" {
		w.path = "queuesim_trace_" + xid.New().String() + ".sqlite3"
	}

	db, err := sql.Open("sqlite3", w.path)
	if err != nil {
		return err
	}
	w.DB = db

	if err := w.createTable(); err != nil {
		return err
	}

	stmt, err := w.Prepare(`INSERT INTO ticks
		(run_id, tick, arrived_job, service_time, dispatched_job, finished_job, queue_len, server_busy)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	w.statement = stmt

	atexit.Register(func() { _ = w.Close() })
	return nil
}

func (w *SQLiteWriter) createTable() error {
	_, err := w.Exec(`
		create table if not exists ticks
		(
			run_id         varchar(20) not null,
			tick           integer     not null,
			arrived_job    integer,
			service_time   integer     not null default 0,
			dispatched_job integer,
			finished_job   integer,
			queue_len      integer     not null,
			server_busy    boolean     not null
		);
	`)
	if err != nil {
		return err
	}
	_, err = w.Exec(`create index if not exists ticks_run_tick_index on ticks (run_id, tick);`)
	return err
}

// Write buffers a record, flushing once the batch is full.
func (w *SQLiteWriter) Write(record TickRecord) error {
	if w.statement == nil {
		return fmt.Errorf("sqlite trace writer not initialized")
	}
	w.pending = append(w.pending, record)
	if len(w.pending) >= w.batchSize {
		return w.Flush()
	}
	return nil
}

// Flush inserts the buffered records in a single transaction.
func (w *SQLiteWriter) Flush() error {
	if len(w.pending) == 0 {
		return nil
	}

	tx, err := w.Begin()
	if err != nil {
		return err
	}
	stmt := tx.Stmt(w.statement)
	for _, r := range w.pending {
		_, err := stmt.Exec(
			w.runID,
			int64(r.Tick),
			r.Arrived,
			int64(r.ServiceTime),
			r.Dispatched,
			r.Finished,
			r.QueueLen,
			r.ServerBusy,
		)
		if err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	w.pending = nil
	return nil
}

// Close flushes and closes the database.
func (w *SQLiteWriter) Close() error {
	if w.closed || w.DB == nil {
		return nil
	}
	w.closed = true
	flushErr := w.Flush()
	if w.statement != nil {
		_ = w.statement.Close()
	}
	if err := w.DB.Close(); err != nil {
		return err
	}
	return flushErr
}

// CountRows returns how many tick rows the database holds for runID.
func CountRows(path, runID string) (int, error) {
	if _, err := os.Stat(path); err != nil {
		return 0, err
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	var n int
	err = db.QueryRow(`SELECT COUNT(*) FROM ticks WHERE run_id = ?`, runID).Scan(&n)
	return n, err
}
