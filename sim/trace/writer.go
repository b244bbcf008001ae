package trace

import "fmt"

// Writer stores tick records somewhere outside the process.
// Init must be called before Write. Close flushes anything buffered and
// releases the underlying resource; calling it more than once is allowed.
type Writer interface {
	Init() error
	Write(record TickRecord) error
	Flush() error
	Close() error
}

// Export writes every record of st to w and closes w.
// A nil trace writes nothing but still initializes and closes w.
func Export(st *SimulationTrace, w Writer) error {
	if err := w.Init(); err != nil {
		return fmt.Errorf("initializing trace writer: %w", err)
	}
	if st != nil {
		for _, r := range st.Ticks {
			if err := w.Write(r); err != nil {
				_ = w.Close()
				return fmt.Errorf("writing tick %d: %w", r.Tick, err)
			}
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing trace writer: %w", err)
	}
	return nil
}
