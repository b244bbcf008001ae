// Package sim provides the fixed-tick simulation engine for a single-server
// FIFO queueing station.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - job.go: Job lifecycle (arrived → started → finished) and its timestamps
//   - server.go: the Idle/Busy server state machine
//   - simulator.go: the tick loop and the fixed order of actions per tick
//
// # Architecture
//
// A Simulator owns one JobSource (seeded randomness), one WaitQueue, one
// Server and one Metrics collector. Step advances exactly one tick; Run
// steps until Config.TotalTime ticks have been simulated. Nothing is shared
// between Simulators, so independent replicate runs can execute in parallel.
//
// Randomness is drawn from a PartitionedRNG: arrival trials and service-time
// draws use separate, deterministically derived streams of the run seed.
//
// Tick-level observations can be recorded into a trace.SimulationTrace
// (sub-package sim/trace) and exported to CSV or SQLite.
//
// # Errors
//
// Invalid configurations are reported at construction and wrap
// ErrInvalidConfiguration. Violations of the engine's own ordering contract
// (starting a busy server, marking a job twice) panic.
package sim
