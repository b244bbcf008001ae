// sim/simulator.go
package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/queuesim/queuesim/sim/trace"
)

// Simulator is the core object that holds simulation time, system state, and the tick loop.
// One Simulator is one run: it owns every piece of mutable state and shares
// none of it, so independent runs never interfere.
type Simulator struct {
	config Config
	clock  uint64 // next tick to simulate; equals the number of ticks run

	source *JobSource
	// WaitQ holds jobs that arrived but have not been dispatched
	WaitQ  *WaitQueue
	Server *Server
	// Metrics is the final snapshot once Run returns
	Metrics *Metrics
	// Trace records one TickRecord per tick when enabled; nil disables it
	Trace *trace.SimulationTrace

	nextJobID uint64
}

// NewSimulator validates cfg and builds a simulator at tick 0.
// The returned error wraps ErrInvalidConfiguration.
func NewSimulator(cfg Config) (*Simulator, error) {
	source, err := NewJobSource(cfg.ArrivalProb, cfg.MinServiceTime, cfg.MaxServiceTime, cfg.Seed)
	if err != nil {
		return nil, err
	}
	return &Simulator{
		config:  cfg,
		source:  source,
		WaitQ:   &WaitQueue{},
		Server:  NewServer(),
		Metrics: NewMetrics(),
	}, nil
}

// Config returns the configuration the simulator was built with.
func (sim *Simulator) Config() Config { return sim.config }

// Clock returns the index of the next tick to simulate.
func (sim *Simulator) Clock() uint64 { return sim.clock }

// Done reports whether the horizon has been reached.
func (sim *Simulator) Done() bool { return sim.clock >= sim.config.TotalTime }

// Run advances the simulation tick by tick until TotalTime ticks have run.
// It stops at the horizon whatever the queue and server hold.
func (sim *Simulator) Run() {
	logrus.Infof("[tick %07d] Simulation started (horizon=%d, arrival_prob=%.3f, service=[%d,%d], seed=%d)",
		sim.clock, sim.config.TotalTime, sim.config.ArrivalProb,
		sim.config.MinServiceTime, sim.config.MaxServiceTime, sim.config.Seed)
	for !sim.Done() {
		sim.Step()
	}
	logrus.Infof("[tick %07d] Simulation ended: %d arrived, %d completed, %d waiting",
		sim.clock, sim.Metrics.TotalJobsArrived, sim.Metrics.TotalJobsCompleted, sim.WaitQ.Len())
}

// Step simulates tick t = Clock(). The four actions happen in this order:
//  1. arrival: maybe create a job with ArrivalTime t and enqueue it
//  2. dispatch: if the server is idle, start the head of the queue at t
//  3. service: tick the server with reference time t+1
//  4. metrics: record queue length, busy flag and any finished job
//
// A job arriving at t can therefore start at t (zero wait) and finishes no
// earlier than t+1.
func (sim *Simulator) Step() {
	if sim.Done() {
		return
	}
	now := sim.clock
	record := trace.TickRecord{Tick: now}

	// 1. arrival
	if sim.source.Arrives() {
		job := NewJob(sim.nextJobID, now, sim.source.ServiceTime())
		sim.nextJobID++
		sim.Metrics.RecordArrival()
		sim.WaitQ.Enqueue(job)
		record.Arrived = trace.Ref(job.ID)
		record.ServiceTime = job.ServiceTime
		logrus.Debugf("[tick %07d] Arrival: job %d (service=%d)", now, job.ID, job.ServiceTime)
	}

	// 2. dispatch
	if !sim.Server.IsBusy() {
		if job := sim.WaitQ.Dequeue(); job != nil {
			job.MarkStarted(now)
			sim.Server.StartJob(job)
			record.Dispatched = trace.Ref(job.ID)
			logrus.Debugf("[tick %07d] Dispatch: job %d after waiting %d", now, job.ID, now-job.ArrivalTime)
		}
	}

	// 3. service
	finished := sim.Server.Tick(now + 1)
	if finished != nil {
		record.Finished = trace.Ref(finished.ID)
		logrus.Debugf("[tick %07d] Completion: %v", now, finished)
	}

	// 4. metrics
	record.QueueLen = sim.WaitQ.Len()
	record.ServerBusy = sim.Server.IsBusy()
	sim.Metrics.Step(record.QueueLen, record.ServerBusy, finished)

	if sim.Trace.Enabled() {
		sim.Trace.RecordTick(record)
	}
	logrus.Tracef("[tick %07d] queue=%v busy=%v", now, sim.WaitQ, record.ServerBusy)

	sim.clock++
}
