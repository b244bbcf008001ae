// Models the single server of the station: idle, or busy with exactly one job.

package sim

import "fmt"

// busyState is the payload of a busy server. It is only ever built together
// with the job it serves, so a busy server without a job cannot exist.
type busyState struct {
	job       *Job
	remaining uint64 // in [0, job.ServiceTime]
}

// Server processes at most one job at a time.
// A nil busy field is the Idle state.
type Server struct {
	busy *busyState
}

// NewServer returns an idle server.
func NewServer() *Server {
	return &Server{}
}

// IsBusy reports whether the server currently owns a job.
func (s *Server) IsBusy() bool {
	return s.busy != nil
}

// Current returns the job in service, or nil when idle.
func (s *Server) Current() *Job {
	if s.busy == nil {
		return nil
	}
	return s.busy.job
}

// Remaining returns the ticks left on the job in service, or 0 when idle.
func (s *Server) Remaining() uint64 {
	if s.busy == nil {
		return 0
	}
	return s.busy.remaining
}

// StartJob hands a job to the server. The server must be idle: only the
// simulator dispatches, and it checks IsBusy first.
func (s *Server) StartJob(j *Job) {
	if j == nil {
		panic("StartJob: job must not be nil")
	}
	if s.busy != nil {
		panic(fmt.Sprintf("StartJob: server already busy with job %d, cannot start job %d", s.busy.job.ID, j.ID))
	}
	s.busy = &busyState{job: j, remaining: j.ServiceTime}
}

// Tick advances the server by one unit of work.
// Idle: no-op, returns nil.
// Busy: decrements the remaining time (saturating at zero). When it reaches
// zero the job is marked finished at currentTime, the server goes idle and
// the finished job is returned. Otherwise returns nil and stays busy.
func (s *Server) Tick(currentTime uint64) *Job {
	if s.busy == nil {
		return nil
	}
	s.busy.remaining = subSat(s.busy.remaining, 1)
	if s.busy.remaining > 0 {
		return nil
	}
	done := s.busy.job
	done.MarkFinished(currentTime)
	s.busy = nil
	return done
}
