package sim

import (
	"fmt"
	"math"
	"math/rand"
)

// JobSource draws the two random quantities the simulator needs each tick:
// whether a job arrives, and how long an arriving job needs.
// Both streams come from one PartitionedRNG keyed by the run seed.
type JobSource struct {
	arrivalProb float64
	minService  uint64
	span        uint64 // maxService - minService, computed once

	arrivals *rand.Rand
	service  *rand.Rand
}

// NewJobSource validates the sampling parameters and seeds both streams.
// The returned error wraps ErrInvalidConfiguration.
func NewJobSource(arrivalProb float64, minService, maxService, seed uint64) (*JobSource, error) {
	if err := validateArrivalProb(arrivalProb); err != nil {
		return nil, err
	}
	if err := validateServiceRange(minService, maxService); err != nil {
		return nil, err
	}
	rng := NewPartitionedRNG(NewSimulationKey(seed))
	return &JobSource{
		arrivalProb: arrivalProb,
		minService:  minService,
		span:        maxService - minService,
		arrivals:    rng.ForSubsystem(SubsystemArrival),
		service:     rng.ForSubsystem(SubsystemService),
	}, nil
}

// Arrives runs one Bernoulli trial with success probability arrivalProb.
// Float64 is in [0,1), so p=0 never succeeds and p=1 always does.
func (s *JobSource) Arrives() bool {
	return s.arrivals.Float64() < s.arrivalProb
}

// ServiceTime draws uniformly from [minService, maxService] inclusive.
func (s *JobSource) ServiceTime() uint64 {
	switch {
	case s.span == 0:
		return s.minService
	case s.span < math.MaxInt64:
		return s.minService + uint64(s.service.Int63n(int64(s.span)+1))
	case s.span == math.MaxUint64:
		return s.service.Uint64()
	}
	// span+1 does not fit in int63: reject draws above the range.
	for {
		v := s.service.Uint64()
		if v <= s.span {
			return s.minService + v
		}
	}
}

func validateArrivalProb(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%w: arrival_prob must be in [0, 1], got %v", ErrInvalidConfiguration, p)
	}
	return nil
}

func validateServiceRange(minService, maxService uint64) error {
	if minService > maxService {
		return fmt.Errorf("%w: min_service_time (%d) must not exceed max_service_time (%d)",
			ErrInvalidConfiguration, minService, maxService)
	}
	return nil
}
