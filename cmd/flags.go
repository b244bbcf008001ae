package cmd

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/queuesim/queuesim/sim"
)

// applyFlagOverrides copies every explicitly set run flag into cfg.
// A value that does not parse leaves the field as it was.
func applyFlagOverrides(changed func(name string) bool, opts *runOptions, cfg *sim.Config) {
	if changed("time") {
		cfg.TotalTime = parseUintOr("time", opts.totalTime, cfg.TotalTime)
	}
	if changed("arrival") {
		cfg.ArrivalProb = parseFloatOr("arrival", opts.arrivalProb, cfg.ArrivalProb)
	}
	if changed("min_service") {
		cfg.MinServiceTime = parseUintOr("min_service", opts.minServiceTime, cfg.MinServiceTime)
	}
	if changed("max_service") {
		cfg.MaxServiceTime = parseUintOr("max_service", opts.maxServiceTime, cfg.MaxServiceTime)
	}
	if changed("seed") {
		cfg.Seed = parseUintOr("seed", opts.seed, cfg.Seed)
	}
}

func parseUintOr(flag, raw string, fallback uint64) uint64 {
	v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		logrus.Debugf("--%s=%q is not an unsigned integer, keeping %d", flag, raw, fallback)
		return fallback
	}
	return v
}

func parseFloatOr(flag, raw string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		logrus.Debugf("--%s=%q is not a number, keeping %v", flag, raw, fallback)
		return fallback
	}
	return v
}
