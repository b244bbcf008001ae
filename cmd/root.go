package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/queuesim/queuesim/sim"
	"github.com/queuesim/queuesim/sim/trace"
)

// logLevelEnv supplies the default --log value, e.g. from a .env file.
const logLevelEnv = "QUEUESIM_LOG"

// runOptions holds the raw CLI input for one invocation.
// Run parameters are kept as text so malformed values can fall back to
// their defaults instead of failing the command.
type runOptions struct {
	totalTime      string // Total simulation time (in ticks)
	arrivalProb    string // Per-tick arrival probability
	minServiceTime string // Shortest service time (in ticks)
	maxServiceTime string // Longest service time (in ticks)
	seed           string // Seed for arrival and service draws

	configFile string // Optional YAML run config
	logLevel   string // Log verbosity level
	traceCSV   string // Path of the per-tick CSV trace
	traceDB    string // Path of the per-tick SQLite trace
	noColor    bool   // Disable colored report headers
}

// newRootCmd builds the base command for the CLI.
func newRootCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "queuesim",
		Short: "Fixed-tick simulator for a single-server FIFO queue",
		Long: `queuesim simulates a single-server FIFO queueing station over discrete
time steps. Each tick a job arrives with the given probability and needs a
service time drawn uniformly from [min_service, max_service]. The report
shows waiting time, time in system, utilization and peak queue length.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.totalTime, "time", fmt.Sprint(sim.DefaultTotalTime), "Number of ticks to simulate")
	f.StringVar(&opts.arrivalProb, "arrival", fmt.Sprint(sim.DefaultArrivalProb), "Per-tick arrival probability in [0, 1]")
	f.StringVar(&opts.minServiceTime, "min_service", fmt.Sprint(sim.DefaultMinServiceTime), "Shortest service time (ticks)")
	f.StringVar(&opts.maxServiceTime, "max_service", fmt.Sprint(sim.DefaultMaxServiceTime), "Longest service time (ticks)")
	f.StringVar(&opts.seed, "seed", fmt.Sprint(sim.DefaultSeed), "Seed for arrival and service draws")

	f.StringVarP(&opts.configFile, "config", "c", "", "YAML run config; explicit flags override it")
	f.StringVar(&opts.logLevel, "log", envOr(logLevelEnv, "warn"), "Log level (trace, debug, info, warn, error, fatal, panic)")
	f.StringVar(&opts.traceCSV, "trace-csv", "", "Write a per-tick trace to this CSV file")
	f.StringVar(&opts.traceDB, "trace-db", "", "Write a per-tick trace to this SQLite database")
	f.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	return cmd
}

func run(cmd *cobra.Command, opts *runOptions) error {
	setupLogging(opts.logLevel)
	if opts.noColor {
		color.NoColor = true
	}

	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	s, err := sim.NewSimulator(cfg)
	if err != nil {
		return err
	}

	writers := traceWriters(opts)
	if len(writers) > 0 {
		s.Trace = trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevelTicks})
	}

	out := cmd.OutOrStdout()
	printConfig(out, cfg)
	s.Run()
	printMetrics(out, s.Metrics)

	if s.Trace != nil {
		sum := trace.Summarize(s.Trace)
		logrus.Infof("Trace %s: mean queue %.3f, p95 queue %.1f, peak queue %d at tick %d, longest busy streak %d",
			s.Trace.RunID, sum.MeanQueueLen, sum.P95QueueLen, sum.PeakQueueLen, sum.PeakQueueTick, sum.LongestBusyStreak)
	}
	if err := exportTrace(s.Trace, writers); err != nil {
		return err
	}
	logrus.Info("Simulation complete.")
	return nil
}

// resolveConfig layers built-in defaults, the optional config file, and the
// flags the user set explicitly. Validation happens in sim.NewSimulator.
func resolveConfig(cmd *cobra.Command, opts *runOptions) (sim.Config, error) {
	cfg := sim.DefaultConfig()
	if opts.configFile != "" {
		loaded, err := sim.ReadConfig(opts.configFile)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
		logrus.Infof("Loaded run config from %s", opts.configFile)
	}
	applyFlagOverrides(cmd.Flags().Changed, opts, &cfg)
	return cfg, nil
}

func setupLogging(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Invalid log level %q, using warn", level)
		lvl = logrus.WarnLevel
	}
	logrus.SetLevel(lvl)
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Execute runs the CLI root command and exits the process.
func Execute() {
	// A missing .env file is normal.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		logrus.Errorf("queuesim: %v", err)
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
