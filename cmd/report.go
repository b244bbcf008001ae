package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/queuesim/queuesim/sim"
)

const rule = "------------------------------------------------"

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	sectionColor = color.New(color.Bold)
)

// printConfig echoes the run configuration before the simulation starts.
func printConfig(w io.Writer, cfg sim.Config) {
	titleColor.Fprintln(w, "queuesim: single-server FIFO queue simulation")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Total time steps : %d\n", cfg.TotalTime)
	fmt.Fprintf(w, "Arrival prob     : %.3f\n", cfg.ArrivalProb)
	fmt.Fprintf(w, "Service time     : %d to %d steps\n", cfg.MinServiceTime, cfg.MaxServiceTime)
	fmt.Fprintf(w, "RNG seed         : %d\n", cfg.Seed)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
}

// printMetrics displays the final metrics of a finished run.
func printMetrics(w io.Writer, m *sim.Metrics) {
	sectionColor.Fprintln(w, "Simulation finished.")
	fmt.Fprintf(w, "Time steps          : %d\n", m.TimeSteps)
	fmt.Fprintf(w, "Jobs arrived        : %d\n", m.TotalJobsArrived)
	fmt.Fprintf(w, "Jobs completed      : %d\n", m.TotalJobsCompleted)
	fmt.Fprintf(w, "Max queue length    : %d\n", m.MaxQueueLen)
	fmt.Fprintf(w, "Average wait time   : %.3f\n", m.AvgWaitTime())
	fmt.Fprintf(w, "Avg system time     : %.3f\n", m.AvgSystemTime())
	fmt.Fprintf(w, "Server utilization  : %.3f\n", m.Utilization())
}
