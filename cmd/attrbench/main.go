package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/oliverbestmann/attrs"
	"github.com/pkg/profile"
)

func main() {
	cfg, err := ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(cfg, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg Config, out, errOut io.Writer) error {
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	switch cfg.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.Quiet).Stop()
	case "trace":
		defer profile.Start(profile.TraceProfile, profile.Quiet).Stop()
	}

	var policies *attrs.Policies
	if cfg.PolicyFile != "" {
		var err error
		policies, err = attrs.LoadPolicyFile(cfg.PolicyFile)
		if err != nil {
			return err
		}

		logger.Info("Container policies loaded", slog.String("path", cfg.PolicyFile), slog.Int("entries", policies.Len()))
	}

	report, err := newWorkload(cfg, logger, policies).Run()
	if err != nil {
		return err
	}

	printReport(out, report)
	return nil
}

func printReport(out io.Writer, report Report) {
	_, _ = fmt.Fprintf(out, "mesh: %d vertices, %d cells\n", report.Vertices, report.Cells)
	_, _ = fmt.Fprintf(out, "potential sum: %.6g\n", report.PotentialSum)

	_, _ = fmt.Fprintf(out, "storage: %d maps, %d containers, %d entries\n",
		report.Storage.Maps, report.Storage.Containers, report.Storage.Entries)

	for _, m := range report.Storage.ByMap {
		_, _ = fmt.Fprintf(out, "  %s/%s/%s [%s]: %d keys, %d entries\n",
			m.Element, m.Key, m.Value, m.Policy, m.Keys, m.Entries)
	}

	for phase, timings := range report.Timings.All() {
		_, _ = fmt.Fprintf(out, "%-10s n=%d mean=%s min=%s max=%s\n",
			phase, timings.Count, timings.Mean(), timings.Min, timings.Max)
	}
}
