package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ProtonMail/stopwatch"
	"github.com/ProtonMail/stopwatch/benchmarks/stopwatch_bench/profiler"
	"github.com/ProtonMail/stopwatch/benchmarks/stopwatch_bench/reporter"
	"github.com/ProtonMail/stopwatch/benchmarks/stopwatch_bench/suite"
	"github.com/ProtonMail/stopwatch/config"
	"github.com/ProtonMail/stopwatch/observer"
	"github.com/sirupsen/logrus"
)

type runOptions struct {
	suites     []string
	configPath string

	warmup      time.Duration
	warmupSet   bool
	time        time.Duration
	timeSet     bool
	parallel    int
	parallelSet bool

	noFastWarning bool
	jsonReport    string
	phases        bool

	// progress, if set, receives one line per scenario as it starts.
	progress io.Writer
}

// configuration loads the configuration file, if any, and applies the overrides given on the command line.
func (opts runOptions) configuration() (config.Configuration, error) {
	cfg := config.Default()

	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return config.Configuration{}, err
		}

		cfg = loaded
	}

	if opts.warmupSet {
		cfg.Warmup = opts.warmup
	}

	if opts.timeSet {
		cfg.Time = opts.time
	}

	if opts.parallelSet {
		cfg.Parallel = opts.parallel
	}

	if opts.noFastWarning {
		cfg.PrintFastWarning = false
	}

	return cfg, cfg.Validate()
}

func (opts runOptions) selectSuites() ([]suite.Suite, error) {
	names := opts.suites
	if len(names) == 0 {
		names = suite.Names()
	}

	selected := make([]suite.Suite, 0, len(names))

	for _, name := range names {
		s, ok := suite.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown suite %q", name)
		}

		selected = append(selected, s)
	}

	return selected, nil
}

func runSuites(ctx context.Context, opts runOptions, out io.Writer) error {
	cfg, err := opts.configuration()
	if err != nil {
		return err
	}

	selected, err := opts.selectSuites()
	if err != nil {
		return err
	}

	var benchmarkReporter reporter.BenchmarkReporter

	if len(opts.jsonReport) != 0 {
		benchmarkReporter = reporter.NewJSONReporter(opts.jsonReport)
	} else {
		benchmarkReporter = &reporter.StdOutReporter{Output: out}
	}

	scenarios := suite.Scenarios(selected...)

	var obs observer.Observer = observer.NewLogger(logrus.WithField("pkg", "stopwatch-bench"))

	if opts.progress != nil {
		obs = observer.Multi{obs, newProgressPrinter(opts.progress, len(scenarios))}
	}

	phaseProfiler := profiler.NewDurationPhaseProfiler()

	runner := stopwatch.New(
		stopwatch.WithObserver(obs),
		stopwatch.WithPhaseProfiler(phaseProfiler),
	)
	defer runner.Close()

	logrus.WithField("scenarios", len(scenarios)).WithField("config", fmt.Sprintf("%+v", cfg)).Debug("Starting run")

	if err := runner.Run(ctx, cfg, scenarios); err != nil {
		return err
	}

	if err := benchmarkReporter.ProduceReport(reporter.NewBenchmarkReports(scenarios)); err != nil {
		return fmt.Errorf("failed to produce benchmark report: %w", err)
	}

	if opts.phases {
		return phaseProfiler.Print(out)
	}

	return nil
}
