package main

import (
	"fmt"

	"github.com/ProtonMail/stopwatch/benchmarks/stopwatch_bench/reporter"
	"github.com/ProtonMail/stopwatch/benchmarks/stopwatch_bench/suite"
	"github.com/ProtonMail/stopwatch/version"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:          "stopwatch-bench",
		Short:        "Measure the run time and memory of the registered benchmark suites",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logLevel == "" {
				return nil
			}

			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return err
			}

			logrus.SetLevel(level)

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (overrides STOPWATCH_LOG_LEVEL).")

	rootCmd.AddCommand(newRunCommand(), newListCommand(), newVersionCommand())

	return rootCmd
}

func newRunCommand() *cobra.Command {
	var (
		opts       runOptions
		cpuProfile string
		memProfile string
		progress   bool
	)

	runCmd := &cobra.Command{
		Use:   "run [suite...]",
		Short: "Run the given suites, or all of them",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case cpuProfile != "":
				defer profile.Start(profile.CPUProfile, profile.ProfilePath(cpuProfile), profile.NoShutdownHook).Stop()

			case memProfile != "":
				defer profile.Start(profile.MemProfile, profile.ProfilePath(memProfile), profile.NoShutdownHook).Stop()
			}

			opts.suites = args
			opts.warmupSet = cmd.Flags().Changed("warmup")
			opts.timeSet = cmd.Flags().Changed("time")
			opts.parallelSet = cmd.Flags().Changed("parallel")

			if progress {
				opts.progress = cmd.ErrOrStderr()
			}

			return runSuites(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}

	flags := runCmd.Flags()

	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file.")
	flags.DurationVar(&opts.warmup, "warmup", 0, "Warmup duration per scenario (overrides the configuration).")
	flags.DurationVar(&opts.time, "time", 0, "Measurement duration per scenario (overrides the configuration).")
	flags.IntVarP(&opts.parallel, "parallel", "p", 1, "Number of parallel workers (overrides the configuration).")
	flags.BoolVar(&opts.noFastWarning, "no-fast-warning", false, "Do not warn about functions too fast to be timed alone.")
	flags.StringVar(&opts.jsonReport, "json-reporter", "", "If specified, will generate a json report with the given filename.")
	flags.BoolVar(&opts.phases, "phases", false, "Print the wall time of every phase.")
	flags.BoolVar(&progress, "progress", false, "Print each scenario to stderr as it starts.")
	flags.StringVar(&cpuProfile, "cpu-profile", "", "Write a CPU profile of the whole run to the given directory.")
	flags.StringVar(&memProfile, "mem-profile", "", "Write a memory profile of the whole run to the given directory.")

	runCmd.MarkFlagsMutuallyExclusive("cpu-profile", "mem-profile")

	return runCmd
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available suites and their jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range suite.Names() {
				s, _ := suite.Get(name)

				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%v\n", name); err != nil {
					return err
				}

				for _, job := range s.Jobs() {
					if _, err := fmt.Fprintf(cmd.OutOrStdout(), "  * %v\n", job.Name); err != nil {
						return err
					}
				}
			}

			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of the tool and its environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.NewInfo(reporter.ToolName))
			return err
		},
	}
}
