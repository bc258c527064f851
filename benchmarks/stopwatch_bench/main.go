package main

import (
	"os"

	_ "github.com/ProtonMail/stopwatch/benchmarks/stopwatch_bench/suites"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetLevel(logrus.WarnLevel)

	if level, err := logrus.ParseLevel(os.Getenv("STOPWATCH_LOG_LEVEL")); err == nil {
		logrus.SetLevel(level)
	}

	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
