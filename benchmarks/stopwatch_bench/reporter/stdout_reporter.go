package reporter

import (
	"fmt"
	"io"
	"os"

	"github.com/ProtonMail/stopwatch/scenario"
)

// StdOutReporter prints the benchmark report to os.Stdout, or to Output if set.
type StdOutReporter struct {
	Output io.Writer
}

func (r *StdOutReporter) ProduceReport(reports []*BenchmarkReport) error {
	out := r.Output
	if out == nil {
		out = os.Stdout
	}

	for i, v := range reports {
		name := v.Job
		if v.Input != scenario.NoInputName {
			name = fmt.Sprintf("%v (%v)", v.Job, v.Input)
		}

		if _, err := fmt.Fprintf(out, "[%02d] Benchmark %v\n", i, name); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(out, "[%02d] %v\n", i, v.Statistics.String()); err != nil {
			return err
		}
	}

	return nil
}
