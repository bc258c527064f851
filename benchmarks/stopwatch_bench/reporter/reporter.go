// Package reporter turns the samples of measured scenarios into statistics and reports.
package reporter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ProtonMail/stopwatch/scenario"
	"github.com/bradenaw/juniper/xslices"
	"golang.org/x/exp/slices"
)

type BenchmarkStatistics struct {
	Total         time.Duration
	Average       time.Duration
	Fastest       time.Duration
	Slowest       time.Duration
	Median        time.Duration
	Percentile90  time.Duration
	Percentile10  time.Duration
	RMS           time.Duration
	SampleCount   int
	MemoryAverage int64
}

func (b *BenchmarkStatistics) String() string {
	builder := strings.Builder{}
	builder.WriteString(fmt.Sprintf("SampleCount:%04d Total:%v Fastest:%v Slowest:%v Average:%v Median:%v 90thPercentile:%v 10thPercentile:%v RMS:%v",
		b.SampleCount, b.Total, b.Fastest, b.Slowest, b.Average,
		b.Median, b.Percentile90, b.Percentile10, b.RMS,
	))

	builder.WriteString(fmt.Sprintf(" Memory:%vB", b.MemoryAverage))

	return builder.String()
}

// NewBenchmarkStatistics computes statistics over run times and memory samples. The inputs are not modified.
func NewBenchmarkStatistics(durations []time.Duration, memory []int64) *BenchmarkStatistics {
	sortedDurations := slices.Clone(durations)
	slices.Sort(sortedDurations)

	statistics := &BenchmarkStatistics{
		SampleCount: len(sortedDurations),
	}

	if len(memory) > 0 {
		statistics.MemoryAverage = xslices.Reduce(memory, 0, func(v1 int64, v2 int64) int64 {
			return v1 + v2
		}) / int64(len(memory))
	}

	if statistics.SampleCount == 0 {
		return statistics
	}

	statistics.Fastest = sortedDurations[0]
	statistics.Slowest = sortedDurations[statistics.SampleCount-1]
	statistics.Total = xslices.Reduce(sortedDurations, 0, func(v1 time.Duration, v2 time.Duration) time.Duration {
		return v1 + v2
	})
	statistics.Average = statistics.Total / time.Duration(statistics.SampleCount)

	if statistics.SampleCount%2 == 0 {
		halfPoint := statistics.SampleCount / 2
		statistics.Median = (sortedDurations[halfPoint-1] + sortedDurations[halfPoint]) / 2
	} else {
		statistics.Median = sortedDurations[statistics.SampleCount/2]
	}

	statistics.Percentile90 = sortedDurations[int(math.Floor(float64(statistics.SampleCount)*(90.0/100.0)))]
	statistics.Percentile10 = sortedDurations[int(math.Floor(float64(statistics.SampleCount)*(10.0/100.0)))]

	var sumSquaredWithDiv float64

	for i := 0; i < statistics.SampleCount; i++ {
		// Dividing now rather than later or else we will trigger overflow.
		f64Duration := float64(sortedDurations[i])
		sumSquaredWithDiv += (f64Duration * f64Duration) / float64(statistics.SampleCount)
	}

	statistics.RMS = time.Duration(math.Round(math.Sqrt(sumSquaredWithDiv)))

	return statistics
}

type BenchmarkReport struct {
	Job        string
	Input      string
	Statistics *BenchmarkStatistics
}

func NewBenchmarkReport(sc *scenario.Scenario) *BenchmarkReport {
	return &BenchmarkReport{
		Job:        sc.Job,
		Input:      sc.Input.Name,
		Statistics: NewBenchmarkStatistics(sc.RunTimes, sc.Memory),
	}
}

// NewBenchmarkReports builds one report per scenario.
func NewBenchmarkReports(scenarios []*scenario.Scenario) []*BenchmarkReport {
	return xslices.Map(scenarios, NewBenchmarkReport)
}

// BenchmarkReporter is the interface that is required to be implemented by any report generation tool.
type BenchmarkReporter interface {
	ProduceReport(reports []*BenchmarkReport) error
}
