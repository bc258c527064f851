package reporter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ProtonMail/stopwatch/scenario"
	"github.com/ProtonMail/stopwatch/version"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestStatistics(t *testing.T) {
	durations := []time.Duration{4, 1, 3, 2}

	stats := NewBenchmarkStatistics(durations, []int64{10, 20, 30})

	require.Equal(t, []time.Duration{4, 1, 3, 2}, durations)
	require.Equal(t, 4, stats.SampleCount)
	require.Equal(t, time.Duration(10), stats.Total)
	require.Equal(t, time.Duration(1), stats.Fastest)
	require.Equal(t, time.Duration(4), stats.Slowest)
	require.Equal(t, time.Duration(2), stats.Average)
	require.Equal(t, time.Duration(2), stats.Median)
	require.Equal(t, time.Duration(4), stats.Percentile90)
	require.Equal(t, time.Duration(1), stats.Percentile10)
	require.Equal(t, time.Duration(3), stats.RMS)
	require.Equal(t, int64(20), stats.MemoryAverage)
}

func TestStatisticsOddAndSingle(t *testing.T) {
	stats := NewBenchmarkStatistics([]time.Duration{5, 1, 3}, nil)
	require.Equal(t, time.Duration(3), stats.Median)
	require.Zero(t, stats.MemoryAverage)

	stats = NewBenchmarkStatistics([]time.Duration{7}, []int64{8})
	require.Equal(t, time.Duration(7), stats.Fastest)
	require.Equal(t, time.Duration(7), stats.Slowest)
	require.Equal(t, time.Duration(7), stats.Median)
	require.Equal(t, time.Duration(7), stats.Percentile90)
	require.Equal(t, time.Duration(7), stats.RMS)
}

func TestStatisticsEmpty(t *testing.T) {
	require.Equal(t, &BenchmarkStatistics{}, NewBenchmarkStatistics(nil, nil))
}

func testScenarios() []*scenario.Scenario {
	plain := scenario.New(scenario.Job{Name: "plain"}, scenario.NoInput)
	plain.RunTimes = []time.Duration{time.Millisecond}
	plain.Memory = []int64{64}

	sized := scenario.New(scenario.Job{Name: "sized"}, scenario.Input{Name: "10", Value: 10})
	sized.RunTimes = []time.Duration{time.Second, 2 * time.Second}

	return []*scenario.Scenario{plain, sized}
}

func TestStdOutReporter(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, (&StdOutReporter{Output: &buf}).ProduceReport(NewBenchmarkReports(testScenarios())))

	out := buf.String()
	require.Contains(t, out, "[00] Benchmark plain\n")
	require.Contains(t, out, "[00] SampleCount:0001 Total:1ms")
	require.Contains(t, out, "Memory:64B")
	require.Contains(t, out, "[01] Benchmark sized (10)\n")
	require.Contains(t, out, "Median:1.5s")
}

func TestJSONReporter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")

	require.NoError(t, NewJSONReporter(path).ProduceReport(NewBenchmarkReports(testScenarios())))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var report JSONReport

	require.NoError(t, json.Unmarshal(data, &report))

	_, err = uuid.Parse(report.RunID)
	require.NoError(t, err)

	require.Equal(t, ToolName, report.Tool.Name)
	require.Equal(t, version.Current, report.Tool.Version)

	require.Len(t, report.Reports, 2)
	require.Equal(t, "plain", report.Reports[0].Job)
	require.Equal(t, scenario.NoInputName, report.Reports[0].Input)
	require.Equal(t, 2, report.Reports[1].Statistics.SampleCount)
	require.Equal(t, 3*time.Second, report.Reports[1].Statistics.Total)
}
