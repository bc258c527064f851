package reporter

import (
	"encoding/json"
	"os"
	"time"

	"github.com/ProtonMail/stopwatch/version"
	"github.com/google/uuid"
)

// JSONReport is the document written by the JSONReporter.
type JSONReport struct {
	RunID   string
	Date    time.Time
	Tool    version.Info
	Reports []*BenchmarkReport
}

// ToolName identifies the benchmark tool in reports.
const ToolName = "stopwatch-bench"

// JSONReporter produces a JSON data file with all the benchmark information.
type JSONReporter struct {
	outputPath string
}

func (j *JSONReporter) ProduceReport(reports []*BenchmarkReport) error {
	result, err := json.Marshal(&JSONReport{
		RunID:   uuid.NewString(),
		Date:    time.Now(),
		Tool:    version.NewInfo(ToolName),
		Reports: reports,
	})
	if err != nil {
		return err
	}

	return os.WriteFile(j.outputPath, result, 0o600)
}

func NewJSONReporter(output string) *JSONReporter {
	return &JSONReporter{outputPath: output}
}
