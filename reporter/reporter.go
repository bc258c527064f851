// Package reporter forwards failures of a benchmark run to an external reporting tool.
package reporter

type Context = map[string]any

// Reporter represents an external reporting tool which can be hooked into the runner to be told about scenarios
// that could not be measured.
type Reporter interface {
	ReportException(any) error
	ReportMessageWithContext(string, Context) error
	ReportExceptionWithContext(any, Context) error
}

type NullReporter struct{}

func (*NullReporter) ReportException(any) error {
	return nil
}

func (*NullReporter) ReportMessageWithContext(string, Context) error {
	return nil
}

func (*NullReporter) ReportExceptionWithContext(any, Context) error {
	return nil
}
