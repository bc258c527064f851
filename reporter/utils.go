package reporter

import (
	"context"

	"github.com/sirupsen/logrus"
)

// ScenarioFailed reports that measuring the given scenario failed.
func ScenarioFailed(ctx context.Context, job, input string, err error) {
	ExceptionWithContext(ctx, err, Context{"job": job, "input": input, "error": err.Error()})
}

// FastFunction reports that the function of the given scenario had to be batched to be measured.
func FastFunction(ctx context.Context, job, input string, iterations int) {
	MessageWithContext(ctx, "Function too fast to be measured on its own", Context{
		"job":        job,
		"input":      input,
		"iterations": iterations,
	})
}

func MessageWithContext(ctx context.Context, message string, context Context) {
	reporter, ok := GetReporterFromContext(ctx)
	if !ok {
		return
	}

	if err := reporter.ReportMessageWithContext(message, context); err != nil {
		logrus.WithError(err).Error("Failed to report message")
	}
}

func ExceptionWithContext(ctx context.Context, info any, context Context) {
	reporter, ok := GetReporterFromContext(ctx)
	if !ok {
		return
	}

	if err := reporter.ReportExceptionWithContext(info, context); err != nil {
		logrus.WithError(err).Error("Failed to report exception")
	}
}
