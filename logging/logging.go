// Package logging annotates goroutines with pprof labels so that profiles taken during a run can be split by
// scenario and phase.
package logging

import (
	"context"
	"fmt"
	"runtime"
	"runtime/pprof"
	"sort"
	"strconv"
)

const (
	LabelJob    = "job"
	LabelInput  = "input"
	LabelPhase  = "phase"
	LabelWorker = "worker"
)

// DoAnnotate runs fn with the caller's location and the given labels attached to the current goroutine.
func DoAnnotate(ctx context.Context, fn func(context.Context), labelMap ...map[string]any) {
	pprof.Do(ctx, getLabels(labelMap...), fn)
}

// ScenarioLabels returns the labels identifying a worker sampling a scenario.
func ScenarioLabels(job, input, phase string, worker int) map[string]any {
	return map[string]any{
		LabelJob:    job,
		LabelInput:  input,
		LabelPhase:  phase,
		LabelWorker: worker,
	}
}

func getLabels(labelMap ...map[string]any) pprof.LabelSet {
	labels := []string{"fn", "unknown"}

	// Skip getLabels and the annotating function.
	if pc, file, line, ok := runtime.Caller(2); ok {
		labels = []string{"fn", runtime.FuncForPC(pc).Name(), "file", file, "line", strconv.Itoa(line)}
	}

	for _, labelMap := range labelMap {
		keys := make([]string, 0, len(labelMap))

		for key := range labelMap {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		for _, key := range keys {
			labels = append(labels, key, fmt.Sprintf("%v", labelMap[key]))
		}
	}

	return pprof.Labels(labels...)
}
