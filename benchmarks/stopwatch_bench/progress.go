package main

import (
	"fmt"
	"io"
)

// progressPrinter counts the scenarios as the runner starts them.
type progressPrinter struct {
	out   io.Writer
	total int
	count int
}

func newProgressPrinter(out io.Writer, total int) *progressPrinter {
	return &progressPrinter{out: out, total: total}
}

func (p *progressPrinter) Start(job, input string) {
	p.count++

	_, _ = fmt.Fprintf(p.out, "[%v/%v] %v %v\n", p.count, p.total, job, input)
}

func (p *progressPrinter) FastWarning() {
	_, _ = fmt.Fprintln(p.out, "      batched, too fast to time on its own")
}
