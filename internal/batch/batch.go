package batch

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/revisor"
	"github.com/tsawler/revisor/internal/config"
)

// Outcome is the result of one job. Err is nil when the report was written.
type Outcome struct {
	Job
	Err      error
	Duration time.Duration
}

// Processor analyzes documents concurrently, up to the configured number of
// workers at a time.
type Processor struct {
	cfg    *config.Config
	logger *log.Logger

	// notice receives one completion line per written report.
	notice   io.Writer
	noticeMu sync.Mutex
	style    lipgloss.Style

	// analyze writes the report for a job; replaced in tests.
	analyze func(ctx context.Context, job Job) error
}

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the logger used for per-document progress.
func WithLogger(logger *log.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// WithNotice sets where completion notices are printed. Default is stdout;
// nil disables them.
func WithNotice(w io.Writer) Option {
	return func(p *Processor) {
		p.notice = w
	}
}

// NewProcessor creates a Processor for cfg.
func NewProcessor(cfg *config.Config, opts ...Option) *Processor {
	p := &Processor{
		cfg:    cfg,
		notice: os.Stdout,
	}
	p.analyze = p.writeReport

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = log.Default()
	}
	if p.notice != nil {
		p.style = lipgloss.NewRenderer(p.notice).NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))
	}

	return p
}

// Run analyzes every job and returns one Outcome per job, in job order.
// Cancelling ctx stops new documents from starting; the ones not started
// carry the context error. The returned error is non-nil only when the run
// was cancelled.
func (p *Processor) Run(ctx context.Context, jobs []Job) ([]Outcome, error) {
	workers := p.cfg.Workers
	if workers < 1 {
		workers = 1
	}

	p.logger.Info("starting batch", "documents", len(jobs), "workers", workers)
	start := time.Now()

	outcomes := make([]Outcome, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, job := range jobs {
		outcomes[i].Job = job

		g.Go(func() error {
			// Check for cancellation before starting
			select {
			case <-gctx.Done():
				outcomes[i].Err = gctx.Err()
				return nil
			default:
			}

			p.logger.Debug("analyzing document", "file", job.Input)
			began := time.Now()

			err := p.analyze(gctx, job)
			outcomes[i].Err = err
			outcomes[i].Duration = time.Since(began)

			if err != nil {
				// Keep going; the failure is recorded in the outcome
				p.logger.Error("analysis failed", "file", job.Input, "err", err)
				return nil
			}

			p.logger.Info("report written", "file", job.Input, "output", job.Output)
			p.notify(job)
			return nil
		})
	}

	g.Wait() //nolint:errcheck // workers never return errors

	p.logger.Info("batch complete",
		"documents", len(jobs),
		"failed", Failed(outcomes),
		"elapsed", time.Since(start),
	)

	return outcomes, ctx.Err()
}

// writeReport analyzes one document and saves its report.
func (p *Processor) writeReport(_ context.Context, job Job) error {
	a := revisor.Open(job.Input)
	if p.cfg.InheritStyles {
		a = a.InheritStyles()
	}
	return a.WriteReport(job.Output)
}

// notify prints the completion notice for job.
func (p *Processor) notify(job Job) {
	if p.notice == nil {
		return
	}
	line := p.style.Render(Notice(job))

	p.noticeMu.Lock()
	defer p.noticeMu.Unlock()
	io.WriteString(p.notice, line+"\n") //nolint:errcheck // console output
}

// Notice returns the completion message for job.
func Notice(job Job) string {
	return "Analysis of " + filepath.Base(job.Input) + " completed. Results saved to " + job.Output
}

// Failed returns the number of outcomes with an error.
func Failed(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}
