package pipeline

import (
	"context"
	"log/slog"
)

// Step defines the interface that all pipeline stages implement. Steps
// execute in sequence; each receives the accumulated run state from its
// predecessors.
//
// A step error is fatal to the run: per-document failures are handled
// inside the stages (skip-and-continue), so an error reaching the
// pipeline means the batch itself cannot proceed.
type Step interface {
	// Do executes the stage against the run state.
	Do(ctx context.Context, run *Run) error

	// Name returns the stage's name for logging purposes.
	Name() string
}

// Pipeline executes stages in order.
type Pipeline struct {
	// steps contains the ordered stages to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a Pipeline with the given options. Steps are added with
// AddSteps after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// AddSteps appends stages to the pipeline in execution order.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// StepNames returns the names of all stages in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}

// Execute runs all stages in sequence. Cancellation is checked between
// stages; a stage that fails stops the run with its error.
func (p *Pipeline) Execute(ctx context.Context, run *Run) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("run cancelled",
				"stage", step.Name(),
				"reason", ctx.Err(),
			)
			return ctx.Err()
		default:
		}

		p.logger.Info("executing stage", "stage", step.Name())
		if err := step.Do(ctx, run); err != nil {
			p.logger.Error("stage failed",
				"stage", step.Name(),
				"error", err,
			)
			return err
		}
		p.logger.Debug("stage completed", "stage", step.Name())
	}
	return nil
}
