// File: options.go
// Role: functional configuration for Engine, mirroring elim's
// Default* constants + With* constructor pattern.
package ddar

import "github.com/rs/zerolog"

// DefaultStepBudget is the sweep cap passed to saturation.RunToFixedPoint
// when the caller supplies none (0 means unbounded).
const DefaultStepBudget = 0

// Option configures an Engine at construction time.
type Option func(*config)

type config struct {
	logger     zerolog.Logger
	stepBudget int
}

func defaultConfig() config {
	return config{logger: zerolog.Nop(), stepBudget: DefaultStepBudget}
}

// WithLogger overrides the zerolog.Logger the saturation engine reports
// pass progress to. The zero value (zerolog.Nop()) discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithStepBudget caps the number of saturation sweeps DeductionClosure will
// run before giving up (0 means unbounded).
func WithStepBudget(n int) Option {
	return func(c *config) { c.stepBudget = n }
}
