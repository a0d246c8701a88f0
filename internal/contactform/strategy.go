package contactform

import "context"

// Result is the outcome reported by a Strategy.
type Result struct {
	Success bool
	// Message is the server's text, when the strategy has one.
	Message string
}

// Strategy delivers a validated Submission.
//
// A returned error and a Result with Success false are both treated as a
// failed dispatch.
type Strategy interface {
	Dispatch(ctx context.Context, s Submission) (Result, error)
}

// StrategyFunc adapts a function to Strategy.
type StrategyFunc func(ctx context.Context, s Submission) (Result, error)

// Dispatch calls fn.
func (fn StrategyFunc) Dispatch(ctx context.Context, s Submission) (Result, error) {
	return fn(ctx, s)
}
