package genai

import "context"

// Generator is the synchronous generation contract the pool wraps.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts Options) (string, error)
}

// Result carries either generated text or the failure that replaced it.
// Whether a failure aborts anything is the caller's decision, not ours.
type Result struct {
	Text string
	Err  error
}

// TextOrError renders the fail-soft wire form: backend failures become
// placeholder text in the content field instead of failing the request.
func (r Result) TextOrError() string {
	if r.Err != nil {
		return "Error generating response: " + r.Err.Error()
	}
	return r.Text
}

// DefaultPoolSize bounds concurrent backend calls when no explicit size
// is configured.
const DefaultPoolSize = 8

// Pool dispatches generation calls without blocking the caller, holding
// the number of in-flight backend calls under a fixed bound.
type Pool struct {
	gen   Generator
	slots chan struct{}
}

// NewPool wraps gen with a bound of size concurrent calls.
func NewPool(gen Generator, size int) *Pool {
	if size <= 0 {
		size = DefaultPoolSize
	}
	return &Pool{gen: gen, slots: make(chan struct{}, size)}
}

// GenerateAsync schedules one generation call and returns immediately.
// The returned channel delivers exactly one Result; a cancelled context
// while waiting for a slot is reported as the Result's error.
func (p *Pool) GenerateAsync(ctx context.Context, prompt string, opts Options) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		select {
		case p.slots <- struct{}{}:
			defer func() { <-p.slots }()
		case <-ctx.Done():
			out <- Result{Err: ctx.Err()}
			return
		}

		text, err := p.gen.Generate(ctx, prompt, opts)
		out <- Result{Text: text, Err: err}
	}()
	return out
}

// Generate is the blocking variant of GenerateAsync.
func (p *Pool) Generate(ctx context.Context, prompt string, opts Options) Result {
	return <-p.GenerateAsync(ctx, prompt, opts)
}
