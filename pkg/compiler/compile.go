package compiler

import (
	"sync"

	"gotac/pkg/tac"
)

// Result is the outcome of one compilation.
type Result struct {
	// Instructions is the instruction log in emission order. After a syntax
	// error it holds whatever was emitted before the error.
	Instructions []string
	// Diagnostics holds *LexError and *SyntaxError values in the order they
	// were raised.
	Diagnostics []error
}

// OK reports whether the compilation produced no diagnostics.
func (r Result) OK() bool { return len(r.Diagnostics) == 0 }

// Messages returns the diagnostic texts.
func (r Result) Messages() []string {
	msgs := make([]string, len(r.Diagnostics))
	for i, err := range r.Diagnostics {
		msgs[i] = err.Error()
	}
	return msgs
}

type config struct {
	tac tac.Options
}

// Option configures a compilation.
type Option func(*config)

// WithCallResults makes calls used as expressions assign their result to
// the temporary standing for the call.
func WithCallResults() Option {
	return func(c *config) { c.tac.CallResults = true }
}

func newConfig(opts []Option) config {
	var c config
	for _, o := range opts {
		o(&c)
	}
	return c
}

// run lexes, parses and emits src into state.
func run(state *tac.State, src string, c config) Result {
	var diags []error
	report := func(err error) { diags = append(diags, err) }

	gen := tac.NewGenerator(state, c.tac)
	ok := NewParser(NewLexer(src, report), gen, report).Parse()
	tracer().Debugf("compiled %d bytes: accepted=%v, %d instructions, %d diagnostics",
		len(src), ok, state.Len(), len(diags))
	return Result{Instructions: state.Lines(), Diagnostics: diags}
}

// Compile translates src into three-address code using fresh generation
// state, so temporaries start at t0 and labels at L1. It is safe to call
// from multiple goroutines.
func Compile(src string, opts ...Option) Result {
	return run(tac.NewState(), src, newConfig(opts))
}

// Session keeps one generation state across compilations: without a Reset,
// temporaries, labels and the instruction log carry over from the previous
// Compile. Calls are serialised.
type Session struct {
	mu    sync.Mutex
	state *tac.State
	cfg   config
}

// NewSession returns a Session with empty state.
func NewSession(opts ...Option) *Session {
	return &Session{state: tac.NewState(), cfg: newConfig(opts)}
}

// Reset clears the instruction log and rewinds the counters.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Reset()
}

// Compile translates src into the session state and returns the whole
// instruction log.
func (s *Session) Compile(src string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return run(s.state, src, s.cfg)
}
