package ngram

import (
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var (
	// ErrInvalidOrder is returned by New when the requested order is not a
	// positive integer.
	ErrInvalidOrder = errors.New("ngram: order must be a positive integer")
	// ErrContextLength is returned when a caller passes a context whose
	// token count does not match the model's order.
	ErrContextLength = errors.New("ngram: context length does not match model order")
	// ErrUnknownMethod is returned when a prediction method is neither
	// MethodMax nor MethodSample.
	ErrUnknownMethod = errors.New("ngram: unknown prediction method")
	// ErrNegativeLength is returned when a generation length is negative.
	ErrNegativeLength = errors.New("ngram: generation length must be non-negative")
)

// Model is an n-gram frequency model over a training corpus. It maps every
// observed context (a fixed-length window of `order` tokens) to the tokens
// that followed it, with occurrence counts, and predicts or generates text
// from those counts.
//
// A Model provides no internal locking: at most one goroutine may train at
// a time, and readers may only run concurrently with other readers.
type Model struct {
	order     int
	tokenizer Tokenizer
	rng       *rand.Rand
	logger    *slog.Logger

	// transitions is a two-level ordered mapping: context key (the
	// space-joined context tokens) -> next token -> occurrence count.
	// Insertion order at both levels is training observation order, which
	// defines the argmax tie-break.
	transitions *orderedmap.OrderedMap[string, *orderedmap.OrderedMap[string, int]]
	vocabulary  map[string]struct{}
	// totalTransitions is incremented once per (context, next-token)
	// observation and equals the sum of all counts in the table.
	totalTransitions int
}

// Option is a function that configures a Model at construction time.
type Option func(*Model)

// WithTokenizer replaces the model's tokenizer. The default lowercases and
// splits on whitespace.
func WithTokenizer(t Tokenizer) Option {
	return func(m *Model) {
		if t != nil {
			m.tokenizer = t
		}
	}
}

// WithRand sets the random source used by weighted sampling.
func WithRand(r *rand.Rand) Option {
	return func(m *Model) {
		if r != nil {
			m.rng = r
		}
	}
}

// WithSeed seeds the model's random source deterministically, so that
// sampling over a fixed count distribution is reproducible.
func WithSeed(seed uint64) Option {
	return func(m *Model) {
		m.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// New creates an empty Model with the given context window width. The
// order is fixed for the lifetime of the model. It returns ErrInvalidOrder
// if order is less than 1.
func New(order int, opts ...Option) (*Model, error) {
	if order < 1 {
		return nil, ErrInvalidOrder
	}

	m := &Model{
		order:       order,
		tokenizer:   NewDefaultTokenizer(),
		rng:         rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		transitions: orderedmap.New[string, *orderedmap.OrderedMap[string, int]](),
		vocabulary:  make(map[string]struct{}),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// Order returns the width of the model's context window.
func (m *Model) Order() int {
	return m.order
}

// SetLogger sets the logger for the Model. By default, all logs are
// discarded. Providing a `log/slog.Logger` enables logging for training
// and generation.
func (m *Model) SetLogger(logger *slog.Logger) {
	if logger != nil {
		m.logger = logger
	}
}

// Tokenize runs the model's tokenizer over raw text.
func (m *Model) Tokenize(text string) []string {
	return m.tokenizer.Tokenize(text)
}

// Stats holds a point-in-time snapshot of a model's size.
type Stats struct {
	Order            int // The context window width the model was built with.
	VocabSize        int // The number of distinct tokens seen during training.
	UniqueContexts   int // The number of distinct contexts in the transition table.
	TotalTransitions int // The total number of (context, next-token) observations.
}

// Stats returns a snapshot of the model's current size. It is a pure read
// and reports zeros on an untrained model.
func (m *Model) Stats() Stats {
	return Stats{
		Order:            m.order,
		VocabSize:        len(m.vocabulary),
		UniqueContexts:   m.transitions.Len(),
		TotalTransitions: m.totalTransitions,
	}
}

// contextKey builds the transition-table key for a context. Tokens contain
// no whitespace, so the space join is injective.
func contextKey(context []string) string {
	return strings.Join(context, " ")
}
