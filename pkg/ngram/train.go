package ngram

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Train tokenizes text and accumulates its transitions into the model.
// Every window of `order` tokens is recorded as a context, with the token
// that followed it counted as a transition. Counts are cumulative across
// calls: training twice on the same text doubles them.
//
// Text with fewer than order+1 tokens records nothing; the call still
// succeeds with zero effect.
func (m *Model) Train(text string) {
	tokens := m.tokenizer.Tokenize(text)

	recorded := 0
	for i := 0; i+m.order < len(tokens); i++ {
		m.observe(tokens[i:i+m.order], tokens[i+m.order])
		recorded++
	}

	m.logger.Info("Training completed",
		slog.Int("tokens", len(tokens)),
		slog.Int("transitions_recorded", recorded),
		slog.Int("total_transitions", m.totalTransitions),
	)
}

// TrainReader accumulates transitions from a stream of text without
// buffering the whole corpus, maintaining a single rolling window of
// order+1 tokens. The counting semantics are identical to Train on the
// same text. It returns an error only if reading from r fails.
func (m *Model) TrainReader(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	window := make([]string, 0, m.order+1)
	recorded := 0

	for scanner.Scan() {
		// Each scanned word still goes through the tokenizer, so custom
		// tokenizers that split further than whitespace keep working.
		for _, token := range m.tokenizer.Tokenize(scanner.Text()) {
			window = append(window, token)
			if len(window) == m.order+1 {
				m.observe(window[:m.order], window[m.order])
				recorded++
				copy(window, window[1:])
				window = window[:m.order]
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("corpus read error: %w", err)
	}

	m.logger.Info("Training completed",
		slog.Int("transitions_recorded", recorded),
		slog.Int("total_transitions", m.totalTransitions),
	)

	return nil
}

// observe records a single (context, next-token) occurrence. The context
// slice is copied into the table key, so callers may reuse its backing
// array.
func (m *Model) observe(context []string, next string) {
	key := contextKey(context)

	counts, ok := m.transitions.Get(key)
	if !ok {
		counts = orderedmap.New[string, int]()
		m.transitions.Set(key, counts)
	}
	current, _ := counts.Get(next)
	counts.Set(next, current+1)

	for _, token := range context {
		m.vocabulary[token] = struct{}{}
	}
	m.vocabulary[next] = struct{}{}
	m.totalTransitions++
}
