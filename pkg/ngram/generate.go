package ngram

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Generate produces a space-joined string that starts with the start
// context's tokens and extends it by up to length predicted tokens. At
// each step the trailing window of the last Order tokens becomes the new
// context. Generation stops early the first time prediction comes back
// absent (a dead end in the chain); that is the designed termination
// condition, not an error. The output word count is therefore between
// Order and Order+length inclusive.
//
// The start context must contain exactly Order tokens and length must be
// non-negative; both are checked up front.
func (m *Model) Generate(start []string, length int, method Method) (string, error) {
	if len(start) != m.order {
		return "", fmt.Errorf("%w: got %d tokens, want %d", ErrContextLength, len(start), m.order)
	}
	if length < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegativeLength, length)
	}

	out := make([]string, 0, m.order+length)
	out = append(out, start...)
	window := append(make([]string, 0, m.order), start...)

	for generated := 0; generated < length; generated++ {
		next, ok, err := m.PredictNext(window, method)
		if err != nil {
			return "", err
		}
		if !ok {
			m.logger.Debug("Generation terminated at dead end",
				slog.String("last_context", contextKey(window)),
				slog.Int("generated", generated),
			)
			break
		}
		out = append(out, next)
		window = append(window[1:], next)
	}

	return strings.Join(out, " "), nil
}

// GenerateAfter is a single-token convenience wrapper around Generate,
// treating word as a 1-element start context.
func (m *Model) GenerateAfter(word string, length int, method Method) (string, error) {
	return m.Generate([]string{word}, length, method)
}

// GenerateStream produces the same token sequence as Generate but delivers
// it over a read-only channel, one token at a time, which is useful for
// very long generations or incremental display. The channel is closed once
// generation completes, hits a dead end, or ctx is cancelled.
//
// Argument validation happens before the channel is returned, so an error
// here has the same meaning as in Generate.
func (m *Model) GenerateStream(ctx context.Context, start []string, length int, method Method) (<-chan string, error) {
	if len(start) != m.order {
		return nil, fmt.Errorf("%w: got %d tokens, want %d", ErrContextLength, len(start), m.order)
	}
	if length < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, length)
	}
	if method != MethodMax && method != MethodSample {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}

	tokenChan := make(chan string)

	go func() {
		defer close(tokenChan)

		window := append(make([]string, 0, m.order), start...)

		for _, token := range start {
			select {
			case <-ctx.Done():
				return
			case tokenChan <- token:
			}
		}

		for generated := 0; generated < length; generated++ {
			select {
			case <-ctx.Done():
				m.logger.Debug("Generation stream cancelled by context")
				return
			default:
			}

			next, ok, err := m.PredictNext(window, method)
			if err != nil || !ok {
				return
			}

			select {
			case <-ctx.Done():
				return
			case tokenChan <- next:
			}
			window = append(window[1:], next)
		}
	}()

	return tokenChan, nil
}
