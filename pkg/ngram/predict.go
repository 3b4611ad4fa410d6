package ngram

import "fmt"

// Method selects the prediction strategy used by PredictNext and Generate.
type Method string

const (
	// MethodMax picks the next token with the highest observed count.
	// Ties are broken toward the candidate observed earliest in training.
	MethodMax Method = "max"
	// MethodSample picks a next token at random, weighted by its count
	// relative to the total count for the context.
	MethodSample Method = "sample"
)

// ParseMethod converts a user-supplied string into a Method, returning
// ErrUnknownMethod for anything other than "max" or "sample".
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodMax:
		return MethodMax, nil
	case MethodSample:
		return MethodSample, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Transitions returns the observed next tokens and their counts for the
// given context. An unseen context yields an empty map, not an error. The
// returned map is a copy; mutating it does not affect the model.
//
// The context must contain exactly Order tokens; ErrContextLength is
// returned otherwise.
func (m *Model) Transitions(context []string) (map[string]int, error) {
	if len(context) != m.order {
		return nil, fmt.Errorf("%w: got %d tokens, want %d", ErrContextLength, len(context), m.order)
	}

	out := make(map[string]int)
	counts, ok := m.transitions.Get(contextKey(context))
	if !ok {
		return out, nil
	}
	for pair := counts.Oldest(); pair != nil; pair = pair.Next() {
		out[pair.Key] = pair.Value
	}
	return out, nil
}

// TransitionsAfter is a single-token convenience wrapper around
// Transitions, treating word as a 1-element context.
func (m *Model) TransitionsAfter(word string) (map[string]int, error) {
	return m.Transitions([]string{word})
}

// PredictNext returns a single predicted next token for the given context.
// The boolean result is false when the context has no recorded
// transitions; that is the designed absent-value outcome, not an error.
// Errors are reserved for contract violations: a context of the wrong
// length or an unknown method.
//
// MethodMax is deterministic: repeated calls with the same context return
// the same token. MethodSample draws from the model's random source and is
// reproducible for a fixed seed and count distribution.
func (m *Model) PredictNext(context []string, method Method) (string, bool, error) {
	if len(context) != m.order {
		return "", false, fmt.Errorf("%w: got %d tokens, want %d", ErrContextLength, len(context), m.order)
	}
	if method != MethodMax && method != MethodSample {
		return "", false, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}

	counts, ok := m.transitions.Get(contextKey(context))
	if !ok || counts.Len() == 0 {
		return "", false, nil
	}

	if method == MethodMax {
		var best string
		bestCount := 0
		// Strict > keeps the earliest-observed candidate on ties.
		for pair := counts.Oldest(); pair != nil; pair = pair.Next() {
			if pair.Value > bestCount {
				best = pair.Key
				bestCount = pair.Value
			}
		}
		return best, true, nil
	}

	total := 0
	for pair := counts.Oldest(); pair != nil; pair = pair.Next() {
		total += pair.Value
	}
	pick := m.rng.IntN(total)
	for pair := counts.Oldest(); pair != nil; pair = pair.Next() {
		pick -= pair.Value
		if pick < 0 {
			return pair.Key, true, nil
		}
	}

	// Unreachable: the draw is always below the summed counts.
	return "", false, nil
}

// PredictAfter is a single-token convenience wrapper around PredictNext,
// treating word as a 1-element context.
func (m *Model) PredictAfter(word string, method Method) (string, bool, error) {
	return m.PredictNext([]string{word}, method)
}
