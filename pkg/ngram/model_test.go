package ngram

import (
	"errors"
	"testing"
)

func TestNewInvalidOrder(t *testing.T) {
	for _, order := range []int{0, -1, -100} {
		if _, err := New(order); !errors.Is(err, ErrInvalidOrder) {
			t.Errorf("New(%d) error = %v, want ErrInvalidOrder", order, err)
		}
	}
}

func TestOrder(t *testing.T) {
	for _, order := range []int{1, 2, 3} {
		if got := newTestModel(t, order).Order(); got != order {
			t.Errorf("Order() = %d, want %d", got, order)
		}
	}
}

func TestStatsUntrained(t *testing.T) {
	m := newTestModel(t, 2)

	stats := m.Stats()
	want := Stats{Order: 2}
	if stats != want {
		t.Errorf("Stats() on untrained model = %+v, want %+v", stats, want)
	}

	if _, ok, err := m.PredictNext([]string{"a", "b"}, MethodMax); err != nil || ok {
		t.Errorf("PredictNext on untrained model = (ok=%v, err=%v), want absent", ok, err)
	}
}

func TestStatsTrained(t *testing.T) {
	m := newTrainedModel(t)

	stats := m.Stats()
	// Corpus: "the cat sat on the mat the dog sat on the floor".
	// 7 distinct words; 6 distinct contexts ("floor" ends the corpus and
	// never precedes anything); 11 adjacent pairs in 12 tokens.
	if stats.Order != 1 {
		t.Errorf("Order = %d, want 1", stats.Order)
	}
	if stats.VocabSize != 7 {
		t.Errorf("VocabSize = %d, want 7", stats.VocabSize)
	}
	if stats.UniqueContexts != 6 {
		t.Errorf("UniqueContexts = %d, want 6", stats.UniqueContexts)
	}
	if stats.TotalTransitions != 11 {
		t.Errorf("TotalTransitions = %d, want 11", stats.TotalTransitions)
	}
}

func TestTransitionsUnknownContext(t *testing.T) {
	m := newTrainedModel(t)

	got, err := m.TransitionsAfter("unknown")
	if err != nil {
		t.Fatalf("TransitionsAfter('unknown') error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty map for unknown context, got %v", got)
	}
}

func TestTransitionsDefensiveCopy(t *testing.T) {
	m := newTrainedModel(t)

	first, err := m.TransitionsAfter("the")
	if err != nil {
		t.Fatalf("TransitionsAfter('the') error = %v", err)
	}
	first["cat"] = 999
	first["injected"] = 1

	second, _ := m.TransitionsAfter("the")
	if second["cat"] != 1 {
		t.Errorf("internal count corrupted through returned map: got %d, want 1", second["cat"])
	}
	if _, ok := second["injected"]; ok {
		t.Error("injected key leaked into internal state")
	}
}

func TestContextLengthErrors(t *testing.T) {
	m := newTestModel(t, 2)
	m.Train("a b c d")

	badContexts := [][]string{
		{},
		{"a"},
		{"a", "b", "c"},
	}

	for _, context := range badContexts {
		if _, err := m.Transitions(context); !errors.Is(err, ErrContextLength) {
			t.Errorf("Transitions(%v) error = %v, want ErrContextLength", context, err)
		}
		if _, _, err := m.PredictNext(context, MethodMax); !errors.Is(err, ErrContextLength) {
			t.Errorf("PredictNext(%v) error = %v, want ErrContextLength", context, err)
		}
		if _, err := m.Generate(context, 3, MethodMax); !errors.Is(err, ErrContextLength) {
			t.Errorf("Generate(%v) error = %v, want ErrContextLength", context, err)
		}
	}

	// The single-token wrappers are a contract violation on an order-2 model.
	if _, err := m.TransitionsAfter("a"); !errors.Is(err, ErrContextLength) {
		t.Errorf("TransitionsAfter on order-2 model error = %v, want ErrContextLength", err)
	}
}
