package ngram

import (
	"go/build"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// newTestModel creates a model, failing the test on a construction error.
func newTestModel(t *testing.T, order int, opts ...Option) *Model {
	t.Helper()
	m, err := New(order, opts...)
	if err != nil {
		t.Fatalf("New(%d) error = %v", order, err)
	}
	return m
}

// tiesCorpus is the order-1 scenario corpus: "the" is followed by four
// distinct words, each observed once.
const tiesCorpus = "the cat sat on the mat the dog sat on the floor"

// newTrainedModel is a convenience helper that trains an order-1 model on
// the ties corpus.
func newTrainedModel(t *testing.T) *Model {
	t.Helper()
	m := newTestModel(t, 1)
	m.Train(tiesCorpus)
	return m
}

var (
	benchmarkCorpus string
	corpusOnce      sync.Once
)

// createBenchmarkCorpus reads Go source files to create a corpus for benchmarking.
func createBenchmarkCorpus() string {
	corpusOnce.Do(func() {
		var sb strings.Builder
		goRoot := build.Default.GOROOT
		filesToRead := []string{
			filepath.Join(goRoot, "src/net/http/server.go"),
			filepath.Join(goRoot, "src/go/parser/parser.go"),
			filepath.Join(goRoot, "src/encoding/json/encode.go"),
		}

		for _, file := range filesToRead {
			content, err := os.ReadFile(file)
			if err != nil {
				benchmarkCorpus = "this is a fallback corpus for benchmarking. it is not very long but will prevent a crash. "
				return
			}
			sb.Write(content)
			sb.WriteString("\n")
		}
		benchmarkCorpus = sb.String()
	})
	return benchmarkCorpus
}
