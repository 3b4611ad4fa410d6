package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/natefinch/atomic"

	"wordchain/pkg/ngram"
)

// Shell is the interactive loop around a trained model. It owns all user
// input validation, so malformed input is reported here and never reaches
// the model.
type Shell struct {
	model  *ngram.Model
	config *Config
	logger *slog.Logger
	in     *bufio.Scanner
	out    io.Writer

	lastGenerated string
}

// NewShell creates a shell reading commands from in and writing to out.
// The scanner is shared with the caller so startup prompts and the shell
// consume the same buffered input.
func NewShell(model *ngram.Model, config *Config, logger *slog.Logger, in *bufio.Scanner, out io.Writer) *Shell {
	return &Shell{
		model:  model,
		config: config,
		logger: logger,
		in:     in,
		out:    out,
	}
}

// Run executes the interactive loop until the user quits or input ends.
func (s *Shell) Run() {
	for {
		fmt.Fprintln(s.out, "\nOptions:")
		fmt.Fprintln(s.out, "1. Predict next word")
		fmt.Fprintln(s.out, "2. Generate text")
		fmt.Fprintln(s.out, "3. Save last generation")
		fmt.Fprintln(s.out, "4. Exit")

		choice, ok := s.prompt("\nEnter choice (1-4): ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			s.handlePredict()
		case "2":
			s.handleGenerate()
		case "3":
			s.handleSave()
		case "4":
			fmt.Fprintln(s.out, "Done!")
			return
		default:
			fmt.Fprintln(s.out, "Invalid choice!")
		}
	}
}

// PrintStats writes the model's current statistics snapshot.
func (s *Shell) PrintStats() {
	stats := s.model.Stats()
	fmt.Fprintln(s.out, strings.Repeat("=", 60))
	fmt.Fprintln(s.out, "MODEL STATISTICS")
	fmt.Fprintln(s.out, strings.Repeat("=", 60))
	fmt.Fprintf(s.out, "Order: %d\n", stats.Order)
	fmt.Fprintf(s.out, "Vocabulary size: %s\n", humanize.Comma(int64(stats.VocabSize)))
	fmt.Fprintf(s.out, "Unique contexts: %s\n", humanize.Comma(int64(stats.UniqueContexts)))
	fmt.Fprintf(s.out, "Total transitions: %s\n", humanize.Comma(int64(stats.TotalTransitions)))
	fmt.Fprintln(s.out, strings.Repeat("=", 60))
}

func (s *Shell) handlePredict() {
	context, ok := s.readContext()
	if !ok {
		return
	}

	method, ok := s.readMethod()
	if !ok {
		return
	}

	pred, found, err := s.model.PredictNext(context, method)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	if !found {
		fmt.Fprintln(s.out, "Context not found")
		return
	}
	fmt.Fprintf(s.out, "Next word: %s\n", pred)
}

func (s *Shell) handleGenerate() {
	context, ok := s.readContext()
	if !ok {
		return
	}

	raw, ok := s.prompt("Words to generate? ")
	if !ok {
		return
	}
	length, err := strconv.Atoi(raw)
	if err != nil || length < 0 {
		fmt.Fprintln(s.out, "Invalid number")
		return
	}

	method, ok := s.readMethod()
	if !ok {
		return
	}

	text, err := s.model.Generate(context, length, method)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}

	s.lastGenerated = text
	fmt.Fprintf(s.out, "\nGenerated:\n%s\n", text)
}

func (s *Shell) handleSave() {
	if s.lastGenerated == "" {
		fmt.Fprintln(s.out, "Nothing generated yet")
		return
	}

	if err := atomic.WriteFile(s.config.OutputPath, strings.NewReader(s.lastGenerated+"\n")); err != nil {
		s.logger.Error("Failed to save generation", "path", s.config.OutputPath, "error", err)
		fmt.Fprintf(s.out, "Error: could not save to %s\n", s.config.OutputPath)
		return
	}
	fmt.Fprintf(s.out, "Saved to %s\n", s.config.OutputPath)
}

// readContext prompts for exactly order words, lowercased and
// whitespace-split at this boundary so the model sees normalized tokens.
func (s *Shell) readContext() ([]string, bool) {
	order := s.model.Order()

	var label string
	if order == 1 {
		label = "Enter a word: "
	} else {
		label = fmt.Sprintf("Enter %d words: ", order)
	}

	raw, ok := s.prompt(label)
	if !ok {
		return nil, false
	}

	words := strings.Fields(strings.ToLower(raw))
	if len(words) != order {
		fmt.Fprintf(s.out, "Enter exactly %d word(s)\n", order)
		return nil, false
	}
	return words, true
}

// readMethod prompts for a prediction method, defaulting to max.
func (s *Shell) readMethod() (ngram.Method, bool) {
	raw, ok := s.prompt("Method [max/sample] (default max): ")
	if !ok {
		return "", false
	}
	if raw == "" {
		return ngram.MethodMax, true
	}

	method, err := ngram.ParseMethod(strings.ToLower(raw))
	if err != nil {
		fmt.Fprintln(s.out, "Invalid method")
		return "", false
	}
	return method, true
}

// prompt prints a label and returns the next trimmed input line. The
// second result is false once input is exhausted.
func (s *Shell) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}
