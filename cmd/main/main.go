package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"wordchain/pkg/ngram"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config, err := LoadConfig("./config.json")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	var logLevel slog.Level
	switch strings.ToLower(config.LogLevel) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	in := bufio.NewScanner(os.Stdin)

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("WORDCHAIN CLI")
	fmt.Println(strings.Repeat("=", 60) + "\n")

	fmt.Println("Select order:")
	fmt.Println("1. Order 1 (single word context)")
	fmt.Println("2. Order 2 (two word context)")
	fmt.Println("3. Order 3 (three word context)")

	fmt.Print("\nEnter choice (1-3): ")
	if !in.Scan() {
		return nil
	}
	order, ok := map[string]int{"1": 1, "2": 2, "3": 3}[strings.TrimSpace(in.Text())]
	if !ok {
		return fmt.Errorf("invalid order choice")
	}

	// Fall back to prompting when the configured corpus is absent.
	filepath := config.DataPath
	if _, err = os.Stat(filepath); err != nil {
		fmt.Print("\nEnter path to training file: ")
		if !in.Scan() {
			return nil
		}
		filepath = strings.TrimSpace(in.Text())
	} else {
		fmt.Printf("\nUsing data file: %s\n", filepath)
	}

	fmt.Println("Reading file...")
	text, err := readCorpus(filepath)
	if err != nil {
		return err
	}
	fmt.Printf("File loaded: %s words\n", humanize.Comma(int64(len(strings.Fields(text)))))

	model, err := ngram.New(order)
	if err != nil {
		return err
	}
	model.SetLogger(logger)

	fmt.Printf("\nTraining model (order=%d)...\n", order)
	start := time.Now()
	model.Train(text)
	fmt.Printf("Training completed in %.2f seconds\n\n", time.Since(start).Seconds())

	shell := NewShell(model, config, logger, in, os.Stdout)
	shell.PrintStats()
	shell.Run()

	return nil
}

// readCorpus reads a training file, tolerating malformed UTF-8 by
// discarding the unreadable bytes rather than failing.
func readCorpus(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %s", path)
		}
		return "", fmt.Errorf("failed to read training file: %w", err)
	}
	return strings.ToValidUTF8(string(data), ""), nil
}
