package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

// sysexits(3) codes
const (
	exitUsage    = 64
	exitDataErr  = 65
	exitSoftware = 70
	exitIOErr    = 74
)

const (
	promptMain  = "> "
	promptCont  = ". "
	historyFile = ".treelox_history"
)

func main() {
	var (
		evalStr string
		debug   bool
		history string
	)
	flag.StringVar(&evalStr, "e", "", "Evaluate the given Lox snippet and exit")
	flag.BoolVar(&debug, "debug", false, "Trace resolution and call frames to stderr")
	flag.StringVar(&history, "history", "", "REPL history file (default ~/"+historyFile+")")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: treelox [flags] [script]")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := newLogger(debug)
	args := flag.Args()

	switch {
	case len(args) > 1:
		flag.Usage()
		os.Exit(exitUsage)
	case evalStr != "":
		os.Exit(runSource(NewLox(os.Stdout, logger), evalStr))
	case len(args) == 1:
		os.Exit(runFile(args[0], logger))
	default:
		if err := runPrompt(logger, history); err != nil {
			log.Fatal(err)
		}
	}
}

func newLogger(debug bool) *slog.Logger {
	if !debug {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr,
		&slog.HandlerOptions{Level: slog.LevelDebug}))
}

func runFile(path string, logger *slog.Logger) int {
	buff, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitIOErr
	}

	return runSource(NewLox(os.Stdout, logger), string(buff))
}

// runSource reports err on stderr and maps it to an exit code.
func runSource(lox *Lox, source string) int {
	err := lox.Run(source)
	if err == nil {
		return 0
	}

	report(err)

	var static StaticErrors
	if errors.As(err, &static) {
		return exitDataErr
	}
	return exitSoftware
}

func report(err error) {
	var static StaticErrors
	if errors.As(err, &static) {
		for _, e := range static {
			fmt.Fprintln(os.Stderr, e)
		}
		return
	}
	fmt.Fprintln(os.Stderr, "Runtime:", err)
}

func runPrompt(logger *slog.Logger, historyPath string) error {
	if historyPath == "" {
		home, _ := os.UserHomeDir()
		historyPath = filepath.Join(home, historyFile)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(historyPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	lox := NewLox(os.Stdout, logger)
	for {
		source, ok, err := readInput(ln)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println()
			break
		}
		if strings.TrimSpace(source) == "" {
			continue
		}

		ln.AppendHistory(strings.ReplaceAll(source, "\n", " "))

		// Errors end the current input only; the session carries on.
		if err := lox.Run(source); err != nil {
			report(err)
		}
	}

	if f, err := os.Create(historyPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}

	return nil
}

// readInput reads lines until they form a complete program or the
// parser reports an error more input cannot fix. ok is false on EOF.
func readInput(ln *liner.State) (source string, ok bool, err error) {
	var sb strings.Builder

	for {
		prompt := promptMain
		if sb.Len() > 0 {
			prompt = promptCont
		}

		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false, nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true, nil // Ctrl+C drops the pending input
		}
		if err != nil {
			return "", false, err
		}

		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line)

		source = sb.String()
		if _, perr := Parse(source); perr == nil || !Incomplete(perr) {
			return source, true, nil
		}
	}
}
