package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/propdeck/internal/catalog"
	"github.com/alexisbeaulieu97/propdeck/internal/classify"
	"github.com/alexisbeaulieu97/propdeck/internal/logger"
	"github.com/alexisbeaulieu97/propdeck/internal/playground"
)

// app bundles what every command needs once flags are parsed.
type app struct {
	log        *logger.Logger
	catalog    *catalog.Catalog
	classifier *classify.Classifier
	closeLog   func() error
}

// newApp builds the logger, catalog and classifier from the root flags.
// Logs go to --log-file when set, to stderr with --verbose, and nowhere otherwise.
func newApp(cmd *cobra.Command, flags *rootFlags, name string) (*app, error) {
	log, closeLog, err := newLogger(cmd.ErrOrStderr(), flags, name)
	if err != nil {
		return nil, newCommandError(name, "creating logger", err, "Check that the --log-file directory exists and is writable.")
	}

	cat, err := loadCatalog(flags.catalogPath)
	if err != nil {
		closeLog()
		return nil, newCommandError(name, "loading catalog", err, "Run 'propdeck schema' to see the expected catalog format.")
	}

	rules := classify.DefaultRules()
	if flags.rulesPath != "" {
		rules, err = classify.LoadRules(flags.rulesPath)
		if err != nil {
			closeLog()
			return nil, newCommandError(name, "loading classifier rules", err, "Fix the rules file or drop --rules to use the defaults.")
		}
	}

	log.WithFields(map[string]any{
		"components": len(cat.Components),
		"catalog":    catalogLabel(flags.catalogPath),
	}).Debug("catalog loaded")

	return &app{
		log:        log,
		catalog:    cat,
		classifier: classify.New(rules, log),
		closeLog:   closeLog,
	}, nil
}

func (a *app) store() *playground.Store {
	return playground.NewStore(a.catalog, a.classifier, a.log)
}

func (a *app) Close() error {
	if a.closeLog == nil {
		return nil
	}
	return a.closeLog()
}

func newLogger(stderr io.Writer, flags *rootFlags, component string) (*logger.Logger, func() error, error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}

	noop := func() error { return nil }
	switch {
	case flags.logFile != "":
		file, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		log, err := logger.New(logger.Options{Level: level, Writer: file, Component: component})
		if err != nil {
			file.Close()
			return nil, nil, err
		}
		return log, file.Close, nil
	case flags.verbose:
		log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: stderr, Component: component})
		return log, noop, err
	default:
		return logger.Nop(), noop, nil
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}

func catalogLabel(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
