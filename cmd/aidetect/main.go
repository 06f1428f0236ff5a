package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"ai_detector/internal/aidetect"
	"ai_detector/internal/config"
	"ai_detector/internal/ingest"
	"ai_detector/internal/pipeline"
	"ai_detector/internal/server"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 1
	}

	var err error
	switch args[0] {
	case "analyze":
		err = analyzeCmd(args[1:], stdin, stdout, stderr)
	case "serve":
		err = serveCmd(args[1:], stderr)
	case "version":
		fmt.Fprintf(stdout, "aidetect v%s\n", version)
	case "help", "--help", "-h":
		usage(stdout)
	default:
		fmt.Fprintf(stderr, "unknown command: %s\n", args[0])
		usage(stderr)
		return 1
	}
	if err != nil {
		fmt.Fprintf(stderr, "aidetect: %v\n", err)
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintf(w, `aidetect v%s - lexical statistics and a heuristic AI-authorship score

Usage:
  aidetect analyze [flags] [file ...]   Analyze files (.txt, .md, .docx, .pdf) or stdin
  aidetect serve [flags]                Start the HTTP service
  aidetect version                      Print version
  aidetect help                         Show this help

Analyze flags:
  -mode full|summary|score   Result view (default full)
  -window N -overlap M       Score overlapping N-word windows instead
  -workers K                 Concurrent files or windows (default: CPUs)
  -config path               Config file (default ~/.config/ai-detector/config.toml)

Serve flags:
  -addr host:port            Listen address (default :8001)
  -config path               Config file
`, version)
}

type fileReport struct {
	Path    string                  `json:"path"`
	Result  any                     `json:"result,omitempty"`
	Windows []aidetect.WindowResult `json:"windows,omitempty"`
	Error   string                  `json:"error,omitempty"`
}

func analyzeCmd(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "config file")
	mode := fs.String("mode", "full", "full, summary or score")
	window := fs.Int("window", -1, "window size in words")
	overlap := fs.Int("overlap", -1, "window overlap in words")
	workers := fs.Int("workers", -1, "concurrent workers")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	logger := newLogger(stderr, *verbose)

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	opts := aidetect.WindowOptions{
		WindowWords:  pick(*window, cfg.Analysis.WindowWords),
		OverlapWords: pick(*overlap, cfg.Analysis.OverlapWords),
		Workers:      pick(*workers, cfg.Analysis.Workers),
	}
	if _, err := view(aidetect.Result{}, *mode); err != nil {
		return err
	}

	paths := fs.Args()
	if len(paths) == 0 || (len(paths) == 1 && paths[0] == "-") {
		text, err := ingest.ReadText(stdin, cfg.Server.MaxInputBytes)
		if err != nil {
			return err
		}
		report := analyzeText("-", text, *mode, opts)
		if report.Error != "" {
			return errors.New(report.Error)
		}
		return writeJSON(stdout, report.body(), true)
	}

	// Files already fan out; keep each document's windows on one worker.
	perFile := opts
	if len(paths) > 1 {
		perFile.Workers = 1
	}
	reports := make([]fileReport, len(paths))
	errs := pipeline.Run(paths, opts.Workers, func(i int, path string) error {
		logger.Debug("analyzing file", "path", path)
		doc, err := ingest.ParseFile(path)
		if err != nil {
			reports[i] = fileReport{Path: path, Error: err.Error()}
			return fmt.Errorf("%s: %w", path, err)
		}
		reports[i] = analyzeText(path, doc.Text, *mode, perFile)
		if reports[i].Error != "" {
			return fmt.Errorf("%s: %s", path, reports[i].Error)
		}
		return nil
	})
	for _, err := range errs {
		logger.Error("analysis failed", "error", err)
	}
	failed := len(errs)
	if len(reports) == 1 {
		if failed > 0 {
			return errors.New(reports[0].Error)
		}
		return writeJSON(stdout, reports[0].body(), true)
	}
	for _, r := range reports {
		if err := writeJSON(stdout, r, false); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(reports))
	}
	return nil
}

func analyzeText(path, text, mode string, opts aidetect.WindowOptions) fileReport {
	report := fileReport{Path: path}
	if opts.WindowWords > 0 {
		windows, err := aidetect.AnalyzeWindows(text, opts)
		if err != nil {
			report.Error = err.Error()
			return report
		}
		report.Windows = windows
		return report
	}
	res, err := aidetect.Analyze(text)
	if err != nil {
		report.Error = err.Error()
		return report
	}
	body, err := view(res, mode)
	if err != nil {
		report.Error = err.Error()
		return report
	}
	report.Result = body
	return report
}

func (r fileReport) body() any {
	if r.Windows != nil {
		return r.Windows
	}
	return r.Result
}

func view(res aidetect.Result, mode string) (any, error) {
	switch mode {
	case "", "full":
		return res, nil
	case "summary":
		return res.Summary(), nil
	case "score":
		return res.Probability(), nil
	default:
		return nil, fmt.Errorf("unknown mode %q (want full, summary or score)", mode)
	}
}

func serveCmd(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "config file")
	addr := fs.String("addr", "", "listen address")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	logger := newLogger(stderr, *verbose)

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	gin.SetMode(gin.ReleaseMode)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.Run(ctx, cfg.Server, logger)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

func writeJSON(w io.Writer, v any, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func pick(flagValue, fallback int) int {
	if flagValue < 0 {
		return fallback
	}
	return flagValue
}
