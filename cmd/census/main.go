package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/census/internal/config"
	"github.com/JonMunkholm/census/internal/core"
	"github.com/JonMunkholm/census/internal/logging"
	"github.com/JonMunkholm/census/internal/web"
	"github.com/joho/godotenv"
)

// options holds command line settings. Flags override the environment.
type options struct {
	censusFile    string
	stateCodeFile string
	sortField     string
	format        string
	indent        int
	countOnly     bool
	serve         bool
}

func main() {
	// Load .env file if it exists; real environment variables win
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	if envErr != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	opts := parseFlags(cfg)
	if err := run(context.Background(), cfg, opts, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, describe(err))
		os.Exit(2)
	}
}

// parseFlags parses command line flags, defaulting to config values.
func parseFlags(cfg *config.Config) options {
	o := options{}

	flag.StringVar(&o.censusFile, "census", cfg.Data.CensusFile, "State census CSV file")
	flag.StringVar(&o.stateCodeFile, "codes", cfg.Data.StateCodeFile, "State code CSV file")
	flag.StringVar(&o.sortField, "sort", "", "Print the view sorted by: state, code, population, density, area")
	flag.StringVar(&o.format, "format", cfg.Output.Format, "Output format: json or yaml")
	flag.IntVar(&o.indent, "indent", cfg.Output.Indent, "Spaces per indent level (0 = compact)")
	flag.BoolVar(&o.countOnly, "count", false, "Only validate and count records; do not load")
	flag.BoolVar(&o.serve, "serve", false, "Start the HTTP server")

	flag.Usage = printUsage
	flag.Parse()
	return o
}

// run executes one invocation and writes any sorted view to out.
func run(ctx context.Context, cfg *config.Config, o options, out io.Writer) error {
	format, err := core.ParseFormat(o.format)
	if err != nil {
		return err
	}

	service := core.NewService(core.Options{
		Serializer:  core.Serializer{Format: format, Indent: o.indent},
		MaxFileSize: cfg.Data.MaxFileSize,
	})

	if o.countOnly {
		return countFiles(ctx, service, o, out)
	}

	if o.censusFile != "" {
		if _, err := service.Load(ctx, core.RecordCensus, o.censusFile); err != nil {
			return err
		}
	}
	if o.stateCodeFile != "" {
		if _, err := service.Load(ctx, core.RecordStateCode, o.stateCodeFile); err != nil {
			return err
		}
	}

	if o.sortField != "" {
		field, err := core.ParseSortField(o.sortField)
		if err != nil {
			return err
		}
		text, err := service.Sorted(field, service.Serializer())
		if err != nil {
			return err
		}
		fmt.Fprintln(out, text)
	}

	if o.serve {
		return serve(cfg, service)
	}

	if o.sortField == "" {
		flag.Usage()
	}
	return nil
}

// countFiles prints the record count of each given file.
func countFiles(ctx context.Context, service *core.Service, o options, out io.Writer) error {
	files := []struct {
		t    core.RecordType
		path string
	}{
		{core.RecordCensus, o.censusFile},
		{core.RecordStateCode, o.stateCodeFile},
	}

	for _, f := range files {
		if f.path == "" {
			continue
		}
		n, err := service.Count(ctx, f.t, f.path)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\t%d\t%s\n", f.t, n, f.path)
	}
	return nil
}

// serve runs the HTTP server until SIGINT or SIGTERM.
func serve(cfg *config.Config, service *core.Service) error {
	server := web.NewServer(service, cfg.Server)

	done := make(chan error, 1)
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		done <- server.Shutdown(shutdownCtx)
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr(), "data_dir", cfg.Server.DataDir, "schemas", len(core.Schemas()))
	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-done
}

// describe formats err for the terminal, with the user message when the
// error is a classified pipeline failure.
func describe(err error) string {
	if core.KindOf(err) == core.KindUnknown {
		return fmt.Sprintf("error: %v", err)
	}
	return fmt.Sprintf("%s\n  detail: %v", core.FormatUserError(core.MapError(err)), err)
}

// printUsage prints usage information
func printUsage() {
	fmt.Fprintf(os.Stderr, `census - load, validate, sort and emit state census data

Usage:
  census [options]

Options:
  -census FILE    State census CSV (env CENSUS_FILE)
  -codes FILE     State code CSV (env STATE_CODE_FILE)
  -sort FIELD     Print the sorted view: state, code, population, density, area
  -format F       json or yaml (env OUTPUT_FORMAT, default json)
  -indent N       Spaces per indent level, 0 = compact (env OUTPUT_INDENT)
  -count          Validate and count records without loading them
  -serve          Start the HTTP server (env CENSUS_HOST, CENSUS_PORT, CENSUS_DATA_DIR)

Examples:
  # Most populous state first
  census -census "IndiaStateCensusData.csv" -sort population

  # State codes as indented YAML
  census -codes "IndiaStateCode.csv" -sort code -format yaml -indent 2

  # Preload both files and serve them
  census -census "IndiaStateCensusData.csv" -codes "IndiaStateCode.csv" -serve
`)
}
