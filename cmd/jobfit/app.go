package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/jobfit/internal/catalog"
	"github.com/jonathan/jobfit/internal/config"
	"github.com/jonathan/jobfit/internal/logger"
	"github.com/jonathan/jobfit/internal/observability"
	"github.com/jonathan/jobfit/internal/schemas"
	"github.com/jonathan/jobfit/internal/store"
	"github.com/jonathan/jobfit/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Persistent flags shared by every command
var (
	configPath   string
	storeBackend string
	storeDSN     string
	catalogPath  string
	logJSON      bool
	debug        bool
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Path to config file (JSON or YAML)")
	pf.StringVar(&storeBackend, "store", "", "Store backend: memory, file, sqlite, postgres or redis (overrides config)")
	pf.StringVar(&storeDSN, "store-dsn", "", "Store file path or connection URL (overrides config)")
	pf.StringVar(&catalogPath, "catalog", "", "Job catalog file, JSON or YAML (overrides config)")
	pf.BoolVar(&logJSON, "log-json", false, "Write logs as JSON")
	pf.BoolVar(&debug, "debug", false, "Enable debug logging")
}

// app is the per-invocation state built from config and flags
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	stores  *store.Stores
	out     io.Writer
	printer *observability.Printer
}

// loadConfig reads the config file and applies persistent flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("store") {
		cfg.Store.Backend = storeBackend
	}
	if flags.Changed("store-dsn") {
		cfg.Store.DSN = storeDSN
	}
	if flags.Changed("catalog") {
		cfg.Catalog.Paths = []string{catalogPath}
	}
	if logJSON {
		cfg.Log.JSON = true
	}
	if debug {
		cfg.Log.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newApp loads config, builds the logger and opens the store.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	kv, err := store.Open(cmd.Context(), cfg.Store.Backend, cfg.Store.DSN, store.WithKeyPrefix(cfg.Store.KeyPrefix))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Store.Backend, err)
	}
	log.Debug("store opened", zap.String("backend", cfg.Store.Backend))

	out := cmd.OutOrStdout()
	return &app{
		cfg:     cfg,
		log:     log,
		stores:  store.New(kv, log),
		out:     out,
		printer: observability.NewPrinter(out),
	}, nil
}

// Close releases the store and flushes the logger.
func (a *app) Close() {
	if err := a.stores.Close(); err != nil {
		a.log.Warn("failed to close store", zap.Error(err))
	}
	_ = a.log.Sync()
}

// jobs loads the configured job catalog.
func (a *app) jobs(cmd *cobra.Command) ([]types.JobPosting, error) {
	return catalog.LoadAll(cmd.Context(), a.cfg.Catalog.Paths, a.log)
}

// job returns one catalog job by id.
func (a *app) job(cmd *cobra.Command, id int) (types.JobPosting, error) {
	jobs, err := a.jobs(cmd)
	if err != nil {
		return types.JobPosting{}, err
	}
	job, ok := catalog.Find(jobs, id)
	if !ok {
		return types.JobPosting{}, fmt.Errorf("job %d is not in the catalog", id)
	}
	return job, nil
}

// writeJSON prints v as indented JSON. When schema is set the output is
// checked against it and a failure is logged as a warning.
func (a *app) writeJSON(schema string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	if schema != "" {
		if err := schemas.Validate(schema, data); err != nil {
			a.log.Warn("output does not match schema", zap.String("schema", schema), zap.Error(err))
		}
	}

	_, err = fmt.Fprintln(a.out, string(data))
	return err
}

// writeFile writes text to path, or to the command output when path is "" or "-".
func (a *app) writeFile(path, text string) error {
	if path == "" || path == "-" {
		_, err := fmt.Fprintln(a.out, text)
		return err
	}
	if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	a.log.Info("file written", zap.String("path", path))
	return nil
}

// withApp adapts a command body that needs the app to a cobra RunE.
func withApp(run func(cmd *cobra.Command, args []string, a *app) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		return run(cmd, args, a)
	}
}
