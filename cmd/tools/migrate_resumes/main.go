// Command migrate_resumes upgrades legacy resume records to the current shape.
//
// With no arguments it upgrades the resume held by the configured store. Each
// argument is instead treated as a resume JSON file and rewritten in place.
//
// Usage:
//
//	go run cmd/tools/migrate_resumes/main.go [resume.json ...]
//
// The store is chosen by JOBFIT_CONFIG or the JOBFIT_STORE_* environment variables.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/jobfit/internal/config"
	"github.com/jonathan/jobfit/internal/resume"
	"github.com/jonathan/jobfit/internal/store"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) > 1 {
		os.Exit(migrateFiles(os.Args[1:]))
	}

	cfg, err := config.Load(os.Getenv("JOBFIT_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	kv, err := store.Open(ctx, cfg.Store.Backend, cfg.Store.DSN, store.WithKeyPrefix(cfg.Store.KeyPrefix))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to open %s store: %v\n", cfg.Store.Backend, err)
		os.Exit(1)
	}
	stores := store.New(kv, zap.NewNop())
	defer func() { _ = stores.Close() }()

	fmt.Println("=== Resume Migration ===")
	fmt.Printf("  Backend: %s\n", cfg.Store.Backend)

	changed, err := stores.Resumes.MigrateInPlace(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	if changed {
		fmt.Println("  ✓ Stored resume upgraded")
	} else {
		fmt.Println("  • Stored resume already current (or absent)")
	}
}

// migrateFiles rewrites each file in the current shape and returns the exit code.
func migrateFiles(paths []string) int {
	upgraded, failed := 0, 0
	for _, path := range paths {
		if err := migrateFile(path); err != nil {
			fmt.Printf("  ✗ %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("  ✓ %s\n", path)
		upgraded++
	}

	fmt.Println()
	fmt.Println("=== Migration Summary ===")
	fmt.Printf("  Upgraded: %d\n", upgraded)
	fmt.Printf("  Failed: %d\n", failed)
	if failed > 0 {
		return 1
	}
	return 0
}

func migrateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	doc, err := resume.Migrate(data)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(out, '\n'), 0o644)
}
