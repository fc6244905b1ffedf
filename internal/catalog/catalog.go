// Package catalog loads job postings from JSON or YAML catalog files or URLs.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/jobfit/internal/fetch"
	"github.com/jonathan/jobfit/internal/schemas"
	"github.com/jonathan/jobfit/internal/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Load reads one catalog file. The format follows the extension: .yaml and
// .yml are YAML, anything else is JSON. Every entry is checked against the
// catalog schema and the posting's own validation, and HTML descriptions are
// reduced to plain text.
func Load(path string) ([]types.JobPosting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("catalog file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(path, data)
}

// LoadContext is Load that also accepts http and https URLs. A remote
// catalog is YAML when its URL path ends in .yaml or .yml or the server
// says so in Content-Type, and JSON otherwise.
func LoadContext(ctx context.Context, path string) ([]types.JobPosting, error) {
	if !fetch.IsURL(path) {
		return Load(path)
	}

	res, err := fetch.URL(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}

	format := ".json"
	if u, err := url.Parse(path); err == nil && isYAMLExt(filepath.Ext(u.Path)) {
		format = ".yaml"
	}
	if res.IsYAML() {
		format = ".yaml"
	}
	return parse(format, path, res.Body)
}

// Parse decodes catalog data. path selects the format and labels errors.
func Parse(path string, data []byte) ([]types.JobPosting, error) {
	return parse(filepath.Ext(path), path, data)
}

func isYAMLExt(ext string) bool {
	ext = strings.ToLower(ext)
	return ext == ".yaml" || ext == ".yml"
}

func parse(ext, path string, data []byte) ([]types.JobPosting, error) {
	var jobs []types.JobPosting

	switch {
	case isYAMLExt(ext):
		if err := yaml.Unmarshal(data, &jobs); err != nil {
			return nil, &ParseError{Path: path, Cause: err}
		}
		if err := schemas.ValidateValue(schemas.JobCatalog, nullSafe(jobs)); err != nil {
			return nil, &ParseError{Path: path, Cause: err}
		}
	default:
		if err := schemas.Validate(schemas.JobCatalog, data); err != nil {
			return nil, &ParseError{Path: path, Cause: err}
		}
		if err := json.Unmarshal(data, &jobs); err != nil {
			return nil, &ParseError{Path: path, Cause: err}
		}
	}

	for i := range jobs {
		if err := jobs[i].Validate(); err != nil {
			return nil, &JobError{Path: path, Index: i, ID: jobs[i].ID, Cause: err}
		}
		jobs[i].Description = CleanDescription(jobs[i].Description)
	}
	return nullSafe(jobs), nil
}

// LoadAll loads several catalog files or URLs concurrently and concatenates them in
// argument order. Job ids must be unique across all files.
func LoadAll(ctx context.Context, paths []string, log *zap.Logger) ([]types.JobPosting, error) {
	if log == nil {
		log = zap.NewNop()
	}

	results := make([][]types.JobPosting, len(paths))
	g, gCtx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			jobs, err := LoadContext(gCtx, path)
			if err != nil {
				return err
			}
			results[i] = jobs
			log.Debug("catalog loaded", zap.String("path", path), zap.Int("jobs", len(jobs)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	all := make([]types.JobPosting, 0)
	seen := make(map[int]string)
	for i, jobs := range results {
		for _, job := range jobs {
			if prev, ok := seen[job.ID]; ok {
				return nil, fmt.Errorf("duplicate job id %d in %s (already in %s)", job.ID, paths[i], prev)
			}
			seen[job.ID] = paths[i]
			all = append(all, job)
		}
	}

	log.Info("catalog ready", zap.Int("files", len(paths)), zap.Int("jobs", len(all)))
	return all, nil
}

// Find returns the job with the given id.
func Find(jobs []types.JobPosting, id int) (types.JobPosting, bool) {
	for _, job := range jobs {
		if job.ID == id {
			return job, true
		}
	}
	return types.JobPosting{}, false
}

func nullSafe(jobs []types.JobPosting) []types.JobPosting {
	if jobs == nil {
		return []types.JobPosting{}
	}
	return jobs
}
