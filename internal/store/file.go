package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/gofrs/flock"
)

// File keeps every record in a single JSON object on disk. Writers take an
// exclusive lock on a sibling .lock file so that several processes can share
// one data file.
type File struct {
	path string
	mu   sync.Mutex
	lock *flock.Flock
}

// NewFile returns a store backed by the JSON file at path. The file is
// created on the first write.
func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("file store path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &File{path: path, lock: flock.New(path + ".lock")}, nil
}

func (f *File) Get(_ context.Context, key string) ([]byte, error) {
	var value []byte
	err := f.withLock(false, func() error {
		records, err := f.read()
		if err != nil {
			return err
		}
		raw, ok := records[key]
		if !ok {
			return ErrNotFound
		}
		value = []byte(raw)
		return nil
	})
	return value, err
}

func (f *File) Put(_ context.Context, key string, value []byte) error {
	if !json.Valid(value) {
		return fmt.Errorf("value for %s is not valid JSON", key)
	}
	return f.withLock(true, func() error {
		records, err := f.read()
		if err != nil {
			return err
		}
		records[key] = json.RawMessage(append([]byte(nil), value...))
		return f.write(records)
	})
}

func (f *File) Delete(_ context.Context, key string) error {
	return f.withLock(true, func() error {
		records, err := f.read()
		if err != nil {
			return err
		}
		if _, ok := records[key]; !ok {
			return nil
		}
		delete(records, key)
		return f.write(records)
	})
}

func (f *File) Keys(_ context.Context, prefix string) ([]string, error) {
	keys := make([]string, 0)
	err := f.withLock(false, func() error {
		records, err := f.read()
		if err != nil {
			return err
		}
		for k := range records {
			if strings.HasPrefix(k, prefix) {
				keys = append(keys, k)
			}
		}
		return nil
	})
	sort.Strings(keys)
	return keys, err
}

func (f *File) Close() error {
	return f.lock.Close()
}

func (f *File) withLock(exclusive bool, fn func() error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var err error
	if exclusive {
		err = f.lock.Lock()
	} else {
		err = f.lock.RLock()
	}
	if err != nil {
		return fmt.Errorf("failed to lock %s: %w", f.path, err)
	}
	defer func() { _ = f.lock.Unlock() }()

	return fn()
}

func (f *File) read() (map[string]json.RawMessage, error) {
	records := make(map[string]json.RawMessage)
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return records, nil
		}
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return records, nil
	}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse store file %s: %w", f.path, err)
	}
	return records, nil
}

// write replaces the store file, keeping the previous version as .bak.
func (f *File) write(records map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store file: %w", err)
	}

	tmp := f.path + ".tmp"
	bak := f.path + ".bak"

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}

	_ = os.Remove(bak)
	_ = os.Rename(f.path, bak)

	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}
