// Package store owns the durable ride file. It reconstructs the in-memory
// ride sequence on load, appends single records, rewrites the whole file for
// edits and deletions, and migrates stores written under legacy encodings.
//
// The design assumes a single process and a single user: no locking and no
// coordination between writers. Callers treat load → mutate in memory →
// rewrite/append as the unit of work; between those calls last-writer-wins.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/loicseguin/velolog/internal/codec"
	"github.com/loicseguin/velolog/internal/domain"
)

// RideStore defines the persistence operations for rides.
// The service layer depends on this interface, not the concrete file
// implementation, which allows the service to be unit-tested with a mock.
type RideStore interface {
	// Load reads the whole file, decodes every line, assigns ordinal ids
	// over the full unfiltered sequence, and returns only the rides whose
	// timestamp year passes the filter. A missing file yields an empty
	// sequence; any malformed line fails the whole load with
	// domain.ErrCorruptStore.
	Load(filter domain.YearFilter) ([]domain.Ride, error)

	// Append encodes one ride and writes it to the end of the file without
	// rewriting existing content.
	Append(ride domain.Ride) error

	// Rewrite replaces the file content with the full given sequence. The
	// replacement is atomic: a temporary file is written and renamed over
	// the store, so a failure never leaves the store truncated.
	Rewrite(rides []domain.Ride) error

	// Migrate reads the store under the legacy decoder chain and rewrites
	// it in the current encoding. Running it twice produces byte-identical
	// output the second time.
	Migrate() error
}

// FileStore is the file-backed implementation of RideStore.
type FileStore struct {
	path  string
	codec codec.Codec
}

// New constructs a FileStore for the ride file at path, encoding with the
// given field delimiter (zero means the default comma).
func New(path string, delim rune) *FileStore {
	return &FileStore{path: path, codec: codec.New(delim)}
}

// Path returns the location of the underlying ride file.
func (s *FileStore) Path() string {
	return s.path
}

// Load implements RideStore.
func (s *FileStore) Load(filter domain.YearFilter) ([]domain.Ride, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		// First run: no file yet means no rides, not an error.
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store.FileStore.Load: %v: %w", err, domain.ErrIO)
	}

	all, err := s.codec.DecodeAll(data)
	if err != nil {
		return nil, fmt.Errorf("store.FileStore.Load: %s: %v: %w", s.path, err, domain.ErrCorruptStore)
	}

	// Ids are already assigned over the full sequence; filtering keeps them.
	var rides []domain.Ride
	for _, ride := range all {
		if filter.Match(ride.Timestamp) {
			rides = append(rides, ride)
		}
	}
	return rides, nil
}

// Append implements RideStore.
func (s *FileStore) Append(ride domain.Ride) error {
	line, err := s.codec.Encode(ride)
	if err != nil {
		return fmt.Errorf("store.FileStore.Append: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("store.FileStore.Append: %v: %w", err, domain.ErrIO)
	}
	defer f.Close()

	if _, err := f.Write(line); err != nil {
		return fmt.Errorf("store.FileStore.Append: %v: %w", err, domain.ErrIO)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("store.FileStore.Append: close: %v: %w", err, domain.ErrIO)
	}
	return nil
}

// Rewrite implements RideStore.
func (s *FileStore) Rewrite(rides []domain.Ride) error {
	data, err := s.codec.EncodeAll(rides)
	if err != nil {
		return fmt.Errorf("store.FileStore.Rewrite: %w", err)
	}

	// Write a uniquely named sibling file and rename it over the store, so
	// the previous content survives any failure before the rename.
	tmp := filepath.Join(filepath.Dir(s.path),
		fmt.Sprintf(".%s.%s.tmp", filepath.Base(s.path), uuid.NewString()))
	if err := writeAndSync(tmp, data); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("store.FileStore.Rewrite: %v: %w", err, domain.ErrIO)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("store.FileStore.Rewrite: rename: %v: %w", err, domain.ErrIO)
	}
	return nil
}

// Migrate implements RideStore.
func (s *FileStore) Migrate() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("store.FileStore.Migrate: %v: %w", err, domain.ErrIO)
	}

	// A store written by the current version may hold quoted multi-line
	// fields, which a line split would tear apart. Decode the whole file
	// under the current format first; only a file it rejects goes through
	// the per-line legacy chain.
	rides, err := s.codec.DecodeAll(data)
	if err != nil {
		rides, err = s.decodeLegacy(data)
		if err != nil {
			return err
		}
	}
	return s.Rewrite(rides)
}

// decodeLegacy runs each line of a pre-current store through the decoder
// chain. The chain decides per line, so a store appended to by a newer
// version after being written by an older one still migrates cleanly; no
// legacy encoder ever spread a record over multiple lines. Blank lines,
// which some legacy writers left behind, are dropped.
func (s *FileStore) decodeLegacy(data []byte) ([]domain.Ride, error) {
	var rides []domain.Ride
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		ride, err := s.codec.DecodeAny(line)
		if err != nil {
			return nil, fmt.Errorf("store.FileStore.Migrate: record %d: %v: %w",
				len(rides), err, domain.ErrCorruptStore)
		}
		ride.ID = len(rides)
		rides = append(rides, ride)
	}
	return rides, nil
}

// writeAndSync writes data to path and flushes it to stable storage before
// the caller renames it into place.
func writeAndSync(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// compile-time check: FileStore must satisfy RideStore.
var _ RideStore = (*FileStore)(nil)
