package expenses

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// DefaultStoreFile is the store location, relative to the working directory.
var DefaultStoreFile = filepath.Join("src", "expenses.json")

// writeFile atomically replaces a file. It is replaced in tests to simulate write failures.
var writeFile = renameio.WriteFile

// Store persists the expense list in a single JSON file.
//
// There is no incremental API: Save always rewrites the whole file.
// The store assumes it is the only writer of the file.
type Store struct {
	path string
}

// NewStore returns a store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the store file path.
func (s *Store) Path() string { return s.path }

// Load reads the whole expense list.
//
// It fails with ErrNotFound if the file does not exist, ErrParse if the
// content is not an expense list, and ErrIO otherwise.
func (s *Store) Load() (Expenses, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &OpError{Op: "load", Path: s.path, Kind: ErrNotFound, Err: err}
	}
	if err != nil {
		return nil, &OpError{Op: "load", Path: s.path, Kind: ErrIO, Err: err}
	}
	l, err := DecodeExpenses(bytes.NewReader(data))
	if err != nil {
		return nil, &OpError{Op: "load", Path: s.path, Kind: ErrParse, Err: err}
	}
	slog.Debug("expense store loaded", "path", s.path, "count", len(l))
	return l, nil
}

// Save replaces the store content with l.
//
// The list is written to a temporary file which is then renamed over the
// store, so a failure leaves the previous content in place. Failures are reported as ErrIO.
func (s *Store) Save(l Expenses) error {
	if err := writeAtomic(s.path, l); err != nil {
		return &OpError{Op: "save", Path: s.path, Kind: ErrIO, Err: err}
	}
	slog.Debug("expense store saved", "path", s.path, "count", len(l))
	return nil
}

// Init creates an empty store, and its directory, if the file does not exist yet.
func (s *Store) Init() error {
	_, err := os.Stat(s.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return &OpError{Op: "init", Path: s.path, Kind: ErrIO, Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return &OpError{Op: "init", Path: s.path, Kind: ErrIO, Err: err}
	}
	if err := writeAtomic(s.path, Expenses{}); err != nil {
		return &OpError{Op: "init", Path: s.path, Kind: ErrIO, Err: err}
	}
	slog.Debug("expense store created", "path", s.path)
	return nil
}

// writeAtomic encodes l and atomically replaces path with it: readers see
// either the previous content or the new one, never a partial write.
func writeAtomic(path string, l Expenses) error {
	var b bytes.Buffer
	if err := EncodeExpenses(&b, l); err != nil {
		return err
	}
	return writeFile(path, b.Bytes(), 0644)
}
