package memory

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Header is the CSV header for memory.csv.
const Header = "merchant_key,category,clean_name,note"

const (
	numFields    = 4
	colKey       = 0
	colCategory  = 1
	colCleanName = 2
	colNote      = 3
)

// FileStore is a CSV-file-backed Store. The file is loaded once at open and
// rewritten on every upsert. Entries are never deleted; unbounded growth is
// accepted.
type FileStore struct {
	mu      sync.Mutex
	path    string
	entries map[string]Entry
}

// OpenFileStore loads <path> into memory, treating a missing file as empty.
func OpenFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, entries: make(map[string]Entry)}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening memory file: %w", err)
	}
	defer f.Close()

	if err := s.load(f); err != nil {
		return nil, fmt.Errorf("reading memory file %s: %w", path, err)
	}
	return s, nil
}

// Get returns the entry for key, if present.
func (s *FileStore) Get(key string) (Entry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	return e, ok, nil
}

// Set upserts the entry for key and rewrites the backing file.
func (s *FileStore) Set(key string, e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = e
	return s.flush()
}

// All returns every entry keyed by merchant key, in key order.
func (s *FileStore) All() ([]string, []Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := sortedKeys(s.entries)
	entries := make([]Entry, len(keys))
	for i, k := range keys {
		entries[i] = s.entries[k]
	}
	return keys, entries
}

func (s *FileStore) load(r io.Reader) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return fmt.Errorf("reading memory CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil
	}

	for i, rec := range records[1:] {
		if len(rec) != numFields {
			return fmt.Errorf("row %d: expected %d fields, got %d", i+2, numFields, len(rec))
		}
		s.entries[rec[colKey]] = Entry{
			Category:  rec[colCategory],
			CleanName: rec[colCleanName],
			Note:      rec[colNote],
		}
	}
	return nil
}

// flush rewrites the whole file with entries in key order, so repeated
// upserts produce stable diffs. Caller holds the lock.
func (s *FileStore) flush() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating memory dir: %w", err)
		}
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("writing memory file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, key := range sortedKeys(s.entries) {
		e := s.entries[key]
		row := make([]string, numFields)
		row[colKey] = key
		row[colCategory] = e.Category
		row[colCleanName] = e.CleanName
		row[colNote] = e.Note
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing entry %s: %w", key, err)
		}
	}
	return cw.Error()
}

func sortedKeys(m map[string]Entry) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
