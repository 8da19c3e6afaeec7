package seen

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/gofrs/flock"
)

// FileStore persists fingerprints as an append-only file, one key per line.
// Appends take a cross-process file lock so two overlapping runs cannot
// interleave writes.
type FileStore struct {
	path string
	lock *flock.Flock
}

// NewFileStore creates a store backed by the file at path. The file does
// not need to exist yet; a missing file loads as an empty set.
func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

// Load reads every non-empty line of the store file into a set. A missing
// file is an empty set, not an error.
func (s *FileStore) Load() (map[string]struct{}, error) {
	keys := make(map[string]struct{})

	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return keys, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening seen file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			keys[line] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading seen file: %w", err)
	}

	return keys, nil
}

// Append writes the given keys to the end of the store file, one per line.
// The file is never rewritten or compacted.
func (s *FileStore) Append(keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("locking seen file: %w", err)
	}
	defer s.lock.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening seen file for append: %w", err)
	}
	defer f.Close()

	for _, key := range keys {
		if _, err := fmt.Fprintln(f, key); err != nil {
			return fmt.Errorf("appending seen key: %w", err)
		}
	}

	return nil
}

// Close releases the file lock if held.
func (s *FileStore) Close() error {
	if s.lock.Locked() {
		return s.lock.Unlock()
	}
	return nil
}
