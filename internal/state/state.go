package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"
)

// State is the small JSON document that survives restarts. It tracks which
// hosted index backs the assistant and which local files went into it.
// Deleting the file is the supported way to force a clean re-index.
type State struct {
	VectorStoreID string   `json:"vector_store_id"`
	AssistantID   string   `json:"assistant_id"`
	IndexedFiles  []string `json:"indexed_files"`
	LastIndexTime int64    `json:"last_index_time"`
}

// Indexed reports whether a hosted index exists for the current corpus.
func (s *State) Indexed() bool {
	return s != nil && s.VectorStoreID != ""
}

// LastIndexedAt returns the last indexing time, or nil if never indexed.
func (s *State) LastIndexedAt() *time.Time {
	if s == nil || s.LastIndexTime == 0 {
		return nil
	}
	t := time.Unix(s.LastIndexTime, 0)
	return &t
}

// Store reads and writes the state file. Access is serialized because HTTP
// handlers run concurrently, even though the app serves a single local user.
type Store struct {
	path string
	mu   sync.Mutex
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the persisted state. A missing or unreadable file yields a
// zero state, which means "not yet indexed".
func (s *Store) Load() (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &State{}, nil
		}
		return nil, fmt.Errorf("reading state file: %w", err)
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		// A corrupt file is treated like a deleted one: start over.
		return &State{}, nil
	}
	return &st, nil
}

// Save overwrites the state file with the given state.
func (s *Store) Save(st *State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}
	return nil
}
