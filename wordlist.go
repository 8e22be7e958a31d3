package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"unicode"

	"github.com/h2non/filetype"
)

// NotFoundError indicates a configured wordlist path does not exist
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("wordlist %q not found: %v", e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// LoadFailureError indicates a wordlist exists but could not be read or decoded
type LoadFailureError struct {
	Path string
	Err  error
}

func (e *LoadFailureError) Error() string {
	return fmt.Sprintf("loading wordlist %q: %v", e.Path, e.Err)
}

func (e *LoadFailureError) Unwrap() error { return e.Err }

// Wordlist holds the entries loaded from a single file.
// The slice preserves order and duplicates as loaded; the set backs
// exact, case-sensitive membership checks.
type Wordlist struct {
	Path  string
	Words []string
	set   map[string]struct{}
}

// Contains reports whether word exactly matches an entry in the list
func (w *Wordlist) Contains(word string) bool {
	_, ok := w.set[word]
	return ok
}

// Len returns the number of entries as loaded, duplicates included
func (w *Wordlist) Len() int {
	return len(w.Words)
}

// WordlistStore loads wordlist files and caches them by path.
// Once a path is loaded the same in-memory list is reused for the
// lifetime of the store; file changes are not picked up.
type WordlistStore struct {
	mu    sync.RWMutex
	lists map[string]*Wordlist
}

// NewWordlistStore creates an empty wordlist store
func NewWordlistStore() *WordlistStore {
	return &WordlistStore{
		lists: make(map[string]*Wordlist),
	}
}

// Load returns the wordlist for path, reading it on first use.
// Returns *NotFoundError if the path does not resolve to a file and
// *LoadFailureError for any other read or decode failure.
func (s *WordlistStore) Load(path string) (*Wordlist, error) {
	s.mu.RLock()
	cached, ok := s.lists[path]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	list, err := readWordlist(path)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	// Another goroutine may have loaded the same path concurrently;
	// keep the first entry so callers always see one list per path.
	if existing, ok := s.lists[path]; ok {
		s.mu.Unlock()
		return existing, nil
	}
	s.lists[path] = list
	s.mu.Unlock()

	slog.Debug("wordlist loaded", "path", path, "entries", list.Len())
	return list, nil
}

// Size returns the number of cached wordlists
func (s *WordlistStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lists)
}

// readWordlist reads a newline-delimited wordlist file
func readWordlist(path string) (*Wordlist, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path, Err: err}
		}
		return nil, &LoadFailureError{Path: path, Err: err}
	}

	if isBinaryContent(content) {
		return nil, &LoadFailureError{Path: path, Err: fmt.Errorf("not a text file")}
	}

	words := make([]string, 0, 64)
	set := make(map[string]struct{})

	scanner := bufio.NewScanner(strings.NewReader(string(content)))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRightFunc(scanner.Text(), unicode.IsSpace)
		words = append(words, line)
		set[line] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, &LoadFailureError{Path: path, Err: err}
	}

	return &Wordlist{Path: path, Words: words, set: set}, nil
}

// isBinaryContent checks if content is binary using magic bytes detection
func isBinaryContent(content []byte) bool {
	// Only need first 262 bytes for magic number detection
	head := content
	if len(head) > 262 {
		head = head[:262]
	}
	kind, _ := filetype.Match(head)
	// Known types (images, archives, etc.) are binary; plain text
	// comes back as filetype.Unknown
	return kind != filetype.Unknown
}
