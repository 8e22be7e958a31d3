package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWordlist(t testing.TB, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wordlist.txt")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))
	return path
}

func TestWordlistStore_Load(t *testing.T) {
	path := writeWordlist(t, "password123456\nqwerty12345678\n")
	store := NewWordlistStore()

	list, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"password123456", "qwerty12345678"}, list.Words)
	assert.True(t, list.Contains("password123456"))
	assert.False(t, list.Contains("notinlist"))
}

func TestWordlistStore_CachesByPath(t *testing.T) {
	path := writeWordlist(t, "first\n")
	store := NewWordlistStore()

	list1, err := store.Load(path)
	require.NoError(t, err)

	// Rewrite the file; the store must keep serving the first load
	require.NoError(t, os.WriteFile(path, []byte("second\n"), 0o644))

	list2, err := store.Load(path)
	require.NoError(t, err)
	assert.Same(t, list1, list2, "same path should return the cached list")
	assert.True(t, list2.Contains("first"))
	assert.False(t, list2.Contains("second"))
	assert.Equal(t, 1, store.Size())
}

func TestWordlistStore_NotFound(t *testing.T) {
	store := NewWordlistStore()

	_, err := store.Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, notFound.Path, "missing.txt")
	assert.NotNil(t, errors.Unwrap(notFound))
}

func TestWordlistStore_BinaryFileIsLoadFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordlist.txt")
	// PNG magic bytes
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00}
	require.NoError(t, os.WriteFile(path, png, 0o644))

	store := NewWordlistStore()
	_, err := store.Load(path)
	require.Error(t, err)

	var loadFailure *LoadFailureError
	require.ErrorAs(t, err, &loadFailure)
	assert.Equal(t, path, loadFailure.Path)
}

func TestWordlist_TrailingWhitespaceStripped(t *testing.T) {
	path := writeWordlist(t, "trailing   \r\ntabbed\t\t\n  leading\n")
	store := NewWordlistStore()

	list, err := store.Load(path)
	require.NoError(t, err)

	assert.True(t, list.Contains("trailing"))
	assert.True(t, list.Contains("tabbed"))
	// Leading whitespace is preserved
	assert.True(t, list.Contains("  leading"))
	assert.False(t, list.Contains("leading"))
}

func TestWordlist_DuplicatesAndOrderPreserved(t *testing.T) {
	path := writeWordlist(t, "b\na\nb\n")
	store := NewWordlistStore()

	list, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "b"}, list.Words)
	assert.Equal(t, 3, list.Len())
}

func TestWordlist_CaseSensitive(t *testing.T) {
	path := writeWordlist(t, "Password123456\n")
	store := NewWordlistStore()

	list, err := store.Load(path)
	require.NoError(t, err)
	assert.True(t, list.Contains("Password123456"))
	assert.False(t, list.Contains("password123456"))
	assert.False(t, list.Contains("PASSWORD123456"))
}

func TestWordlistStore_ConcurrentLoad(t *testing.T) {
	path := writeWordlist(t, "entry123456789\n")
	store := NewWordlistStore()

	done := make(chan *Wordlist, 20)
	for i := 0; i < 20; i++ {
		go func() {
			list, err := store.Load(path)
			assert.NoError(t, err)
			done <- list
		}()
	}

	first := <-done
	for i := 1; i < 20; i++ {
		assert.Same(t, first, <-done, "all loaders should see one list per path")
	}
}
