package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportResults_WritesJSON(t *testing.T) {
	records := []CheckRecord{
		{Password: "abc", Strength: "Too short", Message: "Password should be at least 12 characters long."},
		{Password: "Tr0ub4dor&3xyz!", Strength: "Very Strong", Message: "Password meets all the requirements. Score: 4/4"},
	}

	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, ExportResults(records, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []CheckRecord
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, records, decoded)

	// Indented output, password retained in cleartext
	assert.Contains(t, string(data), "    \"password\": \"abc\"")
}

func TestExportResults_EmptyLogFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")

	err := ExportResults(nil, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no results")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no file should be written")
}

func TestExportResults_UnwritablePathFails(t *testing.T) {
	records := []CheckRecord{{Password: "x", Strength: "Too short"}}
	err := ExportResults(records, filepath.Join(t.TempDir(), "missing", "results.json"))
	assert.Error(t, err)
}

func TestFormatResult(t *testing.T) {
	result := StrengthResult{Strength: "Banned", Score: 0,
		Message: "This password is not allowed, as it is commonly found in data leaks."}
	assert.Equal(t,
		"Banned: This password is not allowed, as it is commonly found in data leaks.",
		FormatResult(result))
}
