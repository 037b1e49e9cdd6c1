// Package testutil provides common testing utilities for pslist packages.
// It includes helpers for capturing output, locating test resources and
// building synthetic process filesystems.
package testutil

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CaptureOutput captures stdout during function execution.
// It redirects os.Stdout to a pipe, executes the function, and returns the captured output.
// The original stdout is always restored, even if the function returns an error.
//
// Example:
//
//	output := testutil.CaptureOutput(t, func() error {
//	    return cmd.Execute()
//	})
func CaptureOutput(t *testing.T, fn func() error) string {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	// Buffered to avoid goroutine leak
	outCh := make(chan string, 1)
	go func() {
		var output strings.Builder
		_, _ = io.Copy(&output, r)
		outCh <- output.String()
	}()

	fnErr := fn()

	if err := w.Close(); err != nil {
		t.Logf("Failed to close pipe writer: %v", err)
	}
	os.Stdout = origStdout

	output := <-outCh

	if fnErr != nil {
		t.Logf("Command error: %v", fnErr)
	}

	return output
}

// FindTestData finds a test data directory relative to the current working directory.
// It accepts variadic subdirectory names to construct the path (e.g., "testdata", "scenarios")
// and searches the working directory and up to three of its ancestors, so
// package tests can reach fixtures kept at the module root.
//
// Example:
//
//	dir := testutil.FindTestData(t, "testdata", "scenarios")
func FindTestData(t *testing.T, subdirs ...string) string {
	t.Helper()

	if len(subdirs) == 0 {
		t.Fatal("FindTestData requires at least one subdirectory")
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}

	targetPath := filepath.Join(subdirs...)

	possiblePaths := []string{
		filepath.Join(cwd, targetPath),
		filepath.Join(cwd, "..", targetPath),
		filepath.Join(cwd, "..", "..", targetPath),
		filepath.Join(cwd, "..", "..", "..", targetPath),
	}

	for _, testDir := range possiblePaths {
		testDir = filepath.Clean(testDir)
		if info, err := os.Stat(testDir); err == nil && info.IsDir() {
			return testDir
		}
	}

	t.Fatalf("Test data directory not found: %s (searched from %s)", targetPath, cwd)
	return ""
}
