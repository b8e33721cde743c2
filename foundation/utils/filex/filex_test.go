// File: filex_test.go
// Title: File Utilities Tests
// Description: Tests for existence checks, directory creation and atomic writes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-06-14

package filex

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if !IsFile(file) {
		t.Errorf("expected %s to be a file", file)
	}
	if IsFile(dir) {
		t.Errorf("directory reported as file")
	}
	if IsFile(filepath.Join(dir, "missing")) {
		t.Errorf("missing path reported as file")
	}
}

func TestFirstExisting(t *testing.T) {
	dir := t.TempDir()
	second := filepath.Join(dir, "second.toml")
	if err := os.WriteFile(second, nil, 0644); err != nil {
		t.Fatal(err)
	}

	got := FirstExisting(filepath.Join(dir, "first.toml"), dir, second)
	if got != second {
		t.Errorf("FirstExisting() = %q, want %q", got, second)
	}
	if got := FirstExisting(filepath.Join(dir, "nope")); got != "" {
		t.Errorf("FirstExisting() = %q, want empty", got)
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("directory %s was not created", dir)
	}
	if err := EnsureDir(dir); err != nil {
		t.Errorf("EnsureDir() on existing directory error = %v", err)
	}
}

func TestWriteAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "diagram.json")

	if err := WriteAtomic(path, []byte("first"), 0644); err != nil {
		t.Fatalf("WriteAtomic() error = %v", err)
	}
	if err := WriteAtomic(path, []byte("second"), 0644); err != nil {
		t.Fatalf("WriteAtomic() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want %q", data, "second")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the target file, found %d entries", len(entries))
	}
}

func TestWriteAtomic_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "diagram.json")
	if err := WriteAtomic(path, []byte("x"), 0644); err == nil {
		t.Error("expected error writing into a missing directory")
	}
}
