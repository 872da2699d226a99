package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStartProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "advent.prof")
	stop, err := startProfile(path)
	if err != nil {
		t.Fatal(err)
	}
	time.Sleep(50 * time.Millisecond)
	if err := stop(); err != nil {
		t.Fatal(err)
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Error("profile is empty")
	}
}

func TestStartProfileBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "advent.prof")
	if _, err := startProfile(path); err == nil {
		t.Error("got nil error")
	}
}

func TestIsTerminalFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "input.txt"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if isTerminal(f.Fd()) {
		t.Error("regular file reported as a terminal")
	}
}
