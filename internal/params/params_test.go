package params

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDataDir_Override(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	got, err := DataDir(dir)
	if err != nil {
		t.Fatalf("DataDir() error = %v", err)
	}

	if got != dir {
		t.Errorf("DataDir() = %q, want %q", got, dir)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("data directory not created: %v", err)
	}

	if !info.IsDir() {
		t.Errorf("%s is not a directory", dir)
	}
}
