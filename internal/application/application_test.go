package application

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestConfigPath(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME is only honoured on linux")
	}

	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	dir, err := Directory()
	if err != nil {
		t.Fatalf("Directory() error = %v", err)
	}

	if want := filepath.Join(base, AppName); dir != want {
		t.Errorf("Directory() = %q, want %q", dir, want)
	}

	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath() error = %v", err)
	}

	if want := filepath.Join(base, "feedr", "config.yaml"); path != want {
		t.Errorf("ConfigPath() = %q, want %q", path, want)
	}
}
