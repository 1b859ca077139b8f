// Package application names feedr and locates its per-user directory.
package application

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

const (
	AppName = "feedr"

	// ServiceName identifies the headless controller to the system service manager.
	ServiceName = "FeedrController"

	ConfigFileName = "config.yaml"
)

var directory = sync.OnceValues(func() (string, error) {
	base, err := userBaseDir()
	if err != nil {
		return "", fmt.Errorf("locating %s directory: %w", AppName, err)
	}

	return filepath.Join(base, AppName), nil
})

// Directory returns the feedr directory holding the config file and, unless
// overridden, the state and feed history. It is not created here.
func Directory() (string, error) {
	return directory()
}

// ConfigPath returns the default location of the YAML config file.
func ConfigPath() (string, error) {
	dir, err := directory()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, ConfigFileName), nil
}

// userBaseDir is the roaming config dir, except on Windows where the state of
// a device controller belongs in the local (cache) profile.
func userBaseDir() (string, error) {
	if runtime.GOOS == "windows" {
		return os.UserCacheDir()
	}

	return os.UserConfigDir()
}
