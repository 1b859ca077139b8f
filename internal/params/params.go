package params

import (
	"fmt"
	"os"

	"github.com/inovacc/feedr/internal/application"
)

// DataDir resolves the directory holding the persisted state and feed history.
// An empty override selects the application directory. The directory is
// created when missing.
func DataDir(override string) (string, error) {
	dir := override
	if dir == "" {
		appDir, err := application.Directory()
		if err != nil {
			return "", err
		}

		dir = appDir
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("creating data directory %s: %w", dir, err)
	}

	return dir, nil
}
