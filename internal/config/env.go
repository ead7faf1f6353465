package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// EnvFiles are the dotenv files read from the configuration root, in order.
var EnvFiles = []string{".env", ".env.local"}

// LoadEnv loads EnvFiles from root into the process environment.
// Variables already set in the environment are not overwritten, and missing
// files are skipped. It returns the files that were loaded.
func LoadEnv(root string) ([]string, error) {
	if root == "" {
		root = "."
	}

	var loaded []string
	for _, name := range EnvFiles {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return loaded, fmt.Errorf("failed to load %s: %w", path, err)
		}
		loaded = append(loaded, path)
	}
	return loaded, nil
}
