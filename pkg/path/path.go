// Package path locates project files, such as .env and the migrations
// directory, by walking up from a starting directory.
package path

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindRoot walks from startDir toward the filesystem root and returns the
// first directory containing an entry named targetName of the requested
// kind (directory when isDir is true, file otherwise).
func FindRoot(startDir, targetName string, isDir bool) (string, error) {
	for dir := startDir; ; dir = filepath.Dir(dir) {
		info, err := os.Stat(filepath.Join(dir, targetName))
		if err == nil && info.IsDir() == isDir {
			return dir, nil
		}

		if filepath.Dir(dir) == dir {
			return "", fmt.Errorf("no %s found between %s and the filesystem root", targetName, startDir)
		}
	}
}
