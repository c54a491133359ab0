package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// PathResolver turns user supplied path text into a canonical absolute path.
type PathResolver interface {
	Resolve(path string) (string, error)
}

// CanonicalResolver resolves paths against the filesystem: relative paths are
// made absolute against the working directory and every symlink is followed.
// The path must exist.
type CanonicalResolver struct{}

func NewCanonicalResolver() *CanonicalResolver {
	return &CanonicalResolver{}
}

func (r *CanonicalResolver) Resolve(path string) (string, error) {
	if path == "" {
		return "", errors.New("empty path")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}

	if !utf8.ValidString(resolved) {
		return "", fmt.Errorf("invalid unicode in path: %q", resolved)
	}

	return resolved, nil
}

// ExpandHome replaces a leading "~" with the current user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
