package devenv

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const statePrefix = "<dev_state>"

var modName = regexp.MustCompile(`(?m)^module *([\w\-_]+)$`)

func isWorkspaceRoot(currentdir string) bool {
	mod, err := os.ReadFile(filepath.Join(currentdir, "go.mod"))
	if err != nil {
		return false
	}
	matches := modName.FindSubmatch(mod)
	return len(matches) >= 2 && string(matches[1]) == "resultsdb"
}

// GetWorkspaceRoot walks up from the cwd until it finds the go.mod of this module.
func GetWorkspaceRoot() (string, error) {
	currentdir, err := filepath.Abs(".")
	if err != nil {
		return "", err
	}
	root, err := filepath.Abs("/")
	if err != nil {
		return "", err
	}

	for currentdir != root {
		if !isWorkspaceRoot(currentdir) {
			currentdir = filepath.Join(currentdir, "..")
			continue
		}
		return currentdir, nil
	}

	return "", os.ErrNotExist
}

// StateDir is <workspace root>/dev/.state inside a checkout, otherwise
// .resultsdb in the cwd.
func StateDir() (string, error) {
	root, err := GetWorkspaceRoot()
	if errors.Is(err, os.ErrNotExist) {
		return filepath.Abs(".resultsdb")
	}
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "dev", ".state"), nil
}

// ResolvePath expands a leading "<dev_state>" into StateDir, creating the
// directory if needed. Other paths are returned as-is.
func ResolvePath(path string) (string, error) {
	if !strings.HasPrefix(path, statePrefix) {
		return path, nil
	}

	dir, err := StateDir()
	if err != nil {
		return "", err
	}
	err = os.MkdirAll(dir, 0777)
	if err != nil {
		return "", err
	}

	subpath := strings.TrimPrefix(path, statePrefix)
	subpath = strings.TrimLeft(subpath, `/\`)
	return filepath.Join(dir, subpath), nil
}
