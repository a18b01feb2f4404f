package model

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandTilde expands a leading ~ to the user's home directory
func ExpandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			return home
		}
	}
	return path
}

// ReadMapFile loads a puzzle map from disk, one grid row per line.
// Line endings are normalised; validation is left to the grid builder.
func ReadMapFile(path string) (string, error) {
	file, err := os.Open(ExpandTilde(path))
	if err != nil {
		return "", fmt.Errorf("could not read map file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	// Large buffer for wide maps
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("error reading map file: %w", err)
	}

	return strings.Join(lines, "\n"), nil
}
