// =============================================================================
// parts-table - File Manager
// =============================================================================
//
// Shared filesystem plumbing: discovering component-type subdirectories and
// writing generated pages. Input discovery tolerates whatever enumeration
// order the platform returns; within one run it is deterministic and that
// is all the output ordering promises.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileManager writes generated pages into a fixed output directory.
type FileManager struct {
	// OutputDir is where .html pages land.
	OutputDir string
}

// NewFileManager creates a FileManager for the given output directory.
func NewFileManager(outputDir string) *FileManager {
	return &FileManager{OutputDir: outputDir}
}

// EnsureOutputDir creates the output directory if needed.
func (fm *FileManager) EnsureOutputDir() error {
	if err := os.MkdirAll(fm.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", fm.OutputDir, err)
	}
	return nil
}

// WritePage writes one HTML document under the output directory and returns
// its path. The file name must already carry its extension.
func (fm *FileManager) WritePage(fileName, content string) (string, error) {
	path := filepath.Join(fm.OutputDir, fileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// ListSubdirectories returns the names of the directories directly inside
// dir, in enumeration order.
func ListSubdirectories(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}
