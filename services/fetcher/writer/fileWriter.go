package writer

import (
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("writer")

const snapshotFileMode = 0644

type fileWriter struct {
	directory string
}

// NewFileWriter creates a writer that stores snapshots in the provided directory. An empty directory means the
// current working directory.
func NewFileWriter(directory string) *fileWriter {
	return &fileWriter{
		directory: directory,
	}
}

// Write creates or truncates the file and writes the contents in place. It returns the written file path.
func (w *fileWriter) Write(filename string, contents []byte) (string, error) {
	if len(w.directory) > 0 {
		err := os.MkdirAll(w.directory, os.ModePerm)
		if err != nil {
			return "", fmt.Errorf("failed to create output directory '%s': %w", w.directory, err)
		}
	}

	path := filepath.Join(w.directory, filename)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, snapshotFileMode)
	if err != nil {
		return "", fmt.Errorf("failed to open snapshot file: %w", err)
	}

	_, err = f.Write(contents)
	if err != nil {
		_ = f.Close()
		return "", fmt.Errorf("failed to write snapshot file: %w", err)
	}

	err = f.Close()
	if err != nil {
		return "", fmt.Errorf("failed to close snapshot file: %w", err)
	}

	log.Debug("snapshot written", "path", path, "bytes", len(contents))

	return path, nil
}

// IsInterfaceNil returns true if the value under the interface is nil
func (w *fileWriter) IsInterfaceNil() bool {
	return w == nil
}
