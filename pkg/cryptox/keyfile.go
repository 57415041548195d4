package cryptox

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteKeyFile writes key material readable only by the owner. An existing
// file is never overwritten.
func WriteKeyFile(path string, data []byte) error {
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("cryptox: create key directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return fmt.Errorf("cryptox: create key file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("cryptox: write key file: %w", err)
	}
	return f.Close()
}
