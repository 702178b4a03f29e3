// Package keystore provides secure storage for access tokens.
package keystore

import (
	"os"
	"path/filepath"
	"runtime"
)

// Keystore defines the interface for secure token storage.
type Keystore interface {
	// Set stores a named token.
	Set(name, token string) error
	// Get retrieves a token by name. Returns error if not found.
	Get(name string) (string, error)
	// Delete removes a token by name.
	Delete(name string) error
	// List returns all stored token names.
	List() ([]string, error)
}

// ErrTokenNotFound is returned when a requested token does not exist.
type ErrTokenNotFound struct {
	Name string
}

func (e *ErrTokenNotFound) Error() string {
	return "token not found: " + e.Name
}

// DefaultKeystorePath returns the default keystore file path.
// - macOS/Linux: ~/.calla/tokens.enc
// - Windows: %USERPROFILE%\.calla\tokens.enc
func DefaultKeystorePath() string {
	var homeDir string

	if runtime.GOOS == "windows" {
		homeDir = os.Getenv("USERPROFILE")
	} else {
		homeDir = os.Getenv("HOME")
	}

	if homeDir == "" {
		return "tokens.enc"
	}

	return filepath.Join(homeDir, ".calla", "tokens.enc")
}

// NewKeystore creates a new keystore using file-based encrypted storage.
func NewKeystore() (Keystore, error) {
	return NewFileKeystore(DefaultKeystorePath())
}
