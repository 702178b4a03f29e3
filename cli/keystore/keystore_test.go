package keystore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileKeystoreSetAndGet(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "tokens.enc")

	ks, err := NewFileKeystore(path)
	if err != nil {
		t.Fatalf("NewFileKeystore() error = %v", err)
	}

	// Set a token
	if err := ks.Set("default", "ZmFrZS10b2tlbi0xMjM0NQ"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	// Get it back
	token, err := ks.Get("default")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if token != "ZmFrZS10b2tlbi0xMjM0NQ" {
		t.Errorf("Get() = %q", token)
	}
}

func TestFileKeystoreGetNotFound(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "tokens.enc")

	ks, err := NewFileKeystore(path)
	if err != nil {
		t.Fatalf("NewFileKeystore() error = %v", err)
	}

	_, err = ks.Get("nonexistent")
	if err == nil {
		t.Fatal("Get() should return error for nonexistent token")
	}

	if _, ok := err.(*ErrTokenNotFound); !ok {
		t.Errorf("Get() error type = %T, want *ErrTokenNotFound", err)
	}
}

func TestFileKeystoreDelete(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "tokens.enc")

	ks, err := NewFileKeystore(path)
	if err != nil {
		t.Fatalf("NewFileKeystore() error = %v", err)
	}

	// Set a token
	if err := ks.Set("work", "some-token"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	// Delete it
	if err := ks.Delete("work"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	// Verify it's gone
	_, err = ks.Get("work")
	if _, ok := err.(*ErrTokenNotFound); !ok {
		t.Error("Get() should return ErrTokenNotFound after Delete()")
	}
}

func TestFileKeystoreDeleteNotFound(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "tokens.enc")

	ks, err := NewFileKeystore(path)
	if err != nil {
		t.Fatalf("NewFileKeystore() error = %v", err)
	}

	err = ks.Delete("nonexistent")
	if _, ok := err.(*ErrTokenNotFound); !ok {
		t.Errorf("Delete() error type = %T, want *ErrTokenNotFound", err)
	}
}

func TestFileKeystoreList(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "tokens.enc")

	ks, err := NewFileKeystore(path)
	if err != nil {
		t.Fatalf("NewFileKeystore() error = %v", err)
	}

	names, err := ks.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(names) != 0 {
		t.Errorf("List() = %v, want empty", names)
	}

	ks.Set("work", "t1")
	ks.Set("default", "t2")

	names, err = ks.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	// Names come back sorted
	if len(names) != 2 || names[0] != "default" || names[1] != "work" {
		t.Errorf("List() = %v, want [default work]", names)
	}
}

func TestFileKeystoreOverwrite(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "tokens.enc")

	ks, err := NewFileKeystore(path)
	if err != nil {
		t.Fatalf("NewFileKeystore() error = %v", err)
	}

	ks.Set("default", "old-token")
	ks.Set("default", "new-token")

	token, err := ks.Get("default")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if token != "new-token" {
		t.Errorf("Get() = %q, want new-token", token)
	}
}

func TestFileKeystoreEncryptedOnDisk(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "tokens.enc")

	ks, err := NewFileKeystore(path)
	if err != nil {
		t.Fatalf("NewFileKeystore() error = %v", err)
	}

	secret := "very-secret-token-value"
	if err := ks.Set("default", secret); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if strings.Contains(string(raw), secret) {
		t.Error("token stored in plaintext")
	}
	if !strings.HasPrefix(string(raw), magicHeader) {
		t.Errorf("file should start with %q", magicHeader)
	}

	// A fresh keystore over the same file reads it back.
	ks2, err := NewFileKeystore(path)
	if err != nil {
		t.Fatalf("NewFileKeystore() error = %v", err)
	}
	token, err := ks2.Get("default")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if token != secret {
		t.Errorf("Get() = %q, want %q", token, secret)
	}
}

func TestFileKeystoreWrongKey(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "tokens.enc")

	ks := NewFileKeystoreWithKey(path, []byte("master-key-one"))
	if err := ks.Set("default", "token"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	other := NewFileKeystoreWithKey(path, []byte("master-key-two"))
	if _, err := other.Get("default"); err == nil {
		t.Error("Get() with the wrong master key should fail")
	}
}

func TestFileKeystoreRejectsForeignFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "tokens.enc")
	if err := os.WriteFile(path, []byte("not a keystore, just bytes"), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	ks, err := NewFileKeystore(path)
	if err != nil {
		t.Fatalf("NewFileKeystore() error = %v", err)
	}
	if _, err := ks.Get("default"); err == nil {
		t.Error("Get() should fail on a file without the magic header")
	}
}

func TestDefaultKeystorePath(t *testing.T) {
	path := DefaultKeystorePath()

	if filepath.Base(path) != "tokens.enc" {
		t.Errorf("DefaultKeystorePath() = %q, should end with tokens.enc", path)
	}
	if filepath.Base(filepath.Dir(path)) != ".calla" {
		t.Errorf("DefaultKeystorePath() = %q, should be in .calla directory", path)
	}
}
