//go:build integration

package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/petal-labs/calla"
	"github.com/petal-labs/calla/core"
)

// Settings is the integration test configuration, read from CALLA_*
// environment variables. A .env file in the project root is honored.
type Settings struct {
	// AccessToken is the Webex access token tests run under. Most
	// messaging tests work with a personal token; telephony tests need
	// an administrator token.
	AccessToken string `koanf:"access_token"`
	// BaseURL overrides the API base URL.
	BaseURL string `koanf:"base_url"`
}

var (
	settingsOnce sync.Once
	settings     Settings
)

// loadSettings reads the test configuration once per process.
func loadSettings() Settings {
	settingsOnce.Do(func() {
		if root := findProjectRoot(); root != "" {
			// Missing .env is fine; the environment may carry everything.
			_ = godotenv.Load(filepath.Join(root, ".env"))
		}

		k := koanf.New(".")
		_ = k.Load(env.Provider("CALLA_", ".", func(s string) string {
			return strings.ToLower(strings.TrimPrefix(s, "CALLA_"))
		}), nil)
		_ = k.Unmarshal("", &settings)
	})
	return settings
}

// newClient builds a client for the configured organization, skipping the
// test when no access token is configured.
func newClient(t *testing.T) *calla.Client {
	t.Helper()

	s := loadSettings()
	if s.AccessToken == "" {
		t.Skip("CALLA_ACCESS_TOKEN not set")
	}

	var opts []core.Option
	if s.BaseURL != "" {
		opts = append(opts, core.WithBaseURL(s.BaseURL))
	}
	return calla.New(s.AccessToken, opts...)
}

// cliResult captures one CLI invocation.
type cliResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// runCLI executes the pre-built CLI binary with the configured token in
// the environment.
func runCLI(t *testing.T, args ...string) cliResult {
	t.Helper()
	s := loadSettings()
	return runCLIWithEnv(t, []string{"CALLA_ACCESS_TOKEN=" + s.AccessToken}, args...)
}

// runCLIWithEnv executes the CLI binary with extra environment entries
// appended after the inherited environment.
func runCLIWithEnv(t *testing.T, extraEnv []string, args ...string) cliResult {
	t.Helper()

	cmd := exec.Command(cliBinary, args...)
	cmd.Env = append(os.Environ(), extraEnv...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := cliResult{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
		} else {
			t.Fatalf("failed to run CLI: %v", err)
		}
	}
	return result
}
