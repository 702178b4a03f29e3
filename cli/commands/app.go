// Package commands implements the CLI command structure using Cobra.
package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/petal-labs/calla"
	"github.com/petal-labs/calla/cli/config"
	"github.com/petal-labs/calla/cli/keystore"
	"github.com/petal-labs/calla/core"
)

// Exit codes
const (
	ExitSuccess    = 0
	ExitValidation = 1
	ExitAPI        = 2
	ExitNetwork    = 3
)

// accessTokenEnv is consulted when no --token flag is given.
const accessTokenEnv = "CALLA_ACCESS_TOKEN"

// defaultTokenName is the keystore entry used when the config names none.
const defaultTokenName = "default"

// ConfigLoader loads CLI config from a path.
type ConfigLoader func(path string) (*config.Config, error)

// KeystoreFactory creates a keystore instance.
type KeystoreFactory func() (keystore.Keystore, error)

// AppOption customizes App dependencies.
type AppOption func(*App)

// App holds CLI state and runtime dependencies.
type App struct {
	root *cobra.Command

	loadConfig  ConfigLoader
	newKeystore KeystoreFactory
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer

	cfgFile    string
	token      string
	jsonOutput bool
	verbose    bool
	timeout    time.Duration
	cfg        *config.Config
}

// WithConfigLoader injects a config loader dependency.
func WithConfigLoader(loader ConfigLoader) AppOption {
	return func(a *App) {
		if loader != nil {
			a.loadConfig = loader
		}
	}
}

// WithKeystoreFactory injects a keystore factory dependency.
func WithKeystoreFactory(factory KeystoreFactory) AppOption {
	return func(a *App) {
		if factory != nil {
			a.newKeystore = factory
		}
	}
}

// WithIO injects process I/O streams.
func WithIO(stdin io.Reader, stdout, stderr io.Writer) AppOption {
	return func(a *App) {
		if stdin != nil {
			a.stdin = stdin
		}
		if stdout != nil {
			a.stdout = stdout
		}
		if stderr != nil {
			a.stderr = stderr
		}
	}
}

// NewApp creates a new CLI app with default dependencies.
func NewApp(opts ...AppOption) *App {
	a := &App{
		loadConfig:  config.LoadConfig,
		newKeystore: keystore.NewKeystore,
		stdin:       os.Stdin,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
	}

	for _, opt := range opts {
		opt(a)
	}

	a.root = a.newRootCommand()
	return a
}

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "calla",
		Short: "Calla - Webex messaging and calling CLI",
		Long: `Calla is a command-line interface for the Webex REST API.

Use Calla to manage access tokens, spaces, messages, and webhooks.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
		SilenceUsage: true,
	}

	// Global flags available to all commands.
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ~/.calla/config.yaml)")
	root.PersistentFlags().StringVar(&a.token, "token", "", "access token (default is $"+accessTokenEnv+" or the keystore)")
	root.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "emit JSON output")
	root.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "enable debug logging")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", 0, "per-request timeout (0 = default)")

	root.AddCommand(a.newAuthCommand())
	root.AddCommand(a.newWhoamiCommand())
	root.AddCommand(a.newRoomsCommand())
	root.AddCommand(a.newMessagesCommand())
	root.AddCommand(a.newWebhooksCommand())
	root.AddCommand(a.newVersionCommand())

	return root
}

// Execute runs the root command.
func (a *App) Execute() error {
	return a.root.Execute()
}

func (a *App) initConfig() error {
	path := a.cfgFile
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := a.loadConfig(path)
	if err != nil {
		return err
	}
	a.cfg = cfg

	// Apply config defaults if flags not set.
	if !a.jsonOutput && cfg.Output == "json" {
		a.jsonOutput = true
	}

	return nil
}

// resolveToken finds the access token: flag, then environment, then the
// keystore entry named by the config (or "default").
func (a *App) resolveToken() (string, error) {
	if a.token != "" {
		return a.token, nil
	}
	if env := os.Getenv(accessTokenEnv); env != "" {
		return env, nil
	}

	ks, err := a.newKeystore()
	if err != nil {
		return "", fmt.Errorf("failed to open keystore: %w", err)
	}

	name := a.cfg.TokenRef
	if name == "" {
		name = defaultTokenName
	}
	token, err := ks.Get(name)
	if err != nil {
		if _, ok := err.(*keystore.ErrTokenNotFound); ok {
			return "", fmt.Errorf("no access token: pass --token, set $%s, or run 'calla auth login'", accessTokenEnv)
		}
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return token, nil
}

// client builds an API client from the resolved token and global flags.
func (a *App) client() (*calla.Client, error) {
	token, err := a.resolveToken()
	if err != nil {
		return nil, exitWithCode(ExitValidation, err)
	}

	var opts []core.Option
	if a.cfg.BaseURL != "" {
		opts = append(opts, core.WithBaseURL(a.cfg.BaseURL))
	}
	if a.timeout > 0 {
		opts = append(opts, core.WithTimeout(a.timeout))
	}
	if a.verbose {
		log := zerolog.New(zerolog.ConsoleWriter{Out: a.stderr}).With().Timestamp().Logger()
		opts = append(opts, core.WithObserver(core.NewZerologObserver(log)))
	}

	return calla.New(token, opts...), nil
}

// exitError carries an exit code alongside the underlying error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// ExitCode returns the process exit code for this error.
func (e *exitError) ExitCode() int {
	return e.code
}

func exitWithCode(code int, err error) error {
	return &exitError{code: code, err: err}
}

// apiExitError maps SDK errors to exit codes: validation problems exit 1,
// network failures 3, everything the API rejected 2.
func apiExitError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, core.ErrValidation):
		return exitWithCode(ExitValidation, err)
	case errors.Is(err, core.ErrNetwork):
		return exitWithCode(ExitNetwork, err)
	default:
		return exitWithCode(ExitAPI, err)
	}
}

var defaultApp = NewApp()

// Execute runs the default app root command.
func Execute() error {
	return defaultApp.Execute()
}
