package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/petal-labs/calla/auth"
	"github.com/petal-labs/calla/cli/keystore"
)

func (a *App) newAuthCommand() *cobra.Command {
	authCmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage access tokens",
		Long:  `Manage Webex access tokens. Tokens are stored securely using encryption.`,
	}

	authCmd.AddCommand(a.newAuthLoginCommand())
	authCmd.AddCommand(a.newAuthGuestCommand())
	authCmd.AddCommand(a.newAuthLogoutCommand())

	return authCmd
}

func (a *App) newAuthLoginCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an access token",
		Long:  `Store a Webex access token. The token will be prompted without echo for security.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(a.stdout, "Enter access token: ")

			// Read without echo if the prompt is a terminal.
			var token string
			if f, ok := a.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
				tokenBytes, err := term.ReadPassword(int(f.Fd()))
				if err != nil {
					return fmt.Errorf("failed to read token: %w", err)
				}
				token = string(tokenBytes)
				fmt.Fprintln(a.stdout) // Newline after hidden input
			} else {
				// Fallback for non-terminal (e.g., piped input)
				reader := bufio.NewReader(a.stdin)
				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("failed to read token: %w", err)
				}
				token = strings.TrimSpace(line)
			}

			if token == "" {
				return fmt.Errorf("access token cannot be empty")
			}

			ks, err := a.newKeystore()
			if err != nil {
				return fmt.Errorf("failed to open keystore: %w", err)
			}

			if err := ks.Set(name, token); err != nil {
				return fmt.Errorf("failed to store token: %w", err)
			}

			fmt.Fprintf(a.stdout, "Access token %q stored successfully.\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", defaultTokenName, "keystore entry name")
	return cmd
}

func (a *App) newAuthGuestCommand() *cobra.Command {
	var (
		issuerID    string
		secret      string
		subject     string
		displayName string
		store       bool
	)

	cmd := &cobra.Command{
		Use:   "guest",
		Short: "Obtain a guest access token",
		Long: `Obtain an access token for a guest user via a guest issuer app.

The guest is identified by --subject within the issuer; --name is the
display name other users see.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			issuer := auth.NewGuestIssuer(issuerID, secret)
			tokens, err := issuer.Login(context.Background(), subject, displayName)
			if err != nil {
				return apiExitError(err)
			}

			if store {
				ks, err := a.newKeystore()
				if err != nil {
					return fmt.Errorf("failed to open keystore: %w", err)
				}
				if err := ks.Set(defaultTokenName, tokens.AccessToken); err != nil {
					return fmt.Errorf("failed to store token: %w", err)
				}
				fmt.Fprintln(a.stdout, "Guest token stored successfully.")
				return nil
			}

			if a.jsonOutput {
				return json.NewEncoder(a.stdout).Encode(tokens)
			}
			fmt.Fprintln(a.stdout, tokens.AccessToken)
			return nil
		},
	}

	cmd.Flags().StringVar(&issuerID, "issuer", "", "guest issuer ID (required)")
	cmd.Flags().StringVar(&secret, "secret", "", "guest issuer shared secret (required)")
	cmd.Flags().StringVar(&subject, "subject", "", "unique guest identifier (required)")
	cmd.Flags().StringVar(&displayName, "display-name", "Guest", "guest display name")
	cmd.Flags().BoolVar(&store, "store", false, "store the token in the keystore instead of printing it")
	_ = cmd.MarkFlagRequired("issuer")
	_ = cmd.MarkFlagRequired("secret")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}

func (a *App) newAuthLogoutCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Delete a stored access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			ks, err := a.newKeystore()
			if err != nil {
				return fmt.Errorf("failed to open keystore: %w", err)
			}

			if err := ks.Delete(name); err != nil {
				if _, ok := err.(*keystore.ErrTokenNotFound); ok {
					return fmt.Errorf("no token stored as %q", name)
				}
				return fmt.Errorf("failed to delete token: %w", err)
			}

			fmt.Fprintf(a.stdout, "Access token %q deleted.\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", defaultTokenName, "keystore entry name")
	return cmd
}
