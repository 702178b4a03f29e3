package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *App) newWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}

			me, err := client.People.Me(context.Background())
			if err != nil {
				return apiExitError(err)
			}

			if a.jsonOutput {
				return json.NewEncoder(a.stdout).Encode(me)
			}

			fmt.Fprintf(a.stdout, "%s\n", me.DisplayName)
			if len(me.Emails) > 0 {
				fmt.Fprintf(a.stdout, "  emails: %s\n", strings.Join(me.Emails, ", "))
			}
			fmt.Fprintf(a.stdout, "  id:     %s\n", me.ID)
			if me.OrgID != "" {
				fmt.Fprintf(a.stdout, "  org:    %s\n", me.OrgID)
			}
			return nil
		},
	}
}
