package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petal-labs/calla/webhooks"
)

func (a *App) newWebhooksCommand() *cobra.Command {
	webhooksCmd := &cobra.Command{
		Use:   "webhooks",
		Short: "Manage webhooks",
	}

	webhooksCmd.AddCommand(a.newWebhooksListCommand())
	webhooksCmd.AddCommand(a.newWebhooksCreateCommand())
	webhooksCmd.AddCommand(a.newWebhooksDeleteCommand())

	return webhooksCmd
}

func (a *App) newWebhooksListCommand() *cobra.Command {
	var max int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List webhooks",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}

			list, err := client.Webhooks.List(&webhooks.ListOptions{Max: max}).All(context.Background())
			if err != nil {
				return apiExitError(err)
			}

			if a.jsonOutput {
				return json.NewEncoder(a.stdout).Encode(list)
			}

			for _, wh := range list {
				fmt.Fprintf(a.stdout, "%s\t%s:%s\t%s\t%s\n", wh.ID, wh.Resource, wh.Event, wh.Status, wh.TargetURL)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&max, "max", 0, "page size")
	return cmd
}

func (a *App) newWebhooksCreateCommand() *cobra.Command {
	var (
		name      string
		targetURL string
		resource  string
		event     string
		secret    string
		filter    string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a webhook",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}

			wh, err := client.Webhooks.Create(context.Background(), &webhooks.CreateWebhookRequest{
				Name:      name,
				TargetURL: targetURL,
				Resource:  webhooks.Resource(resource),
				Event:     webhooks.Event(event),
				Filter:    filter,
				Secret:    secret,
			})
			if err != nil {
				return apiExitError(err)
			}

			if a.jsonOutput {
				return json.NewEncoder(a.stdout).Encode(wh)
			}
			fmt.Fprintf(a.stdout, "Created webhook %q (%s)\n", wh.Name, wh.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "webhook name (required)")
	cmd.Flags().StringVar(&targetURL, "target", "", "delivery URL (required)")
	cmd.Flags().StringVar(&resource, "resource", "messages", "resource to subscribe to")
	cmd.Flags().StringVar(&event, "event", "created", "event to fire on")
	cmd.Flags().StringVar(&secret, "secret", "", "delivery signing secret")
	cmd.Flags().StringVar(&filter, "filter", "", "resource filter query")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func (a *App) newWebhooksDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <webhook-id>",
		Short: "Delete a webhook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}

			if err := client.Webhooks.Delete(context.Background(), args[0]); err != nil {
				return apiExitError(err)
			}
			fmt.Fprintf(a.stdout, "Deleted webhook %s\n", args[0])
			return nil
		},
	}
}
