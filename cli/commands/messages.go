package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petal-labs/calla/messages"
)

func (a *App) newMessagesCommand() *cobra.Command {
	messagesCmd := &cobra.Command{
		Use:   "messages",
		Short: "Send and list messages",
	}

	messagesCmd.AddCommand(a.newMessagesSendCommand())
	messagesCmd.AddCommand(a.newMessagesListCommand())

	return messagesCmd
}

func (a *App) newMessagesSendCommand() *cobra.Command {
	var (
		roomID   string
		personID string
		email    string
		text     string
		markdown string
		file     string
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a message",
		Long: `Send a message to a space or directly to a person.

Examples:
  calla messages send --room Y2lzY29z... --text "Hello"
  calla messages send --email ada@example.com --markdown "**Hello**"
  calla messages send --room Y2lzY29z... --file https://example.com/report.pdf`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}

			req := &messages.CreateMessageRequest{
				RoomID:        roomID,
				ToPersonID:    personID,
				ToPersonEmail: email,
				Text:          text,
				Markdown:      markdown,
			}
			if file != "" {
				req.Files = []string{file}
			}

			msg, err := client.Messages.Create(context.Background(), req)
			if err != nil {
				return apiExitError(err)
			}

			if a.jsonOutput {
				return json.NewEncoder(a.stdout).Encode(msg)
			}
			fmt.Fprintf(a.stdout, "Sent message %s\n", msg.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&roomID, "room", "", "destination space ID")
	cmd.Flags().StringVar(&personID, "person", "", "destination person ID (1:1)")
	cmd.Flags().StringVar(&email, "email", "", "destination person email (1:1)")
	cmd.Flags().StringVar(&text, "text", "", "plain text content")
	cmd.Flags().StringVar(&markdown, "markdown", "", "Markdown content")
	cmd.Flags().StringVar(&file, "file", "", "public URL of a file to attach")

	return cmd
}

func (a *App) newMessagesListCommand() *cobra.Command {
	var (
		roomID string
		max    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List messages in a space",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}

			list, err := client.Messages.List(&messages.ListOptions{
				RoomID: roomID,
				Max:    max,
			}).All(context.Background())
			if err != nil {
				return apiExitError(err)
			}

			if a.jsonOutput {
				return json.NewEncoder(a.stdout).Encode(list)
			}

			for _, msg := range list {
				fmt.Fprintf(a.stdout, "%s\t%s\t%s\n", msg.Created.Format("2006-01-02 15:04"), msg.PersonEmail, msg.Text)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&roomID, "room", "", "space ID (required)")
	cmd.Flags().IntVar(&max, "max", 0, "page size")
	_ = cmd.MarkFlagRequired("room")

	return cmd
}
