package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/petal-labs/calla/rooms"
)

// detailFanout caps concurrent meeting detail fetches in rooms list
// --details.
const detailFanout = 8

func (a *App) newRoomsCommand() *cobra.Command {
	roomsCmd := &cobra.Command{
		Use:   "rooms",
		Short: "Manage spaces",
	}

	roomsCmd.AddCommand(a.newRoomsListCommand())
	roomsCmd.AddCommand(a.newRoomsCreateCommand())
	roomsCmd.AddCommand(a.newRoomsDeleteCommand())

	return roomsCmd
}

// roomListing is a room optionally joined with its meeting details.
type roomListing struct {
	rooms.Room
	Meeting *rooms.RoomMeeting `json:"meeting,omitempty"`
}

func (a *App) newRoomsListCommand() *cobra.Command {
	var (
		roomType string
		teamID   string
		max      int
		details  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List spaces",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			ctx := context.Background()

			list, err := client.Rooms.List(&rooms.ListOptions{
				Type:   rooms.RoomType(roomType),
				TeamID: teamID,
				Max:    max,
			}).All(ctx)
			if err != nil {
				return apiExitError(err)
			}

			listings := make([]roomListing, len(list))
			for i, room := range list {
				listings[i].Room = room
			}

			if details {
				// Meeting details are one call per room; fetch them
				// concurrently.
				group, groupCtx := errgroup.WithContext(ctx)
				group.SetLimit(detailFanout)
				var mu sync.Mutex
				for i := range listings {
					i := i
					group.Go(func() error {
						meeting, err := client.Rooms.MeetingDetails(groupCtx, listings[i].ID)
						if err != nil {
							return err
						}
						mu.Lock()
						listings[i].Meeting = meeting
						mu.Unlock()
						return nil
					})
				}
				if err := group.Wait(); err != nil {
					return apiExitError(err)
				}
			}

			if a.jsonOutput {
				return json.NewEncoder(a.stdout).Encode(listings)
			}

			for _, l := range listings {
				fmt.Fprintf(a.stdout, "%s\t%s\t%s\n", l.ID, l.Type, l.Title)
				if l.Meeting != nil && l.Meeting.SIPAddress != "" {
					fmt.Fprintf(a.stdout, "\tsip: %s\n", l.Meeting.SIPAddress)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&roomType, "type", "", "filter by type (direct, group)")
	cmd.Flags().StringVar(&teamID, "team", "", "filter by team ID")
	cmd.Flags().IntVar(&max, "max", 0, "page size")
	cmd.Flags().BoolVar(&details, "details", false, "include meeting details per space")

	return cmd
}

func (a *App) newRoomsCreateCommand() *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a space",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}

			room, err := client.Rooms.Create(context.Background(), &rooms.CreateRoomRequest{Title: title})
			if err != nil {
				return apiExitError(err)
			}

			if a.jsonOutput {
				return json.NewEncoder(a.stdout).Encode(room)
			}
			fmt.Fprintf(a.stdout, "Created space %q (%s)\n", room.Title, room.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "space title (required)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func (a *App) newRoomsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <room-id>",
		Short: "Delete a space",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}

			if err := client.Rooms.Delete(context.Background(), args[0]); err != nil {
				return apiExitError(err)
			}
			fmt.Fprintf(a.stdout, "Deleted space %s\n", args[0])
			return nil
		},
	}
}
