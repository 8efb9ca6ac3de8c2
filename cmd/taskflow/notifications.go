package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	internalerrors "github.com/jrsteele09/taskflow-client/internal/errors"
	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/realtime"
	"github.com/jrsteele09/taskflow-client/store"
)

const reconnectDelay = 5 * time.Second

func notificationsCmd(a *app) *cobra.Command {
	var unread, follow bool
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"inbox"},
		Short:   "Show recent notifications",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := a.requireSignedIn(ctx); err != nil {
				return err
			}
			notifications := a.client.Stores.Notifications
			notifications.Fetch(ctx, unread)
			if msg := notifications.Err(); msg != "" {
				return errors.New(msg)
			}

			out := cmd.OutOrStdout()
			var rows [][]string
			for _, n := range notifications.Items() {
				rows = append(rows, notificationRow(n))
			}
			if len(rows) == 0 {
				fprintln(out, mutedStyle.Render("Nothing new"))
			} else {
				renderTable(out, []string{"ID", "", "TITLE", "MESSAGE", "WHEN"}, rows)
			}
			fprintln(out, badgeStyle.Render(fmt.Sprintf("%d unread", notifications.UnreadCount())))

			if !follow {
				return nil
			}
			return a.follow(ctx, out)
		},
	}
	cmd.Flags().BoolVarP(&unread, "unread", "u", false, "only unread notifications")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "keep printing notifications as they arrive")
	return cmd
}

func notificationRow(n models.Notification) []string {
	marker := okStyle.Render("●")
	if n.IsRead() {
		marker = " "
	}
	return []string{
		strconv.FormatInt(n.ID, 10),
		marker,
		n.Data.Title,
		n.Data.Message,
		n.CreatedAt.Local().Format(time.DateTime),
	}
}

// printingSink records each pushed notification in the store and echoes it.
type printingSink struct {
	store *store.NotificationStore
	out   io.Writer
}

func (s printingSink) Add(n models.Notification) {
	s.store.Add(n)
	fmt.Fprintf(s.out, "%s %s %s\n", okStyle.Render("●"), headerStyle.Render(n.Data.Title), n.Data.Message)
}

// follow streams notifications until interrupted, reconnecting after dropped connections.
func (a *app) follow(ctx context.Context, out io.Writer) error {
	url := a.cfg.GetStreamURL()
	if url == "" {
		return errors.New("set TASKFLOW_STREAM_URL to follow notifications")
	}
	listener, err := realtime.New(url, a.client.Sessions, printingSink{store: a.client.Stores.Notifications, out: out},
		realtime.WithLogger(a.log))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	fprintln(out, mutedStyle.Render("Waiting for notifications, Ctrl+C to stop"))
	for {
		err := listener.Run(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if internalerrors.Is(err, internalerrors.ErrUnauthorized) || internalerrors.Is(err, internalerrors.ErrNoCredential) {
			return errNotSignedIn
		}
		a.log.Warn().Err(err).Dur("retry_in", reconnectDelay).Msg("notification stream dropped")
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(reconnectDelay):
		}
	}
}
