package main

import (
	"context"
	"fmt"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"sahasrayogam-be/internal/config"
	"sahasrayogam-be/internal/pkg/logger"
	"sahasrayogam-be/pkg/events"
	"sahasrayogam-be/pkg/nats"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var replayFlag bool

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Follow collection events published by the service",
	Long: `Follow the formulary.* events the service publishes on NATS JetStream.

Requires NATS_URL. With --replay the retained history is printed first.`,
	RunE: runEvents,
}

func init() {
	eventsCmd.Flags().BoolVar(&replayFlag, "replay", false, "print retained events before following")
}

func runEvents(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if cfg.App.NatsURL == "" {
		return fmt.Errorf("NATS_URL is not set")
	}

	sub, err := nats.NewSubscriber(cfg.App.NatsURL, logger.NewConsoleLogger())
	if err != nil {
		return err
	}
	defer sub.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	color.Cyan("Following %s.> (ctrl-c to stop)", nats.SubjectPrefix)
	return sub.Tail(ctx, nats.SubjectPrefix+".>", replayFlag, func(_ context.Context, event events.Event) error {
		fmt.Fprintln(out, formatEvent(event))
		return nil
	})
}

func formatEvent(event events.Event) string {
	payload := event.Payload()
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, payload[k]))
	}
	return fmt.Sprintf("%s %s %s",
		event.Timestamp().Format("2006-01-02 15:04:05"),
		color.YellowString(event.EventType()),
		strings.Join(parts, " "))
}
