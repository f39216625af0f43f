package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/mood-journal/internal/adapter"
	"github.com/MKhiriev/mood-journal/models"
)

var errUsage = errors.New("usage")

type command struct {
	minArgs int
	run     func(ctx context.Context, c adapter.JournalClient, args []string) (any, error)
}

var commands = map[string]command{
	"register": {2, func(ctx context.Context, c adapter.JournalClient, args []string) (any, error) {
		return c.Register(ctx, models.Credentials{Username: args[0], Password: args[1]})
	}},
	"login": {2, func(ctx context.Context, c adapter.JournalClient, args []string) (any, error) {
		return c.Login(ctx, models.Credentials{Username: args[0], Password: args[1]})
	}},
	"add": {1, func(ctx context.Context, c adapter.JournalClient, args []string) (any, error) {
		return c.CreateMood(ctx, models.CreateMoodRequest{Emoji: args[0], Note: optionalArg(args, 1)})
	}},
	"update": {2, func(ctx context.Context, c adapter.JournalClient, args []string) (any, error) {
		id, err := parseID(args[0])
		if err != nil {
			return nil, err
		}
		return c.UpdateMood(ctx, id, models.MoodUpdate{Emoji: &args[1], Note: optionalArg(args, 2)})
	}},
	"delete": {1, func(ctx context.Context, c adapter.JournalClient, args []string) (any, error) {
		id, err := parseID(args[0])
		if err != nil {
			return nil, err
		}
		return models.MessageResponse{Message: "deleted"}, c.DeleteMood(ctx, id)
	}},
	"month": {2, func(ctx context.Context, c adapter.JournalClient, args []string) (any, error) {
		year, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("%w: year %q", errUsage, args[0])
		}
		month, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, fmt.Errorf("%w: month %q", errUsage, args[1])
		}
		return c.MonthlySummary(ctx, year, month)
	}},
	"stats": {0, func(ctx context.Context, c adapter.JournalClient, _ []string) (any, error) {
		return c.Stats(ctx)
	}},
	"dashboard": {0, func(ctx context.Context, c adapter.JournalClient, _ []string) (any, error) {
		return c.Dashboard(ctx)
	}},
	"suggest": {1, func(ctx context.Context, c adapter.JournalClient, args []string) (any, error) {
		return c.Suggest(ctx, args[0])
	}},
	"share": {0, func(ctx context.Context, c adapter.JournalClient, _ []string) (any, error) {
		return c.EnableSharing(ctx)
	}},
	"unshare": {0, func(ctx context.Context, c adapter.JournalClient, _ []string) (any, error) {
		return models.MessageResponse{Message: "sharing disabled"}, c.DisableSharing(ctx)
	}},
	"shared": {1, func(ctx context.Context, c adapter.JournalClient, args []string) (any, error) {
		return c.SharedMoods(ctx, args[0])
	}},
	"public": {0, func(ctx context.Context, c adapter.JournalClient, _ []string) (any, error) {
		return c.PublicBoard(ctx)
	}},
	"version": {0, func(ctx context.Context, c adapter.JournalClient, _ []string) (any, error) {
		return c.Version(ctx)
	}},
}

// dispatch runs the command named by args[0] and prints its result as
// indented JSON.
func dispatch(ctx context.Context, c adapter.JournalClient, args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}

	name, args := args[0], args[1:]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, name)
	}
	if len(args) < cmd.minArgs {
		return fmt.Errorf("%w: %s needs %d argument(s)", errUsage, name, cmd.minArgs)
	}

	result, err := cmd.run(ctx, c, args)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func optionalArg(args []string, i int) *string {
	if len(args) <= i {
		return nil
	}
	return &args[i]
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q", errUsage, raw)
	}
	return id, nil
}
