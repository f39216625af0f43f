// Command client is a small command line front end of the journal API.
//
//	client [-a address] [-token token] <command> [args]
//
// Commands: register <user> <password>, login <user> <password>,
// add <emoji> [note], update <id> <emoji> [note], delete <id>,
// month <year> <month>, stats, dashboard, suggest <note>, share, unshare,
// shared <token>, public, version.
//
// register and login print the session token; pass it back with -token or
// the MOOD_TOKEN environment variable.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/MKhiriev/mood-journal/internal/adapter"
	"github.com/MKhiriev/mood-journal/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	address := fs.String("a", "localhost:8080", "server address")
	token := fs.String("token", os.Getenv("MOOD_TOKEN"), "session token")
	timeout := fs.Duration("timeout", 10*time.Second, "request timeout")
	logLevel := fs.String("log-level", "warn", "log level")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	log := logger.NewLogger("mood-journal-client", logger.WithLevel(*logLevel))

	client, err := adapter.NewHTTPJournalClient(*address, *timeout, log)
	if err != nil {
		return err
	}
	client.SetToken(*token)

	return dispatch(ctx, client, fs.Args(), os.Stdout)
}
