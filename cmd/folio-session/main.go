// Command folio-session logs in against a running auth service and mirrors
// the frontend's session behavior in the terminal: it warns a minute before
// the access token expires, counts down each second, renews on demand and
// logs out when the countdown runs out.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"folio/internal/client/authapi"
	"folio/internal/client/session"

	"golang.org/x/term"
)

func main() {
	serverURL := flag.String("server", "http://localhost:5000", "auth service base URL")
	duration := flag.String("duration", "", "requested session duration, e.g. 1h or 2d")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(*serverURL, *duration, logger); err != nil {
		logger.Error("Session client failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(serverURL, duration string, logger *slog.Logger) error {
	client, err := authapi.New(serverURL)
	if err != nil {
		return err
	}

	email, password, err := promptCredentials()
	if err != nil {
		return err
	}

	ctx := context.Background()
	token, err := client.Login(ctx, email, password, duration)
	if err != nil {
		return err
	}

	profile, err := client.GetProfile(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s (user #%d)\n", profile.Email, profile.ID)
	fmt.Println("Press Enter during the expiry warning to extend the session, Ctrl+C to quit.")

	done := make(chan struct{})

	monitor := session.NewMonitor(session.NewRealClock(), session.Callbacks{
		ShowWarning: func(remaining time.Duration) {
			fmt.Printf("\nSession expires in %s - press Enter to stay logged in\n", remaining.Round(time.Second))
		},
		UpdateCountdown: func(remaining time.Duration) {
			fmt.Printf("\rExpiring in %3.0fs ", remaining.Seconds())
		},
		Refresh: func() (string, error) {
			return client.Refresh(context.Background())
		},
		Purge: func() {
			_ = client.Logout(context.Background())
		},
		NavigateLogin: func() {
			fmt.Println("\nSession ended, please log in again.")
			close(done)
		},
	}, logger)

	monitor.Start(token)
	defer monitor.Stop()

	// Any line on stdin counts as the user's "stay logged in" click.
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			monitor.Extend()
		}
	}()

	<-done

	return nil
}

func promptCredentials() (string, string, error) {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Email: ")
	email, err := reader.ReadString('\n')
	if err != nil {
		return "", "", err
	}

	fmt.Print("Password: ")
	passwordBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", "", err
	}

	return strings.TrimSpace(email), string(passwordBytes), nil
}
