package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"chat-client/client"
	"chat-client/domain"
	"chat-client/internal"
	"chat-client/ui"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function manages the OS exit code based on run()'s return.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

// run loads configuration, wires the terminal surface to the protocol
// client, and drives the compose loop until interrupted.
func run() (int, error) {
	// 1. Load configuration from environment variables.
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	log := logs.GetLoggerFromString(config.LogLevel)

	loc, err := internal.Location(config.TimeZone)
	if err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	// 2. Setup context to handle termination signals (Ctrl+C).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Wire the surface and the client.
	surface := ui.NewTerminal(os.Stdout)
	presenter := ui.NewPresenter(loc)
	c := client.New(log, client.Config{
		ServerURL:        config.ServerURL,
		AuthTimeout:      config.AuthTimeout,
		HandshakeTimeout: config.HandshakeTimeout,
	}, surface, presenter)
	defer func() {
		log.Info("Closing connection...")
		_ = c.Close()
	}()

	lines := readLines(ctx)

	// 4. Authenticate. `register` first creates the account, then the
	// user logs in separately, as the server requires.
	surface.ShowLoginView()
	cred, registering, err := promptCredential(ctx, lines)
	if err != nil {
		return exitOK, nil
	}
	if registering {
		if err := c.Register(ctx, cred); err != nil {
			return exitRuntime, err
		}
	} else if err := c.Login(ctx, cred); err != nil {
		return exitRuntime, err
	}

	// 5. Compose loop. Plain text broadcasts; "@name text" whispers;
	// "/to name" pins a recipient; "/history page size" replays a page.
	var recipient *string
	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping client...")
			return exitOK, nil
		case line, ok := <-lines:
			if !ok {
				return exitOK, nil
			}
			if err := handleLine(ctx, c, surface, line, &recipient, lines); err != nil {
				log.Error("Command failed", "error", err)
				surface.ShowError(err.Error())
			}
		}
	}
}

func handleLine(ctx context.Context, c *client.Client, surface *ui.Terminal, line string, recipient **string, lines <-chan string) error {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return nil
	case line == "/quit":
		return c.Close()
	case strings.HasPrefix(line, "/login"):
		surface.ShowLoginView()
		cred, _, err := promptCredential(ctx, lines)
		if err != nil {
			return err
		}
		return c.Login(ctx, cred)
	case strings.HasPrefix(line, "/register"):
		surface.ShowRegisterView()
		cred, _, err := promptCredential(ctx, lines)
		if err != nil {
			return err
		}
		return c.Register(ctx, cred)
	case strings.HasPrefix(line, "/history"):
		page, size := 0, 50
		fields := strings.Fields(line)
		if len(fields) > 1 {
			page, _ = strconv.Atoi(fields[1])
		}
		if len(fields) > 2 {
			size, _ = strconv.Atoi(fields[2])
		}
		return c.RequestHistory(page, size)
	case strings.HasPrefix(line, "/to "):
		name := strings.TrimSpace(strings.TrimPrefix(line, "/to "))
		if name == "" {
			*recipient = nil
			return nil
		}
		*recipient = &name
		return nil
	case strings.HasPrefix(line, "@"):
		rest := strings.SplitN(strings.TrimPrefix(line, "@"), " ", 2)
		if len(rest) != 2 {
			return nil
		}
		name := rest[0]
		return c.SendMessage(rest[1], &name)
	default:
		return c.SendMessage(line, *recipient)
	}
}

// promptCredential reads a username and password line. A bare
// "register" username switches to account creation.
func promptCredential(ctx context.Context, lines <-chan string) (domain.Credential, bool, error) {
	fmt.Print("username (or 'register'): ")
	username, err := nextLine(ctx, lines)
	if err != nil {
		return domain.Credential{}, false, err
	}

	registering := false
	if username == "register" {
		registering = true
		fmt.Print("new username: ")
		if username, err = nextLine(ctx, lines); err != nil {
			return domain.Credential{}, false, err
		}
	}

	fmt.Print("password: ")
	password, err := nextLine(ctx, lines)
	if err != nil {
		return domain.Credential{}, false, err
	}
	return domain.Credential{Username: username, Password: password}, registering, nil
}

func nextLine(ctx context.Context, lines <-chan string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lines:
		if !ok {
			return "", fmt.Errorf("input closed")
		}
		return strings.TrimSpace(line), nil
	}
}

// readLines pumps stdin into a channel so the compose loop can also
// watch for cancellation.
func readLines(ctx context.Context) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			select {
			case <-ctx.Done():
				return
			case out <- scanner.Text():
			}
		}
	}()
	return out
}
