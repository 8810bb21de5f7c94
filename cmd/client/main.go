package main

import (
	"bufio"
	"chat-relay/client"
	"chat-relay/ui"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables.
type Config struct {
	RelayURL       string        `env:"RELAY_URL,default=ws://localhost:8080/ws"`
	IdentityID     string        `env:"IDENTITY_ID,required=true"`
	LogLevel       string        `env:"LOG_LEVEL,default=ERROR"`
	ResolveTimeout time.Duration `env:"RESOLVE_TIMEOUT,default=10s"`
	HistoryRows    int           `env:"HISTORY_ROWS,default=20"`
}

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

// run connects to the relay, then feeds the client loop with relay frames
// and typed lines until the user quits or the relay goes away.
func run() (int, error) {
	// 1. Load configuration from environment variables.
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Setup context to handle termination signals (Ctrl+C).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Establish connection to the relay.
	conn, err := client.Dial(ctx, config.RelayURL, log)
	if err != nil {
		return exitRuntime, err
	}
	defer func() {
		log.Info("Closing connection...")
		_ = conn.Close()
	}()

	terminal := ui.NewTerminal(os.Stdout, config.HistoryRows, true)
	c := client.New(log, terminal, conn, client.Config{
		IdentityID:     config.IdentityID,
		ResolveTimeout: config.ResolveTimeout,
	})

	// 4. Typed lines are applied on the client loop.
	ctx, quit := context.WithCancel(ctx)
	defer quit()
	go readLines(ctx, c, terminal, quit)

	// 5. Event loop, until quit, signal or disconnect.
	err = c.Run(ctx, conn.Frames())
	if err != nil && !errors.Is(err, context.Canceled) {
		return exitRuntime, err
	}
	return exitOK, nil
}

func readLines(ctx context.Context, c *client.Client, terminal *ui.Terminal, quit context.CancelFunc) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		input, err := ui.Parse(scanner.Text())
		if err != nil {
			terminal.ShowAlert(err.Error())
			continue
		}
		if input.Quit() {
			quit()
			return
		}
		c.Do(func(c *client.Client) {
			if err := ui.Apply(c, terminal, input); err != nil {
				terminal.ShowAlert(err.Error())
			}
		})
	}
	quit()
}
