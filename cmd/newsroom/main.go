// Copyright 2026 The Newsroom Authors
// SPDX-License-Identifier: Apache-2.0

// newsroom is a terminal client for a news service. Run with no
// arguments it opens the interactive viewer: a two-pane TUI with the
// article list on the left and the rendered article plus its comment
// thread on the right.
//
// Subcommands manage the local session:
//
//	newsroom login      authenticate and save the session
//	newsroom logout     discard the saved session
//	newsroom register   create an account (does not log in)
//	newsroom whoami     show the saved identity
//
// The viewer works anonymously too: browsing and reading never require
// a session, only publishing, commenting, and editing do.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/newsroom-foundation/newsroom/lib/config"
	"github.com/newsroom-foundation/newsroom/lib/newsapi"
	"github.com/newsroom-foundation/newsroom/lib/newsui"
	"github.com/newsroom-foundation/newsroom/lib/session"
	"github.com/newsroom-foundation/newsroom/lib/version"
)

func main() {
	if err := run(); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var apiURL string
	var configPath string
	var logOutput string

	flagSet := pflag.NewFlagSet("newsroom", pflag.ContinueOnError)
	flagSet.StringVar(&apiURL, "api", "", "news service base URL (overrides config)")
	flagSet.StringVar(&configPath, "config", "", "config file path (default: $XDG_CONFIG_HOME/newsroom/config.yaml)")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file (in addition to TUI display)")
	flagSet.BoolP("help", "h", false, "show help")

	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("newsroom")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	configuration, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if apiURL != "" {
		configuration.Service.URL = apiURL
	}
	if logOutput != "" {
		configuration.Log.Output = logOutput
	}

	args := flagSet.Args()
	verb := ""
	if len(args) > 0 {
		verb = args[0]
	}

	switch verb {
	case "":
		return runViewer(configuration)
	case "login":
		return runLogin(configuration, args[1:])
	case "logout":
		return runLogout(configuration)
	case "register":
		return runRegister(configuration, args[1:])
	case "whoami":
		return runWhoami(configuration)
	default:
		return fmt.Errorf("unknown command %q (expected login, logout, register, or whoami)", verb)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

// newClient builds the service client with the configured timeout and
// logger.
func newClient(configuration *config.Config, logger *slog.Logger) (*newsapi.Client, error) {
	return newsapi.NewClient(newsapi.ClientConfig{
		BaseURL: configuration.Service.URL,
		Logger:  logger,
	})
}

// runViewer opens the TUI. Background log records route through a
// status-bar handler so stderr never corrupts the alt-screen display;
// --log-output additionally captures everything to a JSONL file.
func runViewer(configuration *config.Config) error {
	statusHandler := newsui.NewStatusLogHandler(logLevel(configuration.Log.Level))

	var logger *slog.Logger
	if configuration.Log.Output != "" {
		fileHandler, closeFile, err := openFileLogHandler(configuration.Log.Output)
		if err != nil {
			return fmt.Errorf("cannot open log file %s: %w", configuration.Log.Output, err)
		}
		defer closeFile()
		logger = slog.New(fanoutHandler{statusHandler, fileHandler})
	} else {
		logger = slog.New(statusHandler)
	}

	client, err := newClient(configuration, logger)
	if err != nil {
		return err
	}

	store := session.NewStore(client, session.FilePath())
	if err := store.Restore(); err != nil {
		logger.Warn("restoring session", "error", err)
	}

	theme, err := newsui.LoadTheme(configuration.UI.ThemeFile)
	if err != nil {
		return fmt.Errorf("loading theme %s: %w", configuration.UI.ThemeFile, err)
	}

	model := newsui.NewModel(newsui.Config{
		Source:         client,
		Principal:      store.Current(),
		Theme:          theme,
		Keys:           newsui.DefaultKeyMap,
		MaxOpenEdits:   configuration.UI.MaxOpenEdits,
		StatusFade:     configuration.StatusFade(),
		RequestTimeout: configuration.RequestTimeout(),
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	statusHandler.SetProgram(program)

	_, err = program.Run()
	return err
}

func runLogin(configuration *config.Config, args []string) error {
	var username string
	var passwordFile string
	flagSet := pflag.NewFlagSet("newsroom login", pflag.ContinueOnError)
	flagSet.StringVarP(&username, "username", "u", "", "account email or username")
	flagSet.StringVar(&passwordFile, "password-file", "", "read the password from this file instead of prompting")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if positional := flagSet.Args(); username == "" && len(positional) > 0 {
		username = positional[0]
	}

	reader := bufio.NewReader(os.Stdin)
	if username == "" {
		fmt.Fprint(os.Stderr, "Username: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading username: %w", err)
		}
		username = strings.TrimSpace(line)
	}
	if username == "" {
		return fmt.Errorf("a username is required")
	}

	var password string
	if passwordFile != "" {
		raw, err := os.ReadFile(passwordFile)
		if err != nil {
			return fmt.Errorf("reading password file: %w", err)
		}
		password = strings.TrimRight(string(raw), "\r\n")
	} else {
		var err error
		password, err = readPassword("Password: ")
		if err != nil {
			return err
		}
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	client, err := newClient(configuration, logger)
	if err != nil {
		return err
	}
	store := session.NewStore(client, session.FilePath())

	principal, err := store.Login(context.Background(), username, password)
	if err != nil {
		return err
	}

	role := "reader"
	switch {
	case principal.Admin:
		role = "admin"
	case principal.Verified:
		role = "verified publisher"
	}
	fmt.Printf("logged in as user #%d (%s)\n", principal.ID, role)
	return nil
}

func runLogout(configuration *config.Config) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	client, err := newClient(configuration, logger)
	if err != nil {
		return err
	}

	// The store owns the session file; Logout is idempotent, so
	// logging out with no saved session is not an error.
	store := session.NewStore(client, session.FilePath())
	store.Logout()
	fmt.Println("logged out")
	return nil
}

func runRegister(configuration *config.Config, args []string) error {
	var name, email string
	flagSet := pflag.NewFlagSet("newsroom register", pflag.ContinueOnError)
	flagSet.StringVar(&name, "name", "", "display name")
	flagSet.StringVar(&email, "email", "", "account email")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)
	var err error
	if name == "" {
		if name, err = prompt(reader, "Name: "); err != nil {
			return err
		}
	}
	if email == "" {
		if email, err = prompt(reader, "Email: "); err != nil {
			return err
		}
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}
	confirmed, err := readPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirmed {
		return fmt.Errorf("passwords do not match")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	client, err := newClient(configuration, logger)
	if err != nil {
		return err
	}

	if err := client.Register(context.Background(), newsapi.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}); err != nil {
		return err
	}

	fmt.Println("account created; run 'newsroom login' to sign in")
	return nil
}

func runWhoami(configuration *config.Config) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	client, err := newClient(configuration, logger)
	if err != nil {
		return err
	}
	store := session.NewStore(client, session.FilePath())
	if err := store.Restore(); err != nil {
		return err
	}

	principal := store.Current()
	if principal == nil {
		fmt.Println("not logged in")
		return nil
	}
	fmt.Printf("user #%d", principal.ID)
	if principal.Admin {
		fmt.Print("  admin")
	}
	if principal.Verified {
		fmt.Print("  verified")
	}
	fmt.Println()
	return nil
}

func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Fprint(os.Stderr, label)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// readPassword reads a password with echo disabled when stdin is a
// terminal, falling back to a plain line read otherwise (pipes, tests).
func readPassword(label string) (string, error) {
	fmt.Fprint(os.Stderr, label)
	descriptor := int(os.Stdin.Fd())
	if term.IsTerminal(descriptor) {
		raw, err := term.ReadPassword(descriptor)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(raw), nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// openFileLogHandler creates a JSON handler writing to path. The file
// is created or truncated.
func openFileLogHandler(path string) (slog.Handler, func(), error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return handler, func() { file.Close() }, nil
}

// fanoutHandler sends each record to every underlying handler. A
// record is enabled if any sub-handler accepts its level.
type fanoutHandler []slog.Handler

func (handlers fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (handlers fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (handlers fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithAttrs(attrs)
	}
	return derived
}

func (handlers fanoutHandler) WithGroup(name string) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithGroup(name)
	}
	return derived
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Newsroom — terminal client for a news service.

Run with no arguments to open the interactive viewer. Reading is
anonymous; log in to comment, edit, or publish.

Usage:
  newsroom [flags]
  newsroom login [--username NAME]
  newsroom logout
  newsroom register [--name NAME --email ADDR]
  newsroom whoami

Examples:
  # Browse the default service
  newsroom

  # Point at a different deployment
  newsroom --api https://news.example.org

  # Authenticate, then reopen the viewer
  newsroom login --username ada@example.org
  newsroom

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
