package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/evgeniy-krivenko/web-notes/internal/actions"
	"github.com/evgeniy-krivenko/web-notes/internal/config"
	"github.com/evgeniy-krivenko/web-notes/internal/notesclient"
	"github.com/evgeniy-krivenko/web-notes/internal/terminal"
	"github.com/evgeniy-krivenko/web-notes/pkg/logger/slogx"
)

var (
	verbose   bool
	serverURL string
)

type app struct {
	client  *notesclient.Client
	home    *terminal.HomeView
	actions *actions.Actions
}

var rootCmd = &cobra.Command{
	Use:   "notes",
	Short: "Manage your notes from the terminal",
	Long: `notes talks to the notes web server: it lists and adds notes,
and deletes or edits a note after asking you first.`,
	SilenceUsage: true,
}

// Execute runs the root command. Logs go to stderr so they never mix with dialogs.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Notes server URL (overrides NOTES_SERVER_URL)")
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.ParseClient()
	if err != nil {
		return nil, fmt.Errorf("parse config: %v", err)
	}

	level := cfg.App.LogLevel
	if verbose {
		level = "debug"
	}
	if err := slogx.InitGlobal(os.Stderr, level, cfg.App.Pretty); err != nil {
		return nil, fmt.Errorf("init logger: %v", err)
	}

	base := cfg.Server.URL
	if serverURL != "" {
		base = serverURL
	}

	client, err := notesclient.New(notesclient.NewOptions(
		base,
		notesclient.WithToken(cfg.Server.Token),
		notesclient.WithHttpClient(&http.Client{Timeout: cfg.Server.Timeout}),
		notesclient.WithLogger(slogx.Default()),
	))
	if err != nil {
		return nil, fmt.Errorf("init notes client: %v", err)
	}

	out := cmd.OutOrStdout()
	home := terminal.NewHomeView(client, out)

	acts, err := actions.New(actions.NewOptions(
		client,
		terminal.NewDialog(cmd.InOrStdin(), out),
		home,
		actions.WithLogger(slogx.Default()),
	))
	if err != nil {
		return nil, fmt.Errorf("init actions: %v", err)
	}

	return &app{client: client, home: home, actions: acts}, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
