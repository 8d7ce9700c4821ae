package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Bilalabbasid/CRM-sub000/internal/api/client"
	"github.com/Bilalabbasid/CRM-sub000/internal/core/service"
	"github.com/Bilalabbasid/CRM-sub000/internal/infrastructure/credstore"
	"github.com/Bilalabbasid/CRM-sub000/internal/pkg/config"
	"github.com/Bilalabbasid/CRM-sub000/pkg/logger"
)

// Shared wiring, built once in the root PersistentPreRunE before any
// subcommand runs.
var (
	appLog  zerolog.Logger
	session *service.Session
)

// loginRedirect is the CLI's Navigator: there is no page to navigate, so a
// forced trip to "login" drops the in-memory session and tells the user.
// Must stay idempotent; concurrent failing requests may each invoke it.
type loginRedirect struct {
	log     zerolog.Logger
	session *service.Session
}

func (n *loginRedirect) ToLogin() {
	if n.session != nil {
		n.session.Invalidate()
	}
	n.log.Warn().Msg("credential rejected; run `dashboard login` to sign in again")
}

var rootCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Terminal front door to the restaurant backend",
	Long: `dashboard owns a session the same way the web dashboard does,
persisting the bearer credential between runs and resolving it back
into an identity on start.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd.Context())
	},
}

func setup(ctx context.Context) error {
	cfg := config.Load()
	appLog = logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Env == "development"})

	store, err := credstore.NewFileStore(cfg.Credentials.Dir)
	if err != nil {
		return fmt.Errorf("open credential store: %w", err)
	}

	nav := &loginRedirect{log: appLog}
	api := client.New(client.Options{
		BaseURL:   client.ResolveBaseURL(cfg.API.BaseURL, cfg.API.Origin, cfg.API.BackendPort),
		Store:     store,
		Navigator: nav,
		Logger:    appLog,
	})
	session = service.NewSession(api, store, appLog)
	nav.session = session

	bootCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	session.Bootstrap(bootCtx)
	return nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
