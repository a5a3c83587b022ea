package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophchat/internal/chat"
	"github.com/dmitrijs2005/gophchat/internal/client/cli"
	"github.com/dmitrijs2005/gophchat/internal/client/config"
	"github.com/dmitrijs2005/gophchat/internal/client/tui"
	"github.com/dmitrijs2005/gophchat/internal/filex"
	"github.com/dmitrijs2005/gophchat/internal/logging"
	"github.com/dmitrijs2005/gophchat/internal/storage"
	"github.com/dmitrijs2005/gophchat/internal/users"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gophchat",
		Short: "Register a user and chat with simulated delivery receipts",
		Long: `gophchat registers a user (name, surname, ID number, phone number,
username and password) and opens a chat window for them. Every message is
marked Sent, then Delivered and finally Read after short delays.

Flags are read by the configuration loader, not by this command:
  -c, -config    JSON or YAML config file
  -ui            auto, tui or plain
  -delivered     delay before "Delivered", in milliseconds
  -read          delay between "Delivered" and "Read", in milliseconds
  -time-format   Go time layout for message timestamps
  -registry      memory or sqlite
  -log-level     debug, info, warn or error
  -log-backend   slog or zap
  -log-file      append logs to this file
  -theme         light or dark`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(args)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	root.AddCommand(newVersionCmd(), newRulesCmd())
	return root
}

// loadConfig turns configuration panics into errors.
func loadConfig(args []string) (cfg *config.Config, err error) {
	defer func() {
		if r := recover(); r != nil {
			cfg, err = nil, fmt.Errorf("configuration: %v", r)
		}
	}()

	cfg = config.LoadConfig(args)
	if vErr := cfg.Validate(); vErr != nil {
		return nil, fmt.Errorf("configuration: %w", vErr)
	}
	return cfg, nil
}

func resolveUI(ui string, stdin io.Reader) string {
	if ui != config.UIAuto {
		return ui
	}
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return config.UITUI
	}
	return config.UIPlain
}

// openLog picks the log destination. Without a log file the full-screen UI
// discards logs and the plain UI writes them to stderr.
func openLog(path, ui string, stderr io.Writer) (io.Writer, func() error, error) {
	if path != "" {
		f, err := filex.OpenAppend(path)
		if err != nil {
			return nil, nil, err
		}
		return f, f.Close, nil
	}
	if ui == config.UITUI {
		return io.Discard, func() error { return nil }, nil
	}
	return stderr, func() error { return nil }, nil
}

func run(ctx context.Context, cfg *config.Config, stdin io.Reader, stdout, stderr io.Writer) error {
	ui := resolveUI(cfg.UI, stdin)

	logOut, closeLog, err := openLog(cfg.LogFile, ui, stderr)
	if err != nil {
		return fmt.Errorf("error opening log file: %w", err)
	}
	defer closeLog()

	logger, syncLog, err := logging.New(cfg.LogBackend, cfg.LogLevel, logOut)
	if err != nil {
		return err
	}
	defer syncLog()

	mgr, err := storage.NewManager(ctx, cfg.Registry, logger)
	if err != nil {
		return fmt.Errorf("error initializing user directory: %w", err)
	}
	defer mgr.Close()

	svc := users.NewService(mgr.Users(), logger)

	delays := chat.Delays{Delivered: cfg.DeliveredDelay, Read: cfg.ReadDelay}
	newSession := func(userName string) *chat.Session {
		return chat.NewSession(userName,
			chat.WithDelays(delays),
			chat.WithTimeFormat(cfg.TimeFormat),
			chat.WithLogger(logger),
		)
	}

	logger.Info(ctx, "starting", "ui", ui, "registry", cfg.Registry)

	if ui == config.UITUI {
		return tui.Run(ctx, tui.Options{
			Registrar:  svc,
			NewSession: newSession,
			Theme:      tui.ThemeByName(cfg.Theme),
			Logger:     logger,
		})
	}
	return cli.NewApp(svc, newSession, logger, stdin, stdout).Run(ctx)
}
