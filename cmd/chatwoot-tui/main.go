package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/glabrego/chatwoot-tui/internal/app"
	"github.com/glabrego/chatwoot-tui/internal/chatwoot"
	"github.com/glabrego/chatwoot-tui/internal/config"
	"github.com/glabrego/chatwoot-tui/internal/tui"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

type options struct {
	help       bool
	version    bool
	configPath string
	logOutput  string
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		log.Fatalf("flag error: %v", err)
	}
	if opts.help {
		printHelp(os.Stdout)
		return
	}
	if opts.version {
		printVersion(os.Stdout)
		return
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	settingsPath, explicit := opts.configPath, opts.configPath != ""
	if !explicit {
		settingsPath = config.DefaultSettingsPath()
	}
	settings, err := config.LoadSettings(settingsPath, explicit)
	if err != nil {
		log.Fatalf("settings error: %v", err)
	}
	cfg = cfg.WithSettings(settings)
	if opts.logOutput != "" {
		cfg.LogPath = opts.logOutput
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		log.Fatalf("chatwoot-tui needs an interactive terminal on stdout")
	}

	logger, closeLog, err := newLogger(cfg.LogPath)
	if err != nil {
		log.Fatalf("cannot open log file %s: %v", cfg.LogPath, err)
	}
	defer closeLog()
	logger.Info("starting", "version", version, "base_url", cfg.BaseURL, "account_id", cfg.AccountID)

	client := chatwoot.NewClient(cfg.BaseURL, cfg.APIKey, cfg.AccountID, nil)
	service := app.NewService(client, logger, cfg.RequestTimeout)

	model := tui.NewModel(service, tui.Options{
		BaseURL:   cfg.BaseURL,
		AccountID: cfg.AccountID,
		Logger:    logger,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		closeLog()
		log.Fatalf("tui error: %v", err)
	}
}

func parseFlags(args []string, errOut io.Writer) (options, error) {
	var opts options
	flagSet := pflag.NewFlagSet("chatwoot-tui", pflag.ContinueOnError)
	flagSet.SetOutput(errOut)
	flagSet.Usage = func() {}
	flagSet.BoolVarP(&opts.help, "help", "h", false, "show this help")
	flagSet.BoolVarP(&opts.version, "version", "v", false, "show version")
	flagSet.StringVar(&opts.configPath, "config", "", "settings file (default ~/.chatwoot/tui.yaml)")
	flagSet.StringVar(&opts.logOutput, "log-output", "", "write JSON log records to this file")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			opts.help = true
			return opts, nil
		}
		return options{}, err
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return options{}, fmt.Errorf("unexpected argument: %s", rest[0])
	}
	return opts, nil
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "chatwoot-tui %s\n", version)
}

func printHelp(w io.Writer) {
	fmt.Fprint(w, `chatwoot-tui - Terminal UI for Chatwoot

Usage: chatwoot-tui [options]

Options:
  -h, --help           Show this help
  -v, --version        Show version
      --config PATH    Settings file (default ~/.chatwoot/tui.yaml)
      --log-output PATH
                       Write JSON log records to PATH

Environment Variables:
  CHATWOOT_BASE_URL   Your Chatwoot instance URL
  CHATWOOT_API_KEY    Your API access token
  CHATWOOT_ACCOUNT_ID Your account ID

Keys:
  j/k, up/down   Move through conversations
  r              Refresh conversations
  tab/shift+tab  Cycle column focus
  q, ctrl+c      Quit
`)
}

// newLogger writes JSON records to path, or discards them when path is
// empty: the TUI owns the terminal, so nothing may go to stderr.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), func() { _ = file.Close() }, nil
}
