package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"starmutt/app"
	"starmutt/config"
	"starmutt/keys"
	"starmutt/log"
	"starmutt/ui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var ErrNotATerminal = errors.New("starmutt needs an interactive terminal")

// options holds the persistent flags.
type options struct {
	configPath string
}

// NewRootCmd builds the starmutt command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "starmutt",
		Short: "Terminal widget toolkit demo: menus, tabs and tables driven by a configurable keymap",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.starmutt/config.toml)")
	root.AddCommand(newKeysCmd(opts))
	return root
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// loadSettings reads the configuration and builds the keymap it describes.
func loadSettings(opts *options) (*config.Config, *keys.ActionMap, error) {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading config: %w", err)
	}
	km, err := cfg.KeyMap()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid keymap in %s: %w", configName(cfg), err)
	}
	return cfg, km, nil
}

func configName(cfg *config.Config) string {
	if cfg.File == "" {
		return "defaults"
	}
	return cfg.File
}

func runTUI(ctx context.Context, opts *options) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotATerminal
	}

	cfg, km, err := loadSettings(opts)
	if err != nil {
		return err
	}

	if err := log.Initialize(cfg.LogConfig()); err != nil {
		return fmt.Errorf("error initializing logs: %w", err)
	}
	defer log.Close()

	ui.SetKeyMap(km)
	ui.SetTheme(cfg.Theme())
	log.InfoLog.Printf("starting with config from %s", configName(cfg))

	if err := app.Run(ctx, cfg); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
