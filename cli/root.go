// Package cli holds the infoscreens commands: run in a window, preview in
// the terminal and write the default config.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/user-none/infoscreens/config"
	"github.com/user-none/infoscreens/logging"
)

var logCtx = logging.PackageCtx("cli")

// flagKeys maps flags onto config keys. Flags not listed are not bound.
var flagKeys = map[string]string{
	"log-level": "log.level",
	"scale":     "window.scale",
	"width":     "window.width",
	"height":    "window.height",
	"once":      "once",
}

type app struct {
	v       *viper.Viper
	cfgFile string
}

// NewRootCmd creates the infoscreens command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{v: viper.New()})
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "infoscreens",
		Short: "Rotating information screens for sprite games",
		Long: `infoscreens shows a deck of splash, option and collection screens:
titles, rotating headlines, instructions and animated sprites, with
cursor-driven option selection.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.preRun,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "",
		"config file (default is ./infoscreens.yaml or $HOME/.config/infoscreens/infoscreens.yaml)")
	root.PersistentFlags().String("log-level", config.DefaultLogLevel, "log level: debug, info, warn or error")

	root.AddCommand(newRunCmd(a), newPreviewCmd(a), newInitConfigCmd())
	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute(ctx context.Context) {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func (a *app) preRun(cmd *cobra.Command, _ []string) error {
	if err := a.initConfig(); err != nil {
		return err
	}
	if err := a.bindFlags(cmd); err != nil {
		return err
	}
	logging.Setup(cmd.ErrOrStderr(), a.v.GetString("log.level"))
	if used := a.v.ConfigFileUsed(); used != "" {
		slog.DebugContext(logCtx, "config loaded", slog.String("file", used))
	}
	return nil
}

func (a *app) initConfig() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(filepath.Join(home, ".config", "infoscreens"))
		}
		a.v.SetConfigName("infoscreens")
		a.v.SetConfigType("yaml")
	}
	a.v.SetEnvPrefix("infoscreens")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// bindFlags lets explicitly set flags override the config file. Unset flags
// keep the file value.
func (a *app) bindFlags(cmd *cobra.Command) error {
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || err != nil {
			return
		}
		if bindErr := a.v.BindPFlag(key, f); bindErr != nil {
			err = fmt.Errorf("bind flag %s: %w", f.Name, bindErr)
		}
	})
	return err
}

func (a *app) load() (*config.Config, error) {
	cfg, err := config.Load(a.v)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(logCtx, "deck loaded",
		slog.Int("screens", len(cfg.Deck)),
		slog.Int("width", cfg.Window.Width),
		slog.Int("height", cfg.Window.Height),
		slog.Bool("once", cfg.Once))
	return cfg, nil
}

// addWindowFlags registers the flags shared by run and preview.
func addWindowFlags(cmd *cobra.Command) {
	cmd.Flags().Int("width", 0, "stage width in pixels")
	cmd.Flags().Int("height", 0, "stage height in pixels")
	cmd.Flags().Bool("once", false, "stop after the last screen instead of looping")
}
