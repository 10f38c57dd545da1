package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/user-none/infoscreens/bridge/term"
	"github.com/user-none/infoscreens/config"
	"github.com/user-none/infoscreens/show"
)

func newPreviewCmd(a *app) *cobra.Command {
	var colors string
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the deck in the terminal",
		Long: `Preview draws the deck with coloured block characters, one cell per
2x4 pixels. An 80x30 terminal fits the default 160x120 stage.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := parseProfile(colors)
			if err != nil {
				return err
			}
			cfg, err := a.load()
			if err != nil {
				return err
			}

			host := term.NewHost(cfg.Window.Width, cfg.Window.Height)
			director, err := config.BuildDirector(host, cfg, show.WithNotifier(host))
			if err != nil {
				return err
			}
			director.Start()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return term.Run(ctx, host, director, profile)
		},
	}
	addWindowFlags(cmd)
	cmd.Flags().StringVar(&colors, "colors", "auto", "colour profile: auto, ascii, ansi, ansi256 or truecolor")
	return cmd
}

func parseProfile(name string) (termenv.Profile, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return termenv.ColorProfile(), nil
	case "ascii":
		return termenv.Ascii, nil
	case "ansi":
		return termenv.ANSI, nil
	case "ansi256":
		return termenv.ANSI256, nil
	case "truecolor":
		return termenv.TrueColor, nil
	}
	return termenv.Ascii, fmt.Errorf("unknown colour profile %q", name)
}
