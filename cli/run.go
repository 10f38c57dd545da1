package cli

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"github.com/user-none/infoscreens/bridge/ebitenhost"
	"github.com/user-none/infoscreens/config"
	"github.com/user-none/infoscreens/show"
)

// TPS is the window update rate.
const TPS = 60

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Show the deck in a window",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := a.load()
			if err != nil {
				return err
			}
			return runWindow(cfg)
		},
	}
	addWindowFlags(cmd)
	cmd.Flags().Int("scale", 0, "window scale factor")
	return cmd
}

func runWindow(cfg *config.Config) error {
	host, err := ebitenhost.New(cfg.Window.Width, cfg.Window.Height, cfg.Window.Scale)
	if err != nil {
		return err
	}
	director, err := config.BuildDirector(host, cfg, show.WithNotifier(host))
	if err != nil {
		return err
	}
	director.Start()

	w, h := host.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(TPS)

	if err := ebiten.RunGame(NewRunner(host, director)); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
