package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/stackfall/debugui"
	debugui_ebiten "github.com/plus3/stackfall/debugui/ebiten"
	ebiteninput "github.com/plus3/stackfall/input/ebiten"
	"github.com/plus3/stackfall/render"
	"github.com/plus3/stackfall/session"
	"github.com/spf13/cobra"
)

const (
	releaseVersion = "0.1.0"
)

func main() {
	cfg := &Config{}
	cobra.CheckErr(newCmd(cfg, run).Execute())
}

// windowTitle names the window after the players of a multiplayer game.
func windowTitle(names []string) string {
	if len(names) < 2 {
		return "Tetris"
	}
	return "Tetris " + strings.Join(names, " vs ")
}

func run(_ context.Context, cfg *Config) error {
	logger := cfg.newLogger()

	seed := cfg.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	names := cfg.names()
	players := make([]session.Player, len(names))
	for slot, name := range names {
		players[slot] = session.Player{
			Name:  name,
			Input: ebiteninput.ForSlot(len(names), slot),
		}
	}

	s, err := session.New(players, session.Options{
		Controls: ebiteninput.Controls{},
		Out:      os.Stdout,
		Logger:   logger,
		Seed:     seed,
	})
	if err != nil {
		return err
	}

	r, err := render.New(len(names), cfg.cellSize)
	if err != nil {
		return err
	}

	title := windowTitle(names)
	g := &game{
		session:         s,
		renderer:        r,
		resultsDuration: cfg.resultsDuration,
	}
	if cfg.debug {
		g.imgui = debugui_ebiten.NewImguiBackend(title, cfg.width, cfg.height, debugui.NewOverlay(s))
	}

	ebiten.SetWindowSize(cfg.width, cfg.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	logger.WithField("seed", seed).Info("starting game")
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
