package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/sound"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file.")
	debug := flag.Bool("debug", false, "Show the ImGui debug overlay.")
	seed := flag.Uint64("seed", 0, "Piece randomizer seed. Overrides the config when non-zero.")
	mute := flag.Bool("mute", false, "Disable sound.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "blockfall: %v\n", err)
		os.Exit(1)
	}
	if *debug {
		cfg.Display.Debug = true
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}
	if *mute {
		cfg.Audio.Enabled = false
	}

	logger := cfg.Log.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	player := sound.NewPlayer(cfg.Audio.Volume)
	if cfg.Audio.Enabled {
		if err := player.Init(); err != nil {
			logger.Warn("audio unavailable, continuing without sound", "error", err)
		}
	}
	defer player.Close()

	sess, err := session.New(cfg.Game,
		session.WithHooks(player.Hooks(tetris.Hooks{})),
		session.WithLogger(logger),
	)
	if err != nil {
		logger.Error("failed to start game", "error", err)
		os.Exit(1)
	}

	game := NewGame(cfg, sess)
	ebiten.SetTPS(cfg.Display.TickRate)

	if err := ebiten.RunGame(game); err != nil {
		logger.Error("game loop stopped", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Game Over! Final Score: %d (best %d over %d games)\n",
		sess.Engine().Score(), max(sess.Best(), sess.Engine().Score()), sess.Games())
}
