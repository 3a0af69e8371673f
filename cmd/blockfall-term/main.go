// Command blockfall-term plays the game in a terminal using tcell.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/sound"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file.")
	seed := flag.Uint64("seed", 0, "Piece randomizer seed. Overrides the config when non-zero.")
	mute := flag.Bool("mute", false, "Disable sound.")
	logPath := flag.String("log", "", "Write logs to this file. The terminal is owned by the game, so logs are dropped otherwise.")
	flag.Parse()

	if err := run(*configPath, *seed, *mute, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "blockfall-term: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, seed uint64, mute bool, logPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if seed != 0 {
		cfg.Game.Seed = seed
	}
	if mute {
		cfg.Audio.Enabled = false
	}

	var logOut io.Writer = io.Discard
	if logPath != "" {
		f, err := os.Create(logPath)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := cfg.Log.NewLogger(logOut)
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
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	pause := &loop.Pause{}
	scheduler := loop.NewScheduler()
	scheduler.Register(&InputSystem{Events: events, Session: sess, Pause: pause, Quit: cancel})
	scheduler.Register(&EngineSystem{Session: sess, Pause: pause})
	scheduler.Register(&RenderSystem{Screen: screen, Session: sess, Pause: pause})

	scheduler.Run(ctx, time.Second/time.Duration(cfg.Display.TickRate))
	screen.Fini()

	fmt.Printf("Game Over! Final Score: %d (best %d over %d games)\n",
		sess.Engine().Score(), max(sess.Best(), sess.Engine().Score()), sess.Games())
	return nil
}
