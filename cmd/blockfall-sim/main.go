// Command blockfall-sim plays many games headlessly with a random input
// policy and prints a Markdown report.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/plus3/blockfall/tetris"
)

func main() {
	games := flag.Int("games", 100, "Number of games to play.")
	seed := flag.Uint64("seed", 1, "Base seed. Game i uses seed+i for pieces and input.")
	maxTicks := flag.Int64("max-ticks", 200000, "Abandon a game after this many ticks.")
	width := flag.Int("width", tetris.DefaultConfig().Width, "Board width in cells.")
	height := flag.Int("height", tetris.DefaultConfig().Height, "Board height in cells.")
	fall := flag.Int("fall", tetris.DefaultConfig().FallInterval, "Ticks between gravity steps.")
	flag.Parse()

	cfg := tetris.Config{Width: *width, Height: *height, FallInterval: *fall}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid board: %v", err)
	}

	log.Printf("Playing %d games on a %dx%d board...\n", *games, cfg.Width, cfg.Height)

	report := &Report{
		Games:    *games,
		Seed:     *seed,
		MaxTicks: *maxTicks,
		Config:   cfg,
	}

	startTime := time.Now()
	for i := 0; i < *games; i++ {
		result, err := playGame(cfg, *seed+uint64(i), *maxTicks)
		if err != nil {
			log.Fatalf("Game %d failed: %v", i+1, err)
		}
		report.Add(result)

		if (i+1)%10 == 0 {
			log.Printf("%d/%d games done\n", i+1, *games)
		}
	}
	report.TotalTime = time.Since(startTime)
	report.Finalize()

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
