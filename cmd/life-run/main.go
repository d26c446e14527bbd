// Command life-run advances a randomly seeded Game of Life without a window
// and logs the population as it goes.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"conway/internal/app"
	"conway/internal/life"
)

func main() {
	opts := app.NewOptions()
	opts.Bind(flag.CommandLine)
	gens := flag.Int("gens", 100, "generations to advance")
	every := flag.Int("every", 10, "log the population every N generations (0 disables)")
	dump := flag.Bool("print", false, "print the final grid to stdout")
	flag.Parse()

	if err := opts.Validate(); err != nil {
		app.NewLogger("error", "text", os.Stderr).Error("Invalid options.", "error", err)
		os.Exit(2)
	}
	logger := opts.Logger(os.Stderr)

	cfg, err := opts.Resolve()
	if err != nil {
		logger.Error("Failed to load configuration.", "error", err)
		os.Exit(2)
	}

	sim := life.New(cfg.Width, cfg.Height)
	sim.Randomize(cfg.Seed, cfg.Soup)
	logger.Info("Seeded grid.", "width", cfg.Width, "height", cfg.Height, "seed", cfg.Seed, "soup", string(cfg.Soup), "population", sim.Population())

	sim.SetRunning(true)
	for i := 1; i <= *gens; i++ {
		sim.Step()
		if *every > 0 && i%*every == 0 {
			logger.Info("Generation advanced.", "generation", sim.Generation(), "population", sim.Population())
		}
	}
	sim.SetRunning(false)
	logger.Info("Run finished.", "generation", sim.Generation(), "population", sim.Population())

	if *dump {
		if err := writeGrid(os.Stdout, sim); err != nil {
			logger.Error("Failed to print grid.", "error", err)
			os.Exit(1)
		}
	}
}

// writeGrid renders live cells as '#' and dead cells as '.', one row per line.
func writeGrid(w io.Writer, sim *life.Life) error {
	bw := bufio.NewWriter(w)
	width := sim.Size().W
	sim.Each(func(x, y int, alive bool) {
		if alive {
			bw.WriteByte('#')
		} else {
			bw.WriteByte('.')
		}
		if x == width-1 {
			bw.WriteByte('\n')
		}
	})
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush grid: %w", err)
	}
	return nil
}
