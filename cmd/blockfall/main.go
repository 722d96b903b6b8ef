package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/plus3/blockfall/clock"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/frontend/ebitenui"
	"github.com/plus3/blockfall/frontend/terminal"
	"github.com/plus3/blockfall/game"
)

func main() {
	frontendName := flag.String("frontend", "", "Presentation to use, window or terminal. Overrides BLOCKFALL_FRONTEND.")
	debugUI := flag.Bool("debug-ui", false, "Show the ImGui inspector over the window frontend.")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	if *frontendName != "" {
		cfg.Frontend = *frontendName
	}
	if *debugUI {
		cfg.DebugUI = true
	}

	if err := run(cfg); err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
}

func run(cfg *config.Config) error {
	logger := log.Default()
	if cfg.Frontend == config.FrontendTerminal {
		// The terminal owns stdout and stderr while the game runs.
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	var randomizer game.Randomizer = game.NewUniformRandomizer(seed)
	if cfg.Randomizer == config.RandomizerBag {
		randomizer = game.NewBagRandomizer(seed)
	}

	cooldown := game.CooldownPerFrame
	if cfg.Cooldown == config.CooldownStep {
		cooldown = game.CooldownPerStep
	}

	timer := clock.New(game.InitialSpeed, nil)
	controller := game.New(timer,
		game.WithRandomizer(randomizer),
		game.WithLogger(logger),
		game.WithDebug(cfg.Debug),
		game.WithCooldownMode(cooldown),
	)

	logger.Printf("[INFO] starting %s frontend (randomizer=%s seed=%d cooldown=%s)", cfg.Frontend, cfg.Randomizer, seed, cfg.Cooldown)

	switch cfg.Frontend {
	case config.FrontendTerminal:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return terminal.Run(ctx, controller, logger)

	case config.FrontendWindow:
		return ebitenui.Run(controller, ebitenui.Options{
			CellSize: cfg.CellSize,
			DebugUI:  cfg.DebugUI,
			Clock:    timer,
			Logger:   logger,
		})
	}
	return fmt.Errorf("%w: unknown frontend %q", config.ErrInvalidConfig, cfg.Frontend)
}
