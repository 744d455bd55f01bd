package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/internal/log"
	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/round"
)

const maxViolations = 20

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	configPath := flag.String("config", "", "Path to a YAML config file. Defaults are used when empty.")
	seed := flag.Uint64("seed", 1, "Seed for both the piece sequence and the bot.")
	realtime := flag.Bool("realtime", false, "Step on a wall-clock ticker at the configured TPS instead of as fast as possible.")
	check := flag.Bool("check", true, "Verify board invariants after every frame.")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = *loaded
	}
	cfg.Spawn.Seed = *seed

	logger := log.New(os.Stderr, cfg.LogLevel()).With("Soak")
	logger.Infof("starting soak for %s", *duration)

	game, err := round.New(&cfg, logger)
	if err != nil {
		logger.Errorf("failed to create round: %v", err)
		os.Exit(1)
	}

	report := &Report{
		Duration: *duration,
		Seed:     *seed,
		Mode:     cfg.Gravity.Mode,
		Policy:   cfg.Rotation.Policy,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	bot := NewBot(*seed)
	startTime := time.Now()
	if *realtime {
		runRealtime(ctx, game, bot, cfg.TickPeriod(), report)
	} else {
		exclusive := cfg.RotationPolicy() == piece.RotateCollision
		runFast(ctx, game, bot, *check, exclusive, report)
	}

	report.TotalTime = time.Since(startTime)
	report.Systems = game.SchedulerStats().Systems
	report.StepTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Infof("soak finished")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Errorf("failed to generate report: %v", err)
		os.Exit(1)
	}
	fmt.Println("--- End of Report ---")

	if len(report.Violations) > 0 {
		os.Exit(2)
	}
}

// runFast steps the round with one gravity period per frame so every frame
// advances the piece.
func runFast(ctx context.Context, game *round.Round, bot *Bot, check, exclusive bool, report *Report) {
	for ctx.Err() == nil {
		start := time.Now()
		game.Step(bot.Next(), game.Period())
		report.StepTime.Samples = append(report.StepTime.Samples, time.Since(start))

		game.Events()
		if check && len(report.Violations) < maxViolations {
			if err := checkInvariants(game, exclusive); err != nil {
				report.Violations = append(report.Violations,
					fmt.Sprintf("round %d frame %d: %v", report.Rounds+1, game.Stats().Frames, err))
			}
		}
		if game.Phase() == round.ToppedOut {
			endRound(game, report)
		}
	}
	endRound(game, report)
}

// runRealtime drives the round from its own ticker and restarts it
// whenever it tops out.
func runRealtime(ctx context.Context, game *round.Round, bot *Bot, tick time.Duration, report *Report) {
	last := time.Now()
	game.Run(ctx, tick, func() round.Intent {
		now := time.Now()
		report.StepTime.Samples = append(report.StepTime.Samples, now.Sub(last))
		last = now

		game.Events()
		if game.Phase() == round.ToppedOut {
			endRound(game, report)
		}
		return bot.Next()
	})
	endRound(game, report)
}

func endRound(game *round.Round, report *Report) {
	stats := game.Stats()
	report.Rounds++
	report.TotalFrames += stats.Frames
	report.Pieces += stats.Spawned
	report.Locks += stats.Locks
	report.LinesCleared += stats.LinesCleared
	report.BestLines = max(report.BestLines, stats.LinesCleared)
	report.FinalPeriod = game.Period()
	if game.Phase() == round.ToppedOut {
		report.TopOuts++
	}
	game.Reset()
}
