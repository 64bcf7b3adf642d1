// Command flashsim runs the lightning scheduler on a simulated clock and
// prints every transition, for tuning flash patterns without a renderer.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-hauntlight/internal/app"
	"github.com/coreman2200/funtimes-hauntlight/internal/clock"
	"github.com/coreman2200/funtimes-hauntlight/internal/config"
	"github.com/coreman2200/funtimes-hauntlight/internal/lightning"
)

func main() {
	var (
		configPath string
		fps        int
		seed       int64
		duration   time.Duration
	)
	flag.StringVar(&configPath, "config", "", "optional config.yaml with a lightning section")
	flag.IntVar(&fps, "fps", 60, "simulation frames per second")
	flag.Int64Var(&seed, "seed", 1, "random seed (0 = time)")
	flag.DurationVar(&duration, "duration", 30*time.Second, "simulated run length")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg := config.Default()
	if configPath != "" {
		c, err := config.Load(configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", configPath).Msg("config load failed")
		}
		cfg = c
	}
	if fps <= 0 {
		log.Fatal().Int("fps", fps).Msg("fps must be positive")
	}

	opts, err := app.LightningOptions(cfg.Lightning, seed)
	if err != nil {
		log.Fatal().Err(err).Msg("bad lightning config")
	}
	opts.Hooks = lightning.Hooks{
		Transition: func(from, to lightning.State, at float64) {
			fmt.Printf("[%8.3fs] %-12s -> %s\n", at, from, to)
		},
		Scheduled: func(next float64) {
			fmt.Printf("            next flash at %.3fs\n", next)
		},
	}
	sched := lightning.New(opts)

	src := clock.NewManual(time.Unix(0, 0))
	clk := clock.New()
	step := time.Second / time.Duration(fps)
	peak := 0.0
	for t := time.Duration(0); t <= duration; t += step {
		elapsed, _ := clk.Advance(src.Now())
		if i := sched.Tick(elapsed); i > peak {
			peak = i
		}
		src.Advance(step)
	}

	log.Info().
		Int("flashes", sched.Cycles).
		Float64("peak", peak).
		Dur("simulated", duration).
		Msg("done")
}
