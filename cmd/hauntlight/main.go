package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/physic"

	"github.com/coreman2200/funtimes-hauntlight/internal/app"
	"github.com/coreman2200/funtimes-hauntlight/internal/config"
	diag "github.com/coreman2200/funtimes-hauntlight/internal/diagnostics"
	"github.com/coreman2200/funtimes-hauntlight/internal/driver/fake"
	"github.com/coreman2200/funtimes-hauntlight/internal/driver/strip"
	"github.com/coreman2200/funtimes-hauntlight/internal/render"
	"github.com/coreman2200/funtimes-hauntlight/internal/ws"
)

func main() {
	// ---- Flags (explicitly set flags override config.yaml) ----
	var (
		fps        = flag.Int("fps", 60, "target frames per second")
		driver     = flag.String("driver", "sim", "frame sink besides the websocket preview: sim | strip | console")
		addr       = flag.String("addr", ":8080", "HTTP listen address")
		modelPath  = flag.String("model", "assets/ghost/scene.gltf", "ghost glTF model")
		seed       = flag.Int64("seed", 0, "lightning random seed (0 = time)")
		configPath = flag.String("config", "config.yaml", "path to config.yaml")
		debug      = flag.Bool("debug", false, "debug logging")
	)
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	// ---- Config ----
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; proceeding with flags")
		cfg = config.Default()
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fps":
			cfg.FPS = *fps
		case "driver":
			cfg.Driver = *driver
		case "addr":
			cfg.Addr = *addr
		case "model":
			cfg.ModelPath = *modelPath
		case "seed":
			cfg.Seed = *seed
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- Sinks ----
	hub := ws.NewHub(nil)
	sinks := render.Multi{hub}
	var led *strip.Strip
	switch cfg.Driver {
	case "sim":
		sinks = append(sinks, fake.New(cfg.FPS*5))
	case "console":
		led = strip.Console(stripOptions(cfg.Strip))
		sinks = append(sinks, led)
	case "strip":
		s, err := strip.Open(stripOptions(cfg.Strip))
		if err != nil {
			log.Warn().Err(err).Str("driver", cfg.Driver).Msg("strip init failed; falling back to SIM")
			sinks = append(sinks, fake.New(cfg.FPS*5))
			break
		}
		led = s
		sinks = append(sinks, s)
		log.Info().Bool("hardware", s.Hardware).Msg("LED strip ready")
	default:
		log.Warn().Str("driver", cfg.Driver).Msg("unknown driver; using SIM")
		sinks = append(sinks, fake.New(cfg.FPS*5))
	}

	core, err := app.InitCore(ctx, cfg, sinks, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("init failed")
	}
	hub.Orbit = core.Orbit
	core.Eng.Diag = func(d diag.Diagnostic) { hub.PushDiag(d) }
	core.Eng.AfterFrame = func(*render.Engine) { hub.SetStatus(core.Status()) }

	// ---- HTTP routes ----
	mux := http.NewServeMux()
	hub.Routes(mux)
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      withCORS(mux),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ---- Run frame loop & server ----
	loopDone := core.Eng.Start(ctx, cfg.FPS)
	go func() {
		log.Info().Str("addr", cfg.Addr).Str("driver", cfg.Driver).Msg("HTTP server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server crashed")
		}
	}()

	// ---- Graceful shutdown ----
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	s := <-ch
	log.Info().Str("signal", s.String()).Msg("shutting down")

	cancel()
	_ = srv.Close()
	<-loopDone
	if led != nil {
		_ = led.Close()
	}
}

func stripOptions(c config.StripCfg) strip.Options {
	o := strip.DefaultOptions()
	o.Port = c.Port
	if len(c.Lights) > 0 {
		o.Lights = c.Lights
	}
	if c.PixelsPerLight > 0 {
		o.PixelsPerLight = c.PixelsPerLight
	}
	if c.FreqKHz > 0 {
		o.Freq = physic.Frequency(c.FreqKHz) * physic.KiloHertz
	}
	o.ExposureEV = c.ExposureEV
	if c.Gamma > 0 {
		o.Gamma = c.Gamma
	}
	if c.WhiteCap > 0 {
		o.WhiteCap = float32(c.WhiteCap)
	}
	return o
}

func withCORS(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(200)
			return
		}
		h.ServeHTTP(w, r)
	})
}
