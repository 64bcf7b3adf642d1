package render

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-hauntlight/internal/camera"
	"github.com/coreman2200/funtimes-hauntlight/internal/clock"
	diag "github.com/coreman2200/funtimes-hauntlight/internal/diagnostics"
	"github.com/coreman2200/funtimes-hauntlight/internal/loader"
	"github.com/coreman2200/funtimes-hauntlight/internal/world"
)

// Engine runs the frame loop: bind finished loads, advance the clock,
// animate the world, update the camera and submit one frame.
type Engine struct {
	World    *world.World
	Clock    *clock.Clock
	Src      clock.Source
	Cam      *camera.Camera
	Controls CameraController
	Out      Renderer

	// Loads carries model load results; nil once drained and closed.
	Loads <-chan loader.Result

	Diag diag.Sink
	Log  zerolog.Logger

	// AfterFrame runs on the loop goroutine once each frame is submitted.
	AfterFrame func(e *Engine)

	frameID uint64

	// metrics (last durations in ms)
	Last struct {
		UpdateMS float64
		SubmitMS float64
		TotalMS  float64
	}
}

// NewEngine wires an engine around w. src defaults to the wall clock.
func NewEngine(w *world.World, cam *camera.Camera, controls CameraController, out Renderer, src clock.Source) (*Engine, error) {
	if w == nil {
		return nil, errors.New("world is nil")
	}
	if cam == nil {
		return nil, errors.New("camera is nil")
	}
	if src == nil {
		src = clock.Wall{}
	}
	e := &Engine{
		World:    w,
		Clock:    clock.New(),
		Src:      src,
		Cam:      cam,
		Controls: controls,
		Out:      out,
		Log:      log.Logger.With().Str("component", "engine").Logger(),
	}
	e.Clock.OnRegression = func(back time.Duration) { e.Diag.Push(diag.Regression(back.Seconds())) }
	w.Slots.OnFail = func(slot int, err error) { e.Diag.Push(diag.LoadFailed(slot, err)) }
	return e, nil
}

// FrameID is the number of frames submitted so far.
func (e *Engine) FrameID() uint64 { return e.frameID }

// RenderOnce runs one frame at the source's current time.
func (e *Engine) RenderOnce() error { return e.Step(e.Src.Now()) }

// Step runs one frame for the host clock reading now. A failed submission
// is returned for the caller to log; world state has already advanced.
func (e *Engine) Step(now time.Time) error {
	start := time.Now()

	e.drainLoads()
	elapsed, _ := e.Clock.Advance(now)
	e.World.Update(elapsed)
	if e.Controls != nil {
		e.Controls.Update()
	}
	e.Last.UpdateMS = float64(time.Since(start).Microseconds()) / 1000.0

	submitStart := time.Now()
	var err error
	if e.Out != nil {
		err = e.Out.Render(e.World.Graph, e.Cam)
	}
	e.frameID++
	e.Last.SubmitMS = float64(time.Since(submitStart).Microseconds()) / 1000.0
	e.Last.TotalMS = float64(time.Since(start).Microseconds()) / 1000.0
	if e.AfterFrame != nil {
		e.AfterFrame(e)
	}
	return err
}

// Run ticks at fps until ctx is cancelled. Submission errors are logged
// and never stop the loop.
func (e *Engine) Run(ctx context.Context, fps int) {
	if fps <= 0 {
		fps = 60
	}
	tick := time.NewTicker(time.Second / time.Duration(fps))
	defer tick.Stop()
	e.Log.Info().Int("fps", fps).Msg("frame loop started")
	for {
		select {
		case <-ctx.Done():
			e.Log.Info().Uint64("frames", e.frameID).Msg("frame loop stopped")
			return
		case <-tick.C:
			if err := e.RenderOnce(); err != nil {
				e.Log.Warn().Err(err).Uint64("frame", e.frameID).Msg("render submit failed")
				e.Diag.Push(diag.Diagnostic{Severity: diag.Warn, Code: diag.SubmitFailed, Summary: "frame submission failed", Detail: err.Error()})
			}
		}
	}
}

// Start runs the loop on its own goroutine. The returned channel is closed
// once Run has returned; no frame is submitted after that, so sinks may be
// closed.
func (e *Engine) Start(ctx context.Context, fps int) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		e.Run(ctx, fps)
	}()
	return done
}

// drainLoads binds every load result that has arrived without blocking.
func (e *Engine) drainLoads() {
	for e.Loads != nil {
		select {
		case r, ok := <-e.Loads:
			if !ok {
				e.Loads = nil
				return
			}
			e.bind(r)
		default:
			return
		}
	}
}

func (e *Engine) bind(r loader.Result) {
	if r.Err != nil {
		e.World.Slots.Fail(r.Slot, r.Err)
		return
	}
	if err := e.World.Attach(r.Slot, r.Model); err != nil {
		e.Log.Warn().Err(err).Int("slot", r.Slot).Msg("bind rejected")
		return
	}
	e.Diag.Push(diag.Diagnostic{Severity: diag.Info, Code: diag.AssetBound, Summary: "ghost model bound",
		Evidence: map[string]any{"slot": r.Slot, "model": r.Model.Name}})
}
