// Package strip mirrors the scene's lights onto a WS2812-style LED strip,
// one run of pixels per light, for a physical haunted-house prop.
package strip

import (
	"fmt"
	"image"
	"image/color"

	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/extra/devices/screen"
	"periph.io/x/host/v3"

	"github.com/coreman2200/funtimes-hauntlight/internal/camera"
	"github.com/coreman2200/funtimes-hauntlight/internal/scene"
)

type Options struct {
	// Lights lists the light names shown, in strip order.
	Lights         []string
	PixelsPerLight int
	// FullScale is the intensity that maps to a channel value of 1
	// before tone mapping.
	FullScale  float64
	ExposureEV float64
	Gamma      float64
	WhiteCap   float32
	Port       string // spireg name; "" picks the first port
	Freq       physic.Frequency
}

// DefaultOptions shows the lightning bolt and the three ghosts.
func DefaultOptions() Options {
	return Options{
		Lights:         []string{scene.LightningLight, scene.GhostLights[0], scene.GhostLights[1], scene.GhostLights[2]},
		PixelsPerLight: 8,
		FullScale:      3,
		Gamma:          2.2,
		WhiteCap:       2.2,
		Freq:           2500 * physic.KiloHertz,
	}
}

// Strip renders light colours into a 1-pixel-high image and draws it.
type Strip struct {
	drawer display.Drawer
	opts   Options
	lin    []scene.Color
	img    *image.NRGBA

	// Hardware is false when drawing to the console fallback.
	Hardware bool
}

// New draws through d, which must be at least as wide as the strip.
func New(d display.Drawer, opts Options) *Strip {
	if opts.PixelsPerLight <= 0 {
		opts.PixelsPerLight = 1
	}
	if opts.FullScale <= 0 {
		opts.FullScale = 1
	}
	n := len(opts.Lights) * opts.PixelsPerLight
	return &Strip{
		drawer: d,
		opts:   opts,
		lin:    make([]scene.Color, n),
		img:    image.NewNRGBA(image.Rect(0, 0, n, 1)),
	}
}

// Open initialises the host, opens the SPI port and returns a hardware
// strip. Without a usable port it falls back to drawing on the console.
func Open(opts Options) (*Strip, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}
	n := len(opts.Lights) * max(1, opts.PixelsPerLight)
	port, err := spireg.Open(opts.Port)
	if err != nil {
		log.Warn().Err(err).Msg("no SPI port; drawing strip on the console")
		return Console(opts), nil
	}
	freq := opts.Freq
	if freq == 0 {
		freq = 2500 * physic.KiloHertz
	}
	d, err := nrzled.NewSPI(port, &nrzled.Opts{NumPixels: n, Channels: 3, Freq: freq})
	if err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("nrzled: %w", err)
	}
	s := New(d, opts)
	s.Hardware = true
	return s, nil
}

// Console draws the strip as ANSI blocks on the terminal.
func Console(opts Options) *Strip {
	return New(screen.New(len(opts.Lights)*max(1, opts.PixelsPerLight)), opts)
}

// Render maps every configured light to its pixel run. A light missing
// from the graph stays dark.
func (s *Strip) Render(g *scene.Graph, _ *camera.Camera) error {
	ppl := s.opts.PixelsPerLight
	for i, name := range s.opts.Lights {
		c := scene.Color{}
		if l, ok := g.Light(name); ok {
			c = l.Color.Scale(float32(l.Intensity / s.opts.FullScale))
		}
		for p := 0; p < ppl; p++ {
			s.lin[i*ppl+p] = c
		}
	}
	Filmic(s.lin, s.opts.ExposureEV, s.opts.Gamma)
	WhiteCap(s.lin, s.opts.WhiteCap)
	for x, c := range s.lin {
		s.img.SetNRGBA(x, 0, color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: 255})
	}
	return s.drawer.Draw(s.drawer.Bounds(), s.img, image.Point{})
}

// Pixels returns the last rendered frame.
func (s *Strip) Pixels() *image.NRGBA { return s.img }

// Close blanks the strip.
func (s *Strip) Close() error { return s.drawer.Halt() }

func to8(x float32) uint8 { return uint8(clamp01(x)*255 + 0.5) }
