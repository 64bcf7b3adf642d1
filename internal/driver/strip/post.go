package strip

import (
	"math"

	"github.com/coreman2200/funtimes-hauntlight/internal/scene"
)

// Filmic applies exposure (EV), an ACES approximation and output gamma in
// place. A gamma of 0 means 2.2.
func Filmic(buf []scene.Color, exposureEV, gamma float64) {
	if gamma <= 0 {
		gamma = 2.2
	}
	exposure := float32(math.Pow(2.0, exposureEV))
	ig := 1.0 / gamma
	for i := range buf {
		r := acesApprox(buf[i].R * exposure)
		g := acesApprox(buf[i].G * exposure)
		b := acesApprox(buf[i].B * exposure)
		if gamma != 1.0 {
			r, g, b = powf(r, ig), powf(g, ig), powf(b, ig)
		}
		buf[i] = scene.Color{R: clamp01(r), G: clamp01(g), B: clamp01(b)}
	}
}

// WhiteCap scales each pixel so R+G+B stays at or below limit. A limit of
// 3 or more is a no-op.
func WhiteCap(buf []scene.Color, limit float32) {
	if limit <= 0 || limit >= 3 {
		return
	}
	for i := range buf {
		s := buf[i].R + buf[i].G + buf[i].B
		if s > limit {
			buf[i] = buf[i].Scale(limit / s)
		}
	}
}

// Narkowicz ACES fit.
func acesApprox(x float32) float32 {
	const a, b, c, d, e = 2.51, 0.03, 2.43, 0.59, 0.14
	if x <= 0 {
		return 0
	}
	return clamp01((x * (a*x + b)) / (x*(c*x+d) + e))
}

func powf(x float32, p float64) float32 {
	if x <= 0 {
		return 0
	}
	return float32(math.Pow(float64(x), p))
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
