// Package assets builds the sandbox's placeholder spritesheets at startup.
// Each motion state gets a horizontal strip of tinted frames with a lighter
// marker near the right edge, so clip playback and horizontal flips are
// both visible without any bundled art.
package assets

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mossbank/ramble/anim"
	"github.com/mossbank/ramble/config"
)

// stateTints shade the base color per state so the resolved state is
// readable at a glance even with the overlay off.
var stateTints = map[anim.State]float64{
	anim.StateIdle:  1.0,
	anim.StateRun:   0.85,
	anim.StateJump:  0.7,
	anim.StateFall:  0.55,
	anim.StateSlide: 0.4,
}

// BuildActorFrames generates pre-sliced frame images for every motion
// state, using the clip definitions from config to size each strip.
func BuildActorFrames(base color.RGBA) map[anim.State][]*ebiten.Image {
	frames := make(map[anim.State][]*ebiten.Image, len(config.ActorClips))
	for state, def := range config.ActorClips {
		count := def.Last - def.First + 1
		sheet := buildStrip(base, stateTints[state], count)
		sliced := make([]*ebiten.Image, count)
		for i := 0; i < count; i++ {
			rect := image.Rect(i*config.FrameWidth, 0, (i+1)*config.FrameWidth, config.FrameHeight)
			sliced[i] = sheet.SubImage(rect).(*ebiten.Image)
		}
		frames[state] = sliced
	}
	return frames
}

func buildStrip(base color.RGBA, tint float64, count int) *ebiten.Image {
	w, h := config.FrameWidth, config.FrameHeight
	strip := ebiten.NewImage(w*count, h)

	for i := 0; i < count; i++ {
		// Pulse the shade slightly across the strip so playback is visible.
		pulse := 1.0 - 0.1*float64(i%2)
		body := shade(base, tint*pulse)

		x0 := i * w
		// Body with a 2px margin inside the frame.
		fillRect(strip, x0+2, 2, w-4, h-4, body)
		// Facing marker: a light block toward the right edge. Flipping the
		// sprite mirrors it to the left.
		fillRect(strip, x0+w-10, 8, 6, 6, color.RGBA{0xf0, 0xf0, 0xf0, 0xff})
	}
	return strip
}

func fillRect(dst *ebiten.Image, x, y, w, h int, clr color.Color) {
	dst.SubImage(image.Rect(x, y, x+w, y+h)).(*ebiten.Image).Fill(clr)
}

func shade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
