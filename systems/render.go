package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mossbank/ramble/anim"
	"github.com/mossbank/ramble/components"
	"github.com/mossbank/ramble/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var drawOp = &ebiten.DrawImageOptions{}

var (
	wallColor     = color.RGBA{0x3c, 0x3f, 0x4a, 0xff}
	rampColor     = color.RGBA{0x4a, 0x52, 0x3c, 0xff}
	platformColor = color.RGBA{0x5a, 0x4a, 0x68, 0xff}
)

// DrawLevel renders the static geometry: walls as rectangles, ramps as
// staircases following their ascent direction, platforms in their own
// color.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(e, screen)
	if !ok {
		return
	}

	tags.Wall.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		vector.DrawFilledRect(screen,
			float32(o.X-camX), float32(o.Y-camY),
			float32(o.W), float32(o.H), wallColor, false)
	})

	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		vector.DrawFilledRect(screen,
			float32(o.X-camX), float32(o.Y-camY),
			float32(o.W), float32(o.H), platformColor, false)
	})

	tags.Ramp.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		drawRamp(screen, o, camX, camY)
	})
}

func drawRamp(screen *ebiten.Image, o *components.ObjectData, camX, camY float64) {
	const step = 4.0
	upRight := o.HasTags(tags.SlopeUpRight)
	for x := 0.0; x < o.W; x += step {
		t := x / o.W
		var top float64
		if upRight {
			top = o.Y + o.H*(1-t-step/o.W)
		} else {
			top = o.Y + o.H*t
		}
		if top < o.Y {
			top = o.Y
		}
		vector.DrawFilledRect(screen,
			float32(o.X+x-camX), float32(top-camY),
			float32(step), float32(o.Y+o.H-top), rampColor, false)
	}
}

// DrawActors renders every posed actor: the clip frame for the resolved
// state, flipped horizontally when the decision faces left, deformed by any
// active squash and stretch. Facing and state come exclusively from the
// pose decision; this layer makes no judgement of its own.
func DrawActors(e *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(e, screen)
	if !ok {
		return
	}

	components.Animation.Each(e.World, func(entry *donburi.Entry) {
		animData := components.Animation.Get(entry)
		pose := components.Pose.Get(entry)
		o := components.Object.Get(entry)

		img := animData.FrameImage()
		if img == nil {
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		// Anchor at bottom-center so feet line up with the collision box.
		drawOp.GeoM.Translate(-float64(animData.FrameWidth)/2, -float64(animData.FrameHeight))

		if entry.HasComponent(components.SquashStretch) {
			ss := components.SquashStretch.Get(entry)
			drawOp.GeoM.Scale(ss.ScaleX, ss.ScaleY)
		}

		if pose.Decision.Facing == anim.FacingLeft {
			drawOp.GeoM.Scale(-1, 1)
		}

		drawOp.GeoM.Translate(o.X+o.W/2, o.Y+o.H)
		drawOp.GeoM.Translate(-camX, -camY)

		screen.DrawImage(img, drawOp)
	})
}

// cameraOffset returns the world coordinate of the screen's top-left corner.
func cameraOffset(e *ecs.ECS, screen *ebiten.Image) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	return camera.Position.X - float64(w)/2, camera.Position.Y - float64(h)/2, true
}
