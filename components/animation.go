package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mossbank/ramble/anim"
	"github.com/mossbank/ramble/assets/animations"
	"github.com/yohamta/donburi"
)

// AnimationData holds an actor's clip set keyed by motion state, with
// pre-sliced frames per sheet.
type AnimationData struct {
	Clips       map[anim.State]*animations.Clip
	Frames      map[anim.State][]*ebiten.Image
	Current     anim.State
	FrameWidth  int
	FrameHeight int
}

// SetClip switches to the clip for the given state, restarting it on a
// genuine change so every entered state plays from its first frame.
func (a *AnimationData) SetClip(state anim.State) {
	if a.Current == state {
		return
	}
	if clip := a.Clips[state]; clip != nil {
		clip.Restart()
	}
	a.Current = state
}

// Clip returns the active clip, nil if the state has none.
func (a *AnimationData) Clip() *animations.Clip {
	return a.Clips[a.Current]
}

// FrameImage returns the image for the active clip's current frame, nil if
// unavailable.
func (a *AnimationData) FrameImage() *ebiten.Image {
	clip := a.Clip()
	if clip == nil {
		return nil
	}
	frames := a.Frames[a.Current]
	if frames == nil || clip.Frame() >= len(frames) {
		return nil
	}
	return frames[clip.Frame()]
}

var Animation = donburi.NewComponentType[AnimationData]()
