package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SquashStretchData deforms a sprite briefly on takeoff and landing.
// The tweens ease the scales back to 1; nil tweens mean no deformation.
type SquashStretchData struct {
	ScaleX, ScaleY float64
	TweenX, TweenY *gween.Tween
}

var SquashStretch = donburi.NewComponentType[SquashStretchData]()

// Tween holds a looping gween sequence driving a floating platform's X.
var Tween = donburi.NewComponentType[gween.Sequence]()
