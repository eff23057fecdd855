package components

import "github.com/yohamta/donburi"

// WalkerData drives the patrol of an AI walker: it paces between MinX and
// MaxX, turning around at the bounds. Dir is -1 or 1.
type WalkerData struct {
	MinX, MaxX float64
	Dir        float64
}

var Walker = donburi.NewComponentType[WalkerData]()
