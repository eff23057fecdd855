package components

import (
	"github.com/mossbank/ramble/anim"
	"github.com/yohamta/donburi"
)

// DirInputData stores this tick's directional key state for a
// player-controlled actor, plus the previous tick's Up for jump edge
// detection in the sandbox mover.
type DirInputData struct {
	Up, Down, Left, Right bool

	PrevUp bool
}

// Flags converts the key state to the resolver's input type.
func (d *DirInputData) Flags() anim.Input {
	return anim.Input{Up: d.Up, Down: d.Down, Left: d.Left, Right: d.Right}
}

var DirInput = donburi.NewComponentType[DirInputData]()
