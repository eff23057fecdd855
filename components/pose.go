package components

import (
	"github.com/mossbank/ramble/anim"
	"github.com/yohamta/donburi"
)

// PoseData owns an actor's animation resolver and its latest decision.
// One resolver per actor: the hysteresis memory inside it must never be
// shared. Prev keeps last tick's decision so the effects system can react
// to transitions (takeoff, landing).
type PoseData struct {
	Resolver anim.KinematicsResolver
	Decision anim.Decision
	Prev     anim.Decision
}

var Pose = donburi.NewComponentType[PoseData]()
