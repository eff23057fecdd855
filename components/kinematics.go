package components

import (
	"github.com/yohamta/donburi"
)

// KinematicsData carries an actor's per-tick movement state plus the ground
// contact signals the pose resolver consumes. SpeedY is positive downward.
// While ground-snapping down a ramp, SpeedY reflects the actual vertical
// displacement of the tick so steep descents register as such.
type KinematicsData struct {
	SpeedX float64
	SpeedY float64

	// Collider state, rewritten by the collision system every tick.
	OnGround   bool
	SlopeAngle float64 // radians, signed; meaningful only while OnGround
}

var Kinematics = donburi.NewComponentType[KinematicsData]()
