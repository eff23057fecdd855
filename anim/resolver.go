// Package anim resolves a moving actor's visual animation state (facing and
// motion state) from its per-tick kinematics. It must have zero dependencies
// on ebiten or any graphics library so it stays headless and testable; the
// render layer only reads the decisions it produces.
package anim

import "math"

const (
	// FacingThreshold is the horizontal speed above which physics-derived
	// facing is trusted. Below it the last confident facing is kept so
	// sub-threshold drift (slope creep, friction jitter) cannot flicker
	// the sprite.
	FacingThreshold = 2.0

	// SlideDownThreshold is the minimum downward speed before a grounded
	// actor on a steep slope is considered to be losing footing.
	SlideDownThreshold = 2.0

	// SlideSlopeThreshold is the minimum surface steepness, in radians,
	// for slide detection. Callers must supply slope angles in radians.
	SlideSlopeThreshold = 5 * math.Pi / 180
)

// Kinematics is the per-tick physics snapshot the resolver consumes.
// VelY follows screen convention: negative is upward. SlopeAngle is the
// signed angle of the contacted surface from horizontal, in radians, and
// is only meaningful while OnGround is true.
type Kinematics struct {
	VelX, VelY float64
	OnGround   bool
	SlopeAngle float64
}

// Input is the directional key state for an input-aware resolution,
// already debounced by the platform layer.
type Input struct {
	Up, Down, Left, Right bool
}

// Any reports whether any directional key is held.
func (in Input) Any() bool {
	return in.Up || in.Down || in.Left || in.Right
}

// Decision is the resolver's per-tick output: which way the sprite faces
// and which clip category to play. Compared structurally.
type Decision struct {
	Facing Facing
	State  State
}

// KinematicsResolver resolves an animation decision from kinematics alone.
// Specialized actors may provide their own implementation in place of the
// stock Resolver.
type KinematicsResolver interface {
	Resolve(k Kinematics) Decision
}

// Resolver converts raw kinematic signals, and optionally directional
// input, into a Decision. It keeps the last confident facing and last
// resolved state across ticks to implement hysteresis, so one Resolver
// must serve exactly one actor.
type Resolver struct {
	lastFacing Facing
	lastState  State
}

var _ KinematicsResolver = (*Resolver)(nil)

// NewResolver returns a resolver seeded facing right and idle.
func NewResolver() *Resolver {
	return &Resolver{lastFacing: FacingRight, lastState: StateIdle}
}

// LastFacing returns the last facing judged confident.
func (r *Resolver) LastFacing() Facing { return r.lastFacing }

// LastState returns the state resolved by the most recent physics-only
// resolution.
func (r *Resolver) LastState() State { return r.lastState }

// Resolve performs a physics-only resolution, used for actors without
// directional input (AI-driven or scripted).
func (r *Resolver) Resolve(k Kinematics) Decision {
	return r.resolve(k, nil)
}

// ResolveWithInput performs an input-aware resolution for player-controlled
// actors: held directions can override facing and holding Up suppresses
// the slide state.
func (r *Resolver) ResolveWithInput(k Kinematics, in Input) Decision {
	return r.resolve(k, &in)
}

func (r *Resolver) resolve(k Kinematics, in *Input) Decision {
	state := StateFall
	if k.OnGround {
		state = StateIdle
	} else if k.VelY < 0 {
		state = StateJump
	}

	if k.OnGround && in != nil && in.Any() {
		state = StateRun
	}

	confident := math.Abs(k.VelX) > FacingThreshold
	if confident {
		if k.VelX > 0 {
			r.lastFacing = FacingRight
		} else {
			r.lastFacing = FacingLeft
		}
	}
	facing := r.lastFacing

	// Momentum-only motion (ice, knockback) still reads as running.
	if k.OnGround && confident {
		state = StateRun
	}

	// Slide wins over every other state: the actor is on a steep surface,
	// dropping faster than the noise threshold, and not actively climbing.
	if k.OnGround && k.VelY > SlideDownThreshold &&
		math.Abs(k.SlopeAngle) > SlideSlopeThreshold &&
		(in == nil || !in.Up) {
		state = StateSlide
	}

	if in != nil && in.Any() {
		// Held direction is intent: it overrides physics facing and
		// updates memory regardless of speed. Left+Right together keeps
		// the previous facing.
		switch {
		case in.Left && !in.Right:
			r.lastFacing = FacingLeft
		case in.Right && !in.Left:
			r.lastFacing = FacingRight
		}
		return Decision{Facing: r.lastFacing, State: state}
	}

	r.lastState = state
	return Decision{Facing: facing, State: state}
}
