package anim

import (
	"math"
	"testing"
)

// TestResolveAirborne verifies the vertical base states: airborne with
// non-negative VelY is a fall, airborne with negative VelY (upward) is a jump.
func TestResolveAirborne(t *testing.T) {
	tests := []struct {
		name string
		k    Kinematics
		want State
	}{
		{"falling", Kinematics{VelY: 3}, StateFall},
		{"apex", Kinematics{VelY: 0}, StateFall},
		{"rising", Kinematics{VelY: -3}, StateJump},
		{"rising fast sideways", Kinematics{VelX: 10, VelY: -8}, StateJump},
		{"falling on steep slope angle", Kinematics{VelY: 5, SlopeAngle: 0.5}, StateFall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver()
			got := r.Resolve(tt.k)
			if got.State != tt.want {
				t.Errorf("Resolve(%+v).State = %v, want %v", tt.k, got.State, tt.want)
			}
		})
	}
}

// TestResolveGrounded verifies idle below the speed threshold and run above
// it, with and without directional input.
func TestResolveGrounded(t *testing.T) {
	tests := []struct {
		name string
		k    Kinematics
		in   *Input
		want State
	}{
		{"at rest", Kinematics{OnGround: true}, nil, StateIdle},
		{"sub-threshold drift", Kinematics{VelX: 1.5, OnGround: true}, nil, StateIdle},
		{"at threshold", Kinematics{VelX: 2.0, OnGround: true}, nil, StateIdle},
		{"momentum only", Kinematics{VelX: -3, OnGround: true}, nil, StateRun},
		{"fast right", Kinematics{VelX: 6, OnGround: true}, nil, StateRun},
		{"held key at rest", Kinematics{OnGround: true}, &Input{Right: true}, StateRun},
		{"held key against wall", Kinematics{VelX: 0, OnGround: true}, &Input{Left: true}, StateRun},
		{"up held on flat ground", Kinematics{OnGround: true}, &Input{Up: true}, StateRun},
		{"fast with no key", Kinematics{VelX: 4, OnGround: true}, &Input{}, StateRun},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver()
			var got Decision
			if tt.in != nil {
				got = r.ResolveWithInput(tt.k, *tt.in)
			} else {
				got = r.Resolve(tt.k)
			}
			if got.State != tt.want {
				t.Errorf("state = %v, want %v", got.State, tt.want)
			}
		})
	}
}

// TestSlideDominance verifies the slide override beats idle, input-run and
// speed-run, and that holding Up suppresses it.
func TestSlideDominance(t *testing.T) {
	steep := Kinematics{VelY: 5, OnGround: true, SlopeAngle: 0.2} // ~11.5 degrees

	r := NewResolver()
	if got := r.Resolve(steep); got.State != StateSlide {
		t.Errorf("physics-only on steep slope: state = %v, want %v", got.State, StateSlide)
	}

	// Slide must override a speed-derived run.
	fast := steep
	fast.VelX = 8
	r = NewResolver()
	if got := r.Resolve(fast); got.State != StateSlide {
		t.Errorf("fast descent on steep slope: state = %v, want %v", got.State, StateSlide)
	}

	// Slide must override an input-derived run.
	r = NewResolver()
	if got := r.ResolveWithInput(steep, Input{Right: true}); got.State != StateSlide {
		t.Errorf("held key on steep slope: state = %v, want %v", got.State, StateSlide)
	}

	// Holding Up resists the slide.
	r = NewResolver()
	if got := r.ResolveWithInput(steep, Input{Up: true}); got.State == StateSlide {
		t.Error("up held on steep slope still resolved to slide")
	}

	// Negative slope angles count by magnitude.
	left := steep
	left.SlopeAngle = -0.2
	r = NewResolver()
	if got := r.Resolve(left); got.State != StateSlide {
		t.Errorf("steep left-leaning slope: state = %v, want %v", got.State, StateSlide)
	}
}

// TestSlideThresholds walks the boundary conditions of slide detection.
func TestSlideThresholds(t *testing.T) {
	deg5 := 5 * math.Pi / 180
	tests := []struct {
		name string
		k    Kinematics
		want State
	}{
		{"too slow downward", Kinematics{VelY: 2.0, OnGround: true, SlopeAngle: 0.2}, StateIdle},
		{"slope too shallow", Kinematics{VelY: 5, OnGround: true, SlopeAngle: deg5 * 0.9}, StateIdle},
		{"exactly at slope threshold", Kinematics{VelY: 5, OnGround: true, SlopeAngle: deg5}, StateIdle},
		{"just past both thresholds", Kinematics{VelY: 2.01, OnGround: true, SlopeAngle: deg5 * 1.1}, StateSlide},
		{"airborne never slides", Kinematics{VelY: 5, OnGround: false, SlopeAngle: 0.4}, StateFall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver()
			if got := r.Resolve(tt.k); got.State != tt.want {
				t.Errorf("state = %v, want %v", got.State, tt.want)
			}
		})
	}
}

// TestFacingHysteresis verifies sub-threshold speeds keep the remembered
// facing and supra-threshold speeds flip it and update memory.
func TestFacingHysteresis(t *testing.T) {
	r := NewResolver()

	// Fresh resolver faces right.
	if got := r.Resolve(Kinematics{OnGround: true}); got.Facing != FacingRight {
		t.Errorf("seed facing = %v, want %v", got.Facing, FacingRight)
	}

	// Slow leftward drift must not flip.
	if got := r.Resolve(Kinematics{VelX: -0.5, OnGround: true}); got.Facing != FacingRight {
		t.Errorf("sub-threshold drift flipped facing to %v", got.Facing)
	}

	// Confident leftward motion flips and is remembered.
	if got := r.Resolve(Kinematics{VelX: -5, OnGround: true}); got.Facing != FacingLeft {
		t.Errorf("confident motion: facing = %v, want %v", got.Facing, FacingLeft)
	}
	if r.LastFacing() != FacingLeft {
		t.Errorf("lastFacing = %v, want %v", r.LastFacing(), FacingLeft)
	}

	// Back to rest: the new memory holds.
	if got := r.Resolve(Kinematics{OnGround: true}); got.Facing != FacingLeft {
		t.Errorf("facing after stop = %v, want %v", got.Facing, FacingLeft)
	}
}

// TestInputFacingOverride verifies held directions beat physics facing and
// always update memory, and that Left+Right together is a tie.
func TestInputFacingOverride(t *testing.T) {
	r := NewResolver()

	// Physics says right, input says left: input wins.
	got := r.ResolveWithInput(Kinematics{VelX: 10, OnGround: true}, Input{Left: true})
	if got.Facing != FacingLeft {
		t.Errorf("facing = %v, want %v", got.Facing, FacingLeft)
	}
	if r.LastFacing() != FacingLeft {
		t.Errorf("lastFacing = %v, want %v", r.LastFacing(), FacingLeft)
	}

	// Input updates memory even below the speed threshold.
	r = NewResolver()
	r.ResolveWithInput(Kinematics{OnGround: true}, Input{Left: true})
	if r.LastFacing() != FacingLeft {
		t.Errorf("low-speed input did not update memory: lastFacing = %v", r.LastFacing())
	}

	// Left+Right together keeps whatever facing was already current,
	// including a flip the same tick's physics produced.
	r = NewResolver()
	got = r.ResolveWithInput(Kinematics{VelX: -5, OnGround: true}, Input{Left: true, Right: true})
	if got.Facing != FacingLeft {
		t.Errorf("tied input: facing = %v, want physics-derived %v", got.Facing, FacingLeft)
	}

	r = NewResolver()
	got = r.ResolveWithInput(Kinematics{OnGround: true}, Input{Left: true, Right: true})
	if got.Facing != FacingRight {
		t.Errorf("tied input on fresh resolver: facing = %v, want seeded %v", got.Facing, FacingRight)
	}
}

// TestStateMemory verifies LastState tracks physics-only resolutions and is
// left untouched by the input-override early return.
func TestStateMemory(t *testing.T) {
	r := NewResolver()
	r.Resolve(Kinematics{VelX: 5, OnGround: true})
	if r.LastState() != StateRun {
		t.Errorf("lastState = %v, want %v", r.LastState(), StateRun)
	}

	// The input-facing branch returns before the bookkeeping step.
	r.ResolveWithInput(Kinematics{VelY: 3}, Input{Right: true})
	if r.LastState() != StateRun {
		t.Errorf("input branch touched state memory: lastState = %v", r.LastState())
	}

	// Input-aware calls without any held key still update it.
	r.ResolveWithInput(Kinematics{VelY: 3}, Input{})
	if r.LastState() != StateFall {
		t.Errorf("lastState = %v, want %v", r.LastState(), StateFall)
	}
}

// TestIdempotence verifies repeated identical input produces identical
// output with no internal drift.
func TestIdempotence(t *testing.T) {
	r := NewResolver()
	k := Kinematics{VelX: -3, VelY: 0, OnGround: true}
	first := r.Resolve(k)
	for i := 0; i < 100; i++ {
		if got := r.Resolve(k); got != first {
			t.Fatalf("tick %d: decision drifted from %+v to %+v", i, first, got)
		}
	}
}

// TestScenarios covers the end-to-end decision pairs from the design notes.
func TestScenarios(t *testing.T) {
	r := NewResolver()
	if got := r.Resolve(Kinematics{OnGround: true}); got != (Decision{FacingRight, StateIdle}) {
		t.Errorf("rest on fresh resolver = %+v, want {right idle}", got)
	}

	r = NewResolver()
	if got := r.Resolve(Kinematics{VelX: -3, OnGround: true}); got != (Decision{FacingLeft, StateRun}) {
		t.Errorf("running left = %+v, want {left run}", got)
	}

	r = NewResolver()
	got := r.Resolve(Kinematics{VelY: 5, OnGround: true, SlopeAngle: 0.2})
	if got != (Decision{FacingRight, StateSlide}) {
		t.Errorf("steep descent = %+v, want {right slide}", got)
	}
}

// stillResolver always reports an idle, right-facing actor; it stands in for
// an actor type that customizes physics-only resolution.
type stillResolver struct{}

func (stillResolver) Resolve(Kinematics) Decision {
	return Decision{Facing: FacingRight, State: StateIdle}
}

// TestKinematicsResolverInterface verifies the stock resolver and custom
// implementations are interchangeable behind the capability interface.
func TestKinematicsResolverInterface(t *testing.T) {
	resolvers := []KinematicsResolver{NewResolver(), stillResolver{}}
	for _, kr := range resolvers {
		got := kr.Resolve(Kinematics{OnGround: true})
		if got.State != StateIdle || got.Facing != FacingRight {
			t.Errorf("Resolve at rest = %+v, want {right idle}", got)
		}
	}
}
