package gamemath

import (
	"math"
	"testing"

	"github.com/solarlune/resolv"
)

const (
	upRight = "up_right"
	upLeft  = "up_left"
)

func TestSurfaceY(t *testing.T) {
	// 64x32 ramp ascending to the right, top edge at y=100.
	ramp := resolv.NewObject(0, 100, 64, 32, upRight)

	tests := []struct {
		name    string
		centerX float64
		want    float64
	}{
		{"left edge is the ramp base", 0, 132},
		{"midway up", 32, 116},
		{"right edge is the ramp top", 64, 100},
		{"clamped past the right edge", 200, 100},
		{"clamped before the left edge", -50, 132},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 16-wide object whose center sits at centerX.
			obj := resolv.NewObject(tt.centerX-8, 0, 16, 16)
			got := SurfaceY(obj, ramp, upRight, upLeft)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("SurfaceY(centerX=%v) = %v, want %v", tt.centerX, got, tt.want)
			}
		})
	}
}

func TestSurfaceYUpLeft(t *testing.T) {
	ramp := resolv.NewObject(0, 100, 64, 32, upLeft)
	obj := resolv.NewObject(-8, 0, 16, 16) // center at x=0, the ramp top
	if got := SurfaceY(obj, ramp, upRight, upLeft); got != 100 {
		t.Errorf("SurfaceY at left edge = %v, want 100", got)
	}
	obj = resolv.NewObject(56, 0, 16, 16) // center at x=64, the ramp base
	if got := SurfaceY(obj, ramp, upRight, upLeft); got != 132 {
		t.Errorf("SurfaceY at right edge = %v, want 132", got)
	}
}

func TestSignedAngle(t *testing.T) {
	square := resolv.NewObject(0, 0, 64, 64, upRight)
	if got := SignedAngle(square, upRight, upLeft); math.Abs(got-math.Pi/4) > 1e-9 {
		t.Errorf("45 degree up-right ramp: angle = %v, want %v", got, math.Pi/4)
	}

	gentle := resolv.NewObject(0, 0, 128, 32, upLeft)
	want := -math.Atan2(32, 128)
	if got := SignedAngle(gentle, upRight, upLeft); math.Abs(got-want) > 1e-9 {
		t.Errorf("gentle up-left ramp: angle = %v, want %v", got, want)
	}

	flat := resolv.NewObject(0, 0, 64, 16, "solid")
	if got := SignedAngle(flat, upRight, upLeft); got != 0 {
		t.Errorf("untagged rectangle: angle = %v, want 0", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5,0,10) = %v", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp(-1,0,10) = %v", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("Clamp(11,0,10) = %v", got)
	}
}
