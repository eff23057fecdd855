package anim

// Facing is the horizontal direction a sprite should visually face.
type Facing int

const (
	// FacingRight is the zero value; fresh resolvers face right.
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	switch f {
	case FacingRight:
		return "right"
	case FacingLeft:
		return "left"
	}
	return "unknown"
}
