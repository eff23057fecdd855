package animations

import "testing"

func TestClipAdvanceCadence(t *testing.T) {
	c := NewClip(0, 2, 2)

	if c.Frame() != 0 {
		t.Fatalf("new clip frame = %d, want 0", c.Frame())
	}

	// With 2 ticks per frame the counter must run 2, 1, 0 before wrapping,
	// so the frame changes on the third advance.
	c.Advance()
	c.Advance()
	if c.Frame() != 0 {
		t.Errorf("frame after 2 advances = %d, want 0", c.Frame())
	}
	c.Advance()
	if c.Frame() != 1 {
		t.Errorf("frame after 3 advances = %d, want 1", c.Frame())
	}
}

func TestClipLoops(t *testing.T) {
	c := NewClip(0, 1, 0)

	// Zero ticks per frame advances every tick: 0 -> 1 -> wrap to 0.
	c.Advance()
	if c.Frame() != 1 || c.Looped {
		t.Errorf("after 1 advance: frame = %d, looped = %v; want 1, false", c.Frame(), c.Looped)
	}
	c.Advance()
	if c.Frame() != 0 || !c.Looped {
		t.Errorf("after 2 advances: frame = %d, looped = %v; want 0, true", c.Frame(), c.Looped)
	}
}

func TestClipRestart(t *testing.T) {
	c := NewClip(2, 5, 0)
	c.Advance()
	c.Advance()
	if c.Frame() != 4 {
		t.Fatalf("frame = %d, want 4", c.Frame())
	}
	c.Restart()
	if c.Frame() != 2 || c.Looped {
		t.Errorf("after restart: frame = %d, looped = %v; want 2, false", c.Frame(), c.Looped)
	}
}

func TestClipNonZeroFirstFrame(t *testing.T) {
	c := NewClip(3, 4, 0)
	c.Advance()
	c.Advance()
	if c.Frame() != 3 {
		t.Errorf("wrap from last frame = %d, want first frame 3", c.Frame())
	}
}
