package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileMissing(t *testing.T) {
	if err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err != nil {
		t.Errorf("missing file should not be an error, got %v", err)
	}
}

func TestLoadFileOverrides(t *testing.T) {
	restoreDefaults(t)

	path := filepath.Join(t.TempDir(), "ramble.yaml")
	body := "mover:\n  maxSpeed: 6.5\nwindow:\n  title: Custom\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if Mover.MaxSpeed != 6.5 {
		t.Errorf("Mover.MaxSpeed = %v, want 6.5", Mover.MaxSpeed)
	}
	if Window.Title != "Custom" {
		t.Errorf("Window.Title = %q, want %q", Window.Title, "Custom")
	}

	// Keys the file omits keep their defaults.
	if Mover.Gravity != 0.4 {
		t.Errorf("Mover.Gravity = %v, want default 0.4", Mover.Gravity)
	}
	if Window.Width != 1280 {
		t.Errorf("Window.Width = %v, want default 1280", Window.Width)
	}
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ramble.yaml")
	if err := os.WriteFile(path, []byte("mover: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadFile(path); err == nil {
		t.Error("malformed yaml should return an error")
	}
}

func restoreDefaults(t *testing.T) {
	t.Helper()
	mover, walker, window, camera, level := Mover, Walker, Window, Camera, Level
	t.Cleanup(func() {
		Mover, Walker, Window, Camera, Level = mover, walker, window, camera, level
	})
}
