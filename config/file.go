package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the tunable sections of an on-disk override file.
type fileConfig struct {
	Mover  MoverConfig  `yaml:"mover"`
	Walker WalkerConfig `yaml:"walker"`
	Window WindowConfig `yaml:"window"`
	Camera CameraConfig `yaml:"camera"`
	Level  LevelConfig  `yaml:"level"`
}

// LoadFile overlays tuning values from a yaml file onto the package
// defaults. A missing file is not an error; sections and keys the file
// omits keep their defaults.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	f := fileConfig{
		Mover:  Mover,
		Walker: Walker,
		Window: Window,
		Camera: Camera,
		Level:  Level,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}

	Mover = f.Mover
	Walker = f.Walker
	Window = f.Window
	Camera = f.Camera
	Level = f.Level
	return nil
}
