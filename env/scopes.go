package env

import (
	"path/filepath"

	"github.com/buildpacks/libbuildpack"
)

const (
	BuildDir  = "env.build"
	SharedDir = "env"
	LaunchDir = "env.launch"
)

// Scopes hold the modifiers a layer contributes to the build phase, to the launched
// app, and to both.
type Scopes struct {
	Build  *Modifiers
	Launch *Modifiers
	Shared *Modifiers
}

func NewScopes() *Scopes {
	return &Scopes{
		Build:  NewModifiers(),
		Launch: NewModifiers(),
		Shared: NewModifiers(),
	}
}

func (s *Scopes) Clear() {
	s.Build.Clear()
	s.Launch.Clear()
	s.Shared.Clear()
}

// WriteDirs writes the build, shared and launch scopes under layerDir. Every scope is
// attempted; the returned error's Cause is the first failure.
func (s *Scopes) WriteDirs(layerDir string) error {
	return libbuildpack.Combine(libbuildpack.ErrTypeIO,
		s.Build.WriteDir(filepath.Join(layerDir, BuildDir)),
		s.Shared.WriteDir(filepath.Join(layerDir, SharedDir)),
		s.Launch.WriteDir(filepath.Join(layerDir, LaunchDir)),
	)
}

// ReadDirs replaces every scope with the contents of its dir under layerDir.
func (s *Scopes) ReadDirs(layerDir string) error {
	return libbuildpack.Combine(libbuildpack.ErrTypeIO,
		s.Build.ReadDir(filepath.Join(layerDir, BuildDir)),
		s.Shared.ReadDir(filepath.Join(layerDir, SharedDir)),
		s.Launch.ReadDir(filepath.Join(layerDir, LaunchDir)),
	)
}
