// Package layers manages the layer directories, metadata sidecars and launch.toml a
// buildpack writes during build.
package layers

import (
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/buildpacks/libbuildpack"
	"github.com/buildpacks/libbuildpack/env"
	"github.com/buildpacks/libbuildpack/internal/encoding"
	"github.com/buildpacks/libbuildpack/log"
)

const launchFile = "launch.toml"

type Layers struct {
	Launch *Launch

	root   string
	logger log.Logger
}

// NewLayers returns a registry rooted at root. The root is not created until a layer is added.
func NewLayers(root string, logger log.Logger) *Layers {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Layers{
		Launch: NewLaunch(),
		root:   root,
		logger: logger,
	}
}

func (l *Layers) Root() string {
	return l.root
}

// Add creates the directory for the named layer if needed and returns a handle to it
// with an empty config. Existing metadata is not read.
func (l *Layers) Add(name string) (*Layer, error) {
	if !utf8.ValidString(l.root) {
		return nil, libbuildpack.NewError(errors.Errorf("layers root %q is not valid UTF-8", l.root), libbuildpack.ErrTypePathEncoding)
	}
	layer := &Layer{
		Config: NewConfig(),
		Envs:   env.NewScopes(),
		name:   name,
		root:   l.root,
		logger: l.logger,
	}
	if err := os.MkdirAll(layer.Path(), 0755); err != nil {
		return nil, libbuildpack.NewError(errors.Wrapf(err, "creating layer '%s'", name), libbuildpack.ErrTypeIO)
	}
	l.logger.Debugf("Added layer: %s", layer.Path())
	return layer, nil
}

// Names lists the layer directories present under the root, sorted.
func (l *Layers) Names() ([]string, error) {
	entries, err := os.ReadDir(l.root)
	if os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, libbuildpack.NewError(errors.Wrapf(err, "reading layers dir '%s'", l.root), libbuildpack.ErrTypeIO)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func (l *Layers) LaunchPath() string {
	return filepath.Join(l.root, launchFile)
}

// WriteLaunch replaces launch.toml with the current processes.
func (l *Layers) WriteLaunch() error {
	path := l.LaunchPath()
	l.logger.Debugf("Writing launch metadata: %s", path)
	if err := encoding.WriteTOML(path, l.Launch.file()); err != nil {
		return errors.Wrapf(err, "writing launch metadata '%s'", path)
	}
	return nil
}

// ReadLaunch replaces the processes with the content of launch.toml, if present.
func (l *Layers) ReadLaunch() error {
	path := l.LaunchPath()
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return libbuildpack.NewError(errors.Wrapf(err, "reading launch metadata '%s'", path), libbuildpack.ErrTypeIO)
	}
	var file launchTOML
	if _, err := toml.Decode(string(b), &file); err != nil {
		return libbuildpack.NewError(errors.Wrapf(err, "decoding launch metadata '%s'", path), libbuildpack.ErrTypeDeserialization)
	}
	l.Launch = NewLaunch()
	for _, p := range file.Processes {
		l.Launch.AddProcess(p.Type, p.Command)
	}
	return nil
}
