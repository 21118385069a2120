package layers

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/buildpacks/libbuildpack"
	"github.com/buildpacks/libbuildpack/env"
	"github.com/buildpacks/libbuildpack/internal/encoding"
	"github.com/buildpacks/libbuildpack/log"
)

const profileDDir = "profile.d"

// Layer is a directory under the layers root together with its metadata sidecar and
// environment modifications. Config and Envs are only persisted by the Write methods.
type Layer struct {
	Config *Config
	Envs   *env.Scopes

	name   string
	root   string
	logger log.Logger
}

func (l *Layer) Name() string {
	return l.name
}

func (l *Layer) Path() string {
	return filepath.Join(l.root, l.name)
}

func (l *Layer) ConfigPath() string {
	return filepath.Join(l.root, l.name+".toml")
}

func (l *Layer) ProfileDPath() string {
	return filepath.Join(l.Path(), profileDDir)
}

// Exists reports whether the layer directory is present on disk.
func (l *Layer) Exists() bool {
	fi, err := os.Stat(l.Path())
	return err == nil && fi.IsDir()
}

// Configure applies fn to the config and writes the sidecar.
func (l *Layer) Configure(fn func(*Config)) error {
	fn(l.Config)
	return l.WriteMetadata()
}

func (l *Layer) WriteMetadata() error {
	path := l.ConfigPath()
	l.logger.Debugf("Writing layer metadata: %s", path)
	if err := encoding.WriteTOML(path, l.Config.file()); err != nil {
		return errors.Wrapf(err, "writing layer metadata '%s'", path)
	}
	return nil
}

// ReadMetadata replaces the config with the sidecar content. A missing sidecar leaves
// the config unchanged.
func (l *Layer) ReadMetadata() error {
	path := l.ConfigPath()
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		l.logger.Debugf("No layer metadata found at: %s", path)
		return nil
	} else if err != nil {
		return libbuildpack.NewError(errors.Wrapf(err, "reading layer metadata '%s'", path), libbuildpack.ErrTypeIO)
	}
	var file configFile
	if _, err := toml.Decode(string(b), &file); err != nil {
		return libbuildpack.NewError(errors.Wrapf(err, "decoding layer metadata '%s'", path), libbuildpack.ErrTypeDeserialization)
	}
	l.Config = file.config()
	return nil
}

func (l *Layer) RemoveMetadata() error {
	path := l.ConfigPath()
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return libbuildpack.NewError(errors.Wrapf(err, "removing layer metadata '%s'", path), libbuildpack.ErrTypeIO)
	}
	return nil
}

// Remove deletes the layer directory and its sidecar.
func (l *Layer) Remove() error {
	if err := os.RemoveAll(l.Path()); err != nil {
		return libbuildpack.NewError(errors.Wrapf(err, "removing layer '%s'", l.name), libbuildpack.ErrTypeIO)
	}
	return l.RemoveMetadata()
}

// WriteProfileD writes a profile.d script that the launcher sources before the app starts.
func (l *Layer) WriteProfileD(script, contents string) error {
	dir := l.ProfileDPath()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return libbuildpack.NewError(errors.Wrapf(err, "creating profile.d dir '%s'", dir), libbuildpack.ErrTypeIO)
	}
	path := filepath.Join(dir, script)
	l.logger.Debugf("Writing profile.d script: %s", path)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		return libbuildpack.NewError(errors.Wrapf(err, "writing profile.d script '%s'", path), libbuildpack.ErrTypeIO)
	}
	return nil
}

func (l *Layer) WriteEnvs() error {
	l.logger.Debugf("Writing env dirs for layer: %s", l.name)
	return l.Envs.WriteDirs(l.Path())
}

func (l *Layer) ReadEnvs() error {
	return l.Envs.ReadDirs(l.Path())
}
