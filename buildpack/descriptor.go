// Buildpack descriptor file (https://github.com/buildpacks/spec/blob/main/buildpack.md#buildpacktoml-toml).

package buildpack

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/buildpacks/libbuildpack"
	"github.com/buildpacks/libbuildpack/metadata"
)

const DescriptorFile = "buildpack.toml"

func ReadDescriptor(path string) (*Descriptor, error) {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, libbuildpack.NewError(errors.Wrapf(err, "reading buildpack descriptor '%s'", path), libbuildpack.ErrTypeFileNotFound)
	} else if err != nil {
		return nil, libbuildpack.NewError(errors.Wrapf(err, "reading buildpack descriptor '%s'", path), libbuildpack.ErrTypeIO)
	}
	var file descriptorFile
	if _, err := toml.Decode(string(b), &file); err != nil {
		return nil, libbuildpack.NewError(errors.Wrapf(err, "decoding buildpack descriptor '%s'", path), libbuildpack.ErrTypeDeserialization)
	}
	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, libbuildpack.NewError(errors.Wrapf(err, "resolving buildpack dir for '%s'", path), libbuildpack.ErrTypeIO)
	}
	return &Descriptor{
		API:       file.API,
		Buildpack: file.Buildpack,
		Stacks:    file.Stacks,
		Metadata:  metadata.FromMap(file.Metadata),
		Dir:       dir,
	}, nil
}

type descriptorFile struct {
	API       string                 `toml:"api"`
	Buildpack Info                   `toml:"buildpack"`
	Stacks    []Stack                `toml:"stacks"`
	Metadata  map[string]interface{} `toml:"metadata"`
}

// DescriptorPath locates buildpack.toml from the path of a running bin/detect or bin/build.
func DescriptorPath(argv0 string) (string, error) {
	if argv0 == "" {
		return "", libbuildpack.NewError(errors.New("no process arguments"), libbuildpack.ErrTypeNoProcessArguments)
	}
	return filepath.Join(filepath.Dir(filepath.Dir(argv0)), DescriptorFile), nil
}

type Descriptor struct {
	API       string
	Buildpack Info
	Stacks    []Stack
	Metadata  *metadata.Metadata
	Dir       string
}

// SupportsStack reports whether id is listed in the descriptor's stacks, or whether the
// descriptor lists the wildcard stack.
func (d *Descriptor) SupportsStack(id string) bool {
	for _, s := range d.Stacks {
		if s.ID == id || s.ID == "*" {
			return true
		}
	}
	return false
}

func (d *Descriptor) String() string {
	return d.Buildpack.Name + " " + d.Buildpack.Version
}

type Info struct {
	ClearEnv bool   `toml:"clear-env,omitempty"`
	Homepage string `toml:"homepage,omitempty"`
	ID       string `toml:"id"`
	Name     string `toml:"name"`
	Version  string `toml:"version"`
}

type Stack struct {
	ID          string   `toml:"id"`
	Mixins      []string `toml:"mixins,omitempty"`
	BuildImages []string `toml:"build-images,omitempty"`
	RunImages   []string `toml:"run-images,omitempty"`
}
